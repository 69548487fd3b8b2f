package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanType enumerates subscription plans.
type PlanType string

const (
	PlanMonthly PlanType = "monthly"
	PlanYearly  PlanType = "yearly"
)

// Subscription is a paid plan held by a user.
type Subscription struct {
	ID        int             `db:"id" json:"id"`
	UserID    int             `db:"user_id" json:"userId"`
	StartDate time.Time       `db:"start_date" json:"startDate"`
	EndDate   time.Time       `db:"end_date" json:"endDate"`
	PlanType  PlanType        `db:"plan_type" json:"planType"`
	Renewed   bool            `db:"renewed" json:"renewed"`
	Price     decimal.Decimal `db:"price" json:"price"`
}
