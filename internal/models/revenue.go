package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueSource enumerates where a revenue entry came from.
type RevenueSource string

const (
	RevenueBookSales          RevenueSource = "book_sales"
	RevenueSubscriptions      RevenueSource = "subscriptions"
	RevenueYoutubeMemberships RevenueSource = "youtube_memberships"
	RevenueOther              RevenueSource = "other"
)

// Revenue is a booked amount attributed to a single source.
type Revenue struct {
	ID          int             `db:"id" json:"id"`
	Source      RevenueSource   `db:"source" json:"source"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	RevenueDate time.Time       `db:"revenue_date" json:"revenueDate"`
}
