package analytics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout is the canonical calendar-month label format.
const MonthLayout = "2006-01"

// ErrZeroTotalLessons is returned when a course declares no lessons.
var ErrZeroTotalLessons = errors.New("course has zero total lessons")

var hundred = decimal.NewFromInt(100)

// Revenue is unit price times quantity, unrounded.
func Revenue(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CompletionRate is the completed share of a course's lessons, in percent.
func CompletionRate(completed, total int) (decimal.Decimal, error) {
	if total == 0 {
		return decimal.Zero, ErrZeroTotalLessons
	}
	return decimal.NewFromInt(int64(completed)).Mul(hundred).Div(decimal.NewFromInt(int64(total))), nil
}

// MonthLabel maps a date to the "YYYY-MM" label of its calendar month.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLayout)
}
