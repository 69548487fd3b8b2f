package analytics

import "github.com/shopspring/decimal"

// NoneLabel is the text value reported when a ranking has nothing to rank.
const NoneLabel = "none"

// Percent returns part/whole × 100, or zero when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}

// RetentionRate is the renewed share of all subscriptions, in percent.
// No subscriptions gives a rate of zero.
func RetentionRate(renewed, total int) Result[decimal.Decimal] {
	return OK(Percent(decimal.NewFromInt(int64(renewed)), decimal.NewFromInt(int64(total))))
}

// AverageCompletion averages the defined completion rates. Rows whose rate
// could not be computed are skipped; no usable rows yields no_data.
func AverageCompletion(rows []FlatProgressRow) Result[decimal.Decimal] {
	usable := Where(rows, func(r FlatProgressRow) bool { return r.CompletionRate.Valid() })
	return Mean(usable, func(r FlatProgressRow) decimal.Decimal { return r.CompletionRate.Value })
}

// MonthOverMonthGrowth compares the last month of a monthly series with the
// first one, in percent. Fewer than two months or a zero first month gives zero.
func MonthOverMonthGrowth(monthly Series) Result[decimal.Decimal] {
	if len(monthly) < 2 {
		return OK(decimal.Zero)
	}
	sorted := monthly.SortedByKey()
	first := sorted[0].Value
	last := sorted[len(sorted)-1].Value
	return OK(Percent(last.Sub(first), first))
}

// Shares converts a series of amounts into each point's percent of the total.
// A zero total gives zero for every point.
func Shares(s Series) Series {
	total := s.Total()
	out := make(Series, len(s))
	for i, p := range s {
		out[i] = Point{Key: p.Key, Value: Percent(p.Value, total)}
	}
	return out
}

// ShareOf is the percent of the series total held by key; zero when the key
// is absent or the total is zero.
func ShareOf(s Series, key string) Result[decimal.Decimal] {
	v, _ := s.Lookup(key)
	return OK(Percent(v, s.Total()))
}

// BestKey names the group with the largest value, or NoneLabel when the series
// is empty.
func BestKey(s Series) Result[string] {
	best := ArgMax(s)
	if !best.Valid() {
		return NoData(NoneLabel)
	}
	return OK(best.Value.Key)
}
