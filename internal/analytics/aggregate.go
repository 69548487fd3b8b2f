package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Point is one (group key, reduced value) pair of a series.
type Point struct {
	Key   string          `json:"key"`
	Value decimal.Decimal `json:"value"`
}

// Series is an ordered grouping result. Unless sorted explicitly, points
// follow the order in which each group key was first encountered.
type Series []Point

// ============================================================================
// GROUPING
// ============================================================================

func groupRows[T any](rows []T, key func(T) string) ([]string, map[string][]T) {
	grouped := make(map[string][]T)
	order := make([]string, 0)

	for _, r := range rows {
		k := key(r)
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], r)
	}
	return order, grouped
}

func reduceGroups[T any](rows []T, key func(T) string, reduce func([]T) decimal.Decimal) Series {
	order, grouped := groupRows(rows, key)
	out := make(Series, 0, len(order))
	for _, k := range order {
		out = append(out, Point{Key: k, Value: reduce(grouped[k])})
	}
	return out
}

// ============================================================================
// REDUCERS
// ============================================================================

// SumBy sums value per group.
func SumBy[T any](rows []T, key func(T) string, value func(T) decimal.Decimal) Series {
	return reduceGroups(rows, key, func(g []T) decimal.Decimal { return Sum(g, value) })
}

// CountBy counts rows per group.
func CountBy[T any](rows []T, key func(T) string) Series {
	return reduceGroups(rows, key, func(g []T) decimal.Decimal { return decimal.NewFromInt(int64(len(g))) })
}

// CountDistinctBy counts distinct field values per group.
func CountDistinctBy[T any](rows []T, key func(T) string, field func(T) string) Series {
	return reduceGroups(rows, key, func(g []T) decimal.Decimal {
		return decimal.NewFromInt(int64(CountDistinct(g, field)))
	})
}

// MeanBy averages value per group. Groups are never empty, so every point
// holds a defined mean.
func MeanBy[T any](rows []T, key func(T) string, value func(T) decimal.Decimal) Series {
	return reduceGroups(rows, key, func(g []T) decimal.Decimal { return Mean(g, value).Value })
}

// Sum totals value over rows; zero for no rows.
func Sum[T any](rows []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(value(r))
	}
	return total
}

// CountDistinct counts the distinct values of field over rows.
func CountDistinct[T any](rows []T, field func(T) string) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[field(r)] = struct{}{}
	}
	return len(seen)
}

// Mean averages value over rows. No rows yields a no_data result.
func Mean[T any](rows []T, value func(T) decimal.Decimal) Result[decimal.Decimal] {
	if len(rows) == 0 {
		return NoData(decimal.Zero)
	}
	return OK(Sum(rows, value).Div(decimal.NewFromInt(int64(len(rows)))))
}

// ArgMax returns the point with the largest value. Ties go to the point that
// comes first in the series. An empty series yields a no_data result.
func ArgMax(s Series) Result[Point] {
	if len(s) == 0 {
		return NoData(Point{})
	}
	best := s[0]
	for _, p := range s[1:] {
		if p.Value.GreaterThan(best.Value) {
			best = p
		}
	}
	return OK(best)
}

// ============================================================================
// SORTING / LOOKUP
// ============================================================================

// SortedByKey returns a copy ordered by key ascending. For "YYYY-MM" labels
// this is chronological order.
func (s Series) SortedByKey() Series {
	out := append(Series(nil), s...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// SortedByValueDesc returns a copy ranked by value, ties kept in series order.
func (s Series) SortedByValueDesc() Series {
	out := append(Series(nil), s...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

// Total sums every point of the series.
func (s Series) Total() decimal.Decimal {
	return Sum(s, func(p Point) decimal.Decimal { return p.Value })
}

// Lookup returns the value stored under key.
func (s Series) Lookup(key string) (decimal.Decimal, bool) {
	for _, p := range s {
		if p.Key == key {
			return p.Value, true
		}
	}
	return decimal.Zero, false
}

// Keys lists group keys in series order.
func (s Series) Keys() []string {
	keys := make([]string, len(s))
	for i, p := range s {
		keys[i] = p.Key
	}
	return keys
}
