package analytics

import (
	"encoding/json"
	"errors"
	"strings"
)

// AllRegionsValue is the filter value selecting every region.
const AllRegionsValue = "all"

// ErrEmptyRegion is returned when a region filter value is blank.
var ErrEmptyRegion = errors.New("region filter must be a region name or \"all\"")

// RegionFilter selects the rows a report is computed over. "All regions" is a
// value of its own; build one with AllRegions or OnlyRegion.
type RegionFilter struct {
	all    bool
	region string
}

// AllRegions returns the filter that keeps every row.
func AllRegions() RegionFilter {
	return RegionFilter{all: true}
}

// OnlyRegion returns a filter keeping rows of exactly one region.
func OnlyRegion(region string) RegionFilter {
	return RegionFilter{region: region}
}

// ParseRegionFilter maps a user supplied value to a filter. "all" (any case)
// selects every region; a blank value is rejected.
func ParseRegionFilter(raw string) (RegionFilter, error) {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		return RegionFilter{}, ErrEmptyRegion
	case strings.EqualFold(v, AllRegionsValue):
		return AllRegions(), nil
	default:
		return OnlyRegion(v), nil
	}
}

// IsAll reports whether the filter keeps every region.
func (f RegionFilter) IsAll() bool {
	return f.all
}

// Matches reports whether a row of the given region passes the filter.
func (f RegionFilter) Matches(region string) bool {
	return f.all || f.region == region
}

func (f RegionFilter) String() string {
	if f.all {
		return AllRegionsValue
	}
	return f.region
}

// MarshalJSON renders the filter as its string form.
func (f RegionFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// Where returns the rows for which keep is true, preserving order.
func Where[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
