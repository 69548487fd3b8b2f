package analytics

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatterDisplay(t *testing.T) {
	f := NewFormatter("USD")

	tests := []struct {
		name string
		unit Unit
		val  string
		want string
	}{
		{"currency", UnitCurrency, "120", "120 USD"},
		{"currency grouping", UnitCurrency, "1234.4", "1,234 USD"},
		{"percent", UnitPercent, "15.789473", "15.8%"},
		{"count", UnitCount, "12", "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := f.Number("k", "label", tt.unit, OK(dec(tt.val)))
			if m.Display != tt.want {
				t.Errorf("Display = %q, want %q", m.Display, tt.want)
			}
		})
	}
}

func TestFormatterNoDataAndError(t *testing.T) {
	f := NewFormatter("EUR")

	nd := f.Number("avg", "Average", UnitPercent, NoData(decimal.Zero))
	if nd.Display != NoDataDisplay || nd.Value != nil {
		t.Errorf("no data metric = %+v", nd)
	}

	failed := f.Number("avg", "Average", UnitPercent, Failed[decimal.Decimal](errors.New("boom")))
	if failed.Status != StatusError || failed.Display != "boom" {
		t.Errorf("failed metric = %+v", failed)
	}

	txt := f.Text("best", "Best", NoData(NoneLabel))
	if txt.Display != NoneLabel || txt.Status != StatusNoData {
		t.Errorf("text metric = %+v", txt)
	}
}

func TestMetricJSON(t *testing.T) {
	m := NewFormatter("USD").Number("total_revenue", "Total revenue", UnitCurrency, OK(dec("120.5")))

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["status"] != "ok" || got["unit"] != "currency" || got["value"] != "120.5" {
		t.Errorf("json = %s", raw)
	}
}

func TestResultErr(t *testing.T) {
	if err := OK(1).Err(); err != nil {
		t.Errorf("OK.Err() = %v", err)
	}
	r := Failed[int](ErrZeroTotalLessons)
	if r.Valid() || r.Err() == nil || r.Err().Error() != ErrZeroTotalLessons.Error() {
		t.Errorf("Failed result = %+v", r)
	}
}
