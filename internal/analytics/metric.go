package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit describes how a metric value should be displayed.
type Unit string

const (
	UnitCurrency Unit = "currency"
	UnitPercent  Unit = "percent"
	UnitCount    Unit = "count"
	UnitText     Unit = "text"
)

// NoDataDisplay is shown for metrics without data.
const NoDataDisplay = "no data"

// Metric is one scalar KPI ready for display.
type Metric struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Unit    Unit   `json:"unit"`
	Status  Status `json:"status"`
	Value   any    `json:"value"`
	Display string `json:"display"`
}

// Formatter renders metric values for display.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter returns an English formatter labelling money with currency.
func NewFormatter(currency string) *Formatter {
	return &Formatter{
		printer:  message.NewPrinter(language.English),
		currency: currency,
	}
}

// Number formats a numeric result according to unit.
func (f *Formatter) Number(key, label string, unit Unit, r Result[decimal.Decimal]) Metric {
	m := Metric{Key: key, Label: label, Unit: unit, Status: r.Status, Value: r.Value}
	switch {
	case r.Status == StatusError:
		m.Value = nil
		m.Display = r.Error
	case r.Status == StatusNoData && unit != UnitCount:
		m.Value = nil
		m.Display = NoDataDisplay
	default:
		m.Display = f.format(unit, r.Value)
	}
	return m
}

// Count builds a count metric.
func (f *Formatter) Count(key, label string, n int) Metric {
	return f.Number(key, label, UnitCount, OK(decimal.NewFromInt(int64(n))))
}

// Text builds a text metric; the display is the value itself.
func (f *Formatter) Text(key, label string, r Result[string]) Metric {
	return Metric{Key: key, Label: label, Unit: UnitText, Status: r.Status, Value: r.Value, Display: r.Value}
}

func (f *Formatter) format(unit Unit, v decimal.Decimal) string {
	switch unit {
	case UnitCurrency:
		return f.printer.Sprintf("%.0f %s", v.InexactFloat64(), f.currency)
	case UnitPercent:
		return f.printer.Sprintf("%.1f%%", v.InexactFloat64())
	case UnitCount:
		return f.printer.Sprintf("%d", v.IntPart())
	default:
		return v.String()
	}
}

// MetricByKey finds a metric by key.
func MetricByKey(metrics []Metric, key string) (Metric, bool) {
	for _, m := range metrics {
		if m.Key == key {
			return m, true
		}
	}
	return Metric{}, false
}
