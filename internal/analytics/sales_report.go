package analytics

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/gtd_bi/internal/models"
)

// FlatSaleRow is a sale joined with its client and product, plus the derived
// revenue and month label. Columns shared by the sources are named after
// their table.
type FlatSaleRow struct {
	SaleID      int             `json:"saleId"`
	ClientID    int             `json:"clientId"`
	ClientName  string          `json:"clientName"`
	Region      string          `json:"region"`
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	SaleDate    time.Time       `json:"saleDate"`
	Revenue     decimal.Decimal `json:"revenue"`
	Month       string          `json:"month"`
}

// SalesInput holds the source relations of the sales schema.
type SalesInput struct {
	Clients  []models.Client
	Products []models.Product
	Sales    []models.Sale
}

// SalesReport is everything the sales dashboard displays for one filter.
type SalesReport struct {
	Filter           RegionFilter  `json:"filter"`
	Regions          []string      `json:"regions"`
	Metrics          []Metric      `json:"metrics"`
	RevenueByRegion  Series        `json:"revenueByRegion"`
	RevenueByProduct Series        `json:"revenueByProduct"`
	RevenueByMonth   Series        `json:"revenueByMonth"`
	Rows             []FlatSaleRow `json:"rows"`
	Attrition        JoinStats     `json:"attrition"`
	Quality          DataQuality   `json:"quality"`
}

// DataQuality counts rows that break business expectations but are kept.
type DataQuality struct {
	NonPositiveQuantity   int `json:"nonPositiveQuantity"`
	OverCompletedProgress int `json:"overCompletedProgress"`
	ZeroLessonCourses     int `json:"zeroLessonCourses"`
}

// Clean reports whether no anomaly was counted.
func (q DataQuality) Clean() bool {
	return q == DataQuality{}
}

// FlattenSales builds Sale ⨝ Client ⨝ Product with derived columns. Sales
// whose client or product is unknown are dropped.
func FlattenSales(in SalesInput) ([]FlatSaleRow, JoinStats) {
	withClient, clientStats := InnerJoin(in.Sales, in.Clients,
		func(s models.Sale) int { return s.ClientID },
		func(c models.Client) int { return c.ID },
	)
	full, productStats := InnerJoin(withClient, in.Products,
		func(j Joined[models.Sale, models.Client]) int { return j.Left.ProductID },
		func(p models.Product) int { return p.ID },
	)

	rows := make([]FlatSaleRow, 0, len(full))
	for _, j := range full {
		sale, client, product := j.Left.Left, j.Left.Right, j.Right
		rows = append(rows, FlatSaleRow{
			SaleID:      sale.ID,
			ClientID:    client.ID,
			ClientName:  client.Name,
			Region:      client.Region,
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.UnitPrice,
			Quantity:    sale.Quantity,
			SaleDate:    sale.SaleDate,
			Revenue:     Revenue(product.UnitPrice, sale.Quantity),
			Month:       MonthLabel(sale.SaleDate),
		})
	}
	return rows, clientStats.Then(productStats)
}

// FilterSales keeps the flat rows of the filter's region.
func FilterSales(rows []FlatSaleRow, filter RegionFilter) []FlatSaleRow {
	return Where(rows, func(r FlatSaleRow) bool { return filter.Matches(r.Region) })
}

// BuildSalesReport runs the sales pipeline: join, derive, filter, aggregate
// and compute KPIs. The region list always comes from the unfiltered rows.
func BuildSalesReport(in SalesInput, filter RegionFilter, f *Formatter) *SalesReport {
	all, stats := FlattenSales(in)
	rows := FilterSales(all, filter)

	revenue := func(r FlatSaleRow) decimal.Decimal { return r.Revenue }
	byProduct := SumBy(rows, func(r FlatSaleRow) string { return r.ProductName }, revenue)

	report := &SalesReport{
		Filter:           filter,
		Regions:          SumBy(all, func(r FlatSaleRow) string { return r.Region }, revenue).Keys(),
		RevenueByRegion:  SumBy(rows, func(r FlatSaleRow) string { return r.Region }, revenue),
		RevenueByProduct: byProduct.SortedByValueDesc(),
		RevenueByMonth:   SumBy(rows, func(r FlatSaleRow) string { return r.Month }, revenue).SortedByKey(),
		Rows:             rows,
		Attrition:        stats,
	}

	for _, r := range rows {
		if r.Quantity <= 0 {
			report.Quality.NonPositiveQuantity++
		}
	}

	report.Metrics = []Metric{
		f.Number("total_revenue", "Total revenue", UnitCurrency, OK(Sum(rows, revenue))),
		f.Number("quantity_sold", "Quantity sold", UnitCount,
			OK(Sum(rows, func(r FlatSaleRow) decimal.Decimal { return decimal.NewFromInt(int64(r.Quantity)) }))),
		f.Count("client_count", "Clients", CountDistinct(rows, func(r FlatSaleRow) string { return strconv.Itoa(r.ClientID) })),
		f.Text("best_product", "Best-selling product", BestKey(byProduct)),
	}
	return report
}
