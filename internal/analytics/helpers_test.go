package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/gtd_bi/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func assertDecimal(t *testing.T, got decimal.Decimal, want string, label string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

// seedSales mirrors the demo data of the sales schema seed migration.
func seedSales() SalesInput {
	return SalesInput{
		Clients: []models.Client{
			{ID: 1, Name: "Alice", Region: "North America"},
			{ID: 2, Name: "Bob", Region: "Europe"},
			{ID: 3, Name: "Charlie", Region: "Asia"},
			{ID: 4, Name: "Diana", Region: "South America"},
			{ID: 5, Name: "Ethan", Region: "Africa"},
		},
		Products: []models.Product{
			{ID: 1, Name: "Beginner Course", UnitPrice: dec("50")},
			{ID: 2, Name: "Intermediate Course", UnitPrice: dec("70")},
			{ID: 3, Name: "Advanced Course", UnitPrice: dec("100")},
			{ID: 4, Name: "Grammar Book", UnitPrice: dec("30")},
			{ID: 5, Name: "Vocabulary Book", UnitPrice: dec("25")},
		},
		Sales: []models.Sale{
			{ID: 1, ClientID: 1, ProductID: 1, Quantity: 1, SaleDate: day("2025-01-05")},
			{ID: 2, ClientID: 2, ProductID: 2, Quantity: 1, SaleDate: day("2025-02-10")},
			{ID: 3, ClientID: 3, ProductID: 3, Quantity: 1, SaleDate: day("2025-03-15")},
			{ID: 4, ClientID: 4, ProductID: 4, Quantity: 2, SaleDate: day("2025-04-20")},
			{ID: 5, ClientID: 5, ProductID: 5, Quantity: 1, SaleDate: day("2025-05-25")},
			{ID: 6, ClientID: 1, ProductID: 2, Quantity: 1, SaleDate: day("2025-06-05")},
			{ID: 7, ClientID: 2, ProductID: 3, Quantity: 1, SaleDate: day("2025-07-10")},
			{ID: 8, ClientID: 3, ProductID: 4, Quantity: 1, SaleDate: day("2025-08-15")},
			{ID: 9, ClientID: 4, ProductID: 1, Quantity: 2, SaleDate: day("2025-09-20")},
			{ID: 10, ClientID: 5, ProductID: 2, Quantity: 1, SaleDate: day("2025-10-25")},
		},
	}
}
