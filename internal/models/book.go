package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is a published title sold in one format.
type Book struct {
	ID       int             `db:"id" json:"id"`
	Title    string          `db:"title" json:"title"`
	Category string          `db:"category" json:"category"`
	Format   string          `db:"format" json:"format"`
	Price    decimal.Decimal `db:"price" json:"price"`
}

// BookSale is one sale line of a book.
type BookSale struct {
	ID          int             `db:"id" json:"id"`
	BookID      int             `db:"book_id" json:"bookId"`
	SaleDate    time.Time       `db:"sale_date" json:"saleDate"`
	Quantity    int             `db:"quantity" json:"quantity"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`
	Region      string          `db:"region" json:"region"`
}
