package models

import "github.com/shopspring/decimal"

// Product represents a catalog item sold to clients.
type Product struct {
	ID        int             `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`
}
