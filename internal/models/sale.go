package models

import "time"

// Sale is one sales transaction referencing a client and a product.
type Sale struct {
	ID        int       `db:"id" json:"id"`
	ClientID  int       `db:"client_id" json:"clientId"`
	ProductID int       `db:"product_id" json:"productId"`
	Quantity  int       `db:"quantity" json:"quantity"`
	SaleDate  time.Time `db:"sale_date" json:"saleDate"`
}
