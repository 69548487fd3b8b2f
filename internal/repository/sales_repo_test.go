package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, "postgres"), mock
}

func TestSalesRepositoryListClients(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, region FROM clients ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "region"}).
			AddRow(1, "Alice", "North America").
			AddRow(2, "Bob", "Europe"))

	clients, err := NewSalesRepository(db).ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(clients) != 2 || clients[1].Region != "Europe" {
		t.Errorf("clients = %+v", clients)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSalesRepositoryListProductsScansDecimal(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT id, name, unit_price FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "unit_price"}).
			AddRow(1, "Beginner Course", "50.00").
			AddRow(2, "Vocabulary Book", "24.99"))

	products, err := NewSalesRepository(db).ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if !products[1].UnitPrice.Equal(decimal.RequireFromString("24.99")) {
		t.Errorf("unit price = %s", products[1].UnitPrice)
	}
}

func TestSalesRepositoryListSales(t *testing.T) {
	db, mock := newMockDB(t)
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, client_id, product_id, quantity, sale_date FROM sales`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "product_id", "quantity", "sale_date"}).
			AddRow(1, 1, 1, 1, date))

	sales, err := NewSalesRepository(db).ListSales(context.Background())
	if err != nil {
		t.Fatalf("ListSales: %v", err)
	}
	if len(sales) != 1 || !sales[0].SaleDate.Equal(date) || sales[0].ProductID != 1 {
		t.Errorf("sales = %+v", sales)
	}
}

func TestSalesRepositoryWrapsErrors(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(`FROM sales`).WillReturnError(boom)

	_, err := NewSalesRepository(db).ListSales(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestSalesRepositoryGetClientByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM clients WHERE id = \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "region"}).AddRow(2, "Bob", "Europe"))
	mock.ExpectQuery(`FROM clients WHERE id = \$1`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "region"}))

	repo := NewSalesRepository(db)
	c, err := repo.GetClientByID(context.Background(), 2)
	if err != nil || c.Name != "Bob" {
		t.Fatalf("GetClientByID(2) = %+v, %v", c, err)
	}
	if _, err := repo.GetClientByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetClientByID(42) err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSalesRepositoryGetProductByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM products WHERE id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "unit_price"}).AddRow(3, "Advanced Korean Course", "100"))

	p, err := NewSalesRepository(db).GetProductByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetProductByID: %v", err)
	}
	if !p.UnitPrice.Equal(decimal.NewFromInt(100)) {
		t.Errorf("unit price = %s", p.UnitPrice)
	}
}
