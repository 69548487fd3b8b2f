package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/gtd_bi/internal/models"
)

// ErrNotFound is returned by key lookups that match no row.
var ErrNotFound = errors.New("record not found")

// SalesRepository reads the relations of the sales schema. It is bound to
// the source handle of a single report computation.
type SalesRepository struct {
	q sqlx.QueryerContext
}

// NewSalesRepository creates a new SalesRepository on q.
func NewSalesRepository(q sqlx.QueryerContext) *SalesRepository {
	return &SalesRepository{q: q}
}

// ListClients returns every client ordered by id.
func (r *SalesRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	query := `SELECT id, name, region FROM clients ORDER BY id`

	var clients []models.Client
	if err := sqlx.SelectContext(ctx, r.q, &clients, query); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// ListProducts returns every product ordered by id.
func (r *SalesRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, unit_price FROM products ORDER BY id`

	var products []models.Product
	if err := sqlx.SelectContext(ctx, r.q, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListSales returns every sale ordered by id.
func (r *SalesRepository) ListSales(ctx context.Context) ([]models.Sale, error) {
	query := `SELECT id, client_id, product_id, quantity, sale_date FROM sales ORDER BY id`

	var sales []models.Sale
	if err := sqlx.SelectContext(ctx, r.q, &sales, query); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// GetClientByID looks a client up by key. It returns ErrNotFound when no
// client has that id.
func (r *SalesRepository) GetClientByID(ctx context.Context, id int) (*models.Client, error) {
	query := `SELECT id, name, region FROM clients WHERE id = $1 LIMIT 1`

	var c models.Client
	if err := sqlx.GetContext(ctx, r.q, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return &c, nil
}

// GetProductByID looks a product up by key.
func (r *SalesRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, name, unit_price FROM products WHERE id = $1 LIMIT 1`

	var p models.Product
	if err := sqlx.GetContext(ctx, r.q, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}
