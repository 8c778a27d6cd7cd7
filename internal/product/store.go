package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store abstracts product persistence so handlers can be tested in memory.
type Store interface {
	Create(ctx context.Context, name string, price float64, stockLeft int) (int64, error)
	Get(ctx context.Context, id int64) (*Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Product, error)
	AdjustStock(ctx context.Context, id int64, delta int) (*Product, error)
}

// PgStore is the PostgreSQL-backed Store.
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

var _ Store = (*PgStore)(nil)

// EnsureSchema creates the products table if it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS products (
  id serial PRIMARY KEY,
  name text NOT NULL,
  price double precision NOT NULL,
  stock_left integer NOT NULL
);`)
	return err
}

func (s *PgStore) Create(ctx context.Context, name string, price float64, stockLeft int) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO products(name, price, stock_left) VALUES($1, $2, $3) RETURNING id`,
		name, price, stockLeft).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// Get returns (nil, nil) when the product does not exist.
func (s *PgStore) Get(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, price, stock_left FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.StockLeft)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &p, nil
}

// GetByIDs returns the products matching ids, ordered by id. Missing ids
// simply produce a shorter result; the handler decides whether partial
// results are acceptable.
func (s *PgStore) GetByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, price, stock_left FROM products WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.StockLeft); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// AdjustStock applies delta to stock_left in one guarded UPDATE, so a
// rejected decrement never partially applies. Returns (nil, ErrInsufficientStock)
// when the resulting stock would be negative and (nil, nil) for unknown ids.
func (s *PgStore) AdjustStock(ctx context.Context, id int64, delta int) (*Product, error) {
	var p Product
	err := s.pool.QueryRow(ctx,
		`UPDATE products SET stock_left = stock_left + $2
		 WHERE id = $1 AND stock_left + $2 >= 0
		 RETURNING id, name, price, stock_left`, id, delta).
		Scan(&p.ID, &p.Name, &p.Price, &p.StockLeft)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the id is unknown or the guard rejected the delta.
		existing, gerr := s.Get(ctx, id)
		if gerr != nil {
			return nil, gerr
		}
		if existing == nil {
			return nil, nil
		}
		return nil, ErrInsufficientStock
	}
	if err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return &p, nil
}
