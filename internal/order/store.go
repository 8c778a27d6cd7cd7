package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the persistence port for orders and their items. It is owned
// exclusively by the orchestration service; nothing else touches these rows.
type Store interface {
	CreateOrder(ctx context.Context, userID int64, total float64) (Order, error)
	CreateItem(ctx context.Context, item OrderItem) (OrderItem, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	ListItems(ctx context.Context, orderID int64) ([]OrderItem, error)
}

// PgStore is the PostgreSQL-backed Store.
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

var _ Store = (*PgStore)(nil)

// EnsureSchema creates the orders and order_items tables if absent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS orders (
  id serial PRIMARY KEY,
  user_id integer NOT NULL,
  order_total double precision NOT NULL
);
CREATE TABLE IF NOT EXISTS order_items (
  id serial PRIMARY KEY,
  order_id integer NOT NULL,
  product_id integer NOT NULL,
  product_num integer NOT NULL,
  price double precision NOT NULL,
  item_total double precision NOT NULL
);`)
	return err
}

func (s *PgStore) CreateOrder(ctx context.Context, userID int64, total float64) (Order, error) {
	o := Order{UserID: userID, OrderTotal: total}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO orders(user_id, order_total) VALUES($1, $2) RETURNING id`,
		userID, total).Scan(&o.ID)
	if err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (s *PgStore) CreateItem(ctx context.Context, item OrderItem) (OrderItem, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO order_items(order_id, product_id, product_num, price, item_total)
		 VALUES($1, $2, $3, $4, $5) RETURNING id`,
		item.OrderID, item.ProductID, item.ProductNum, item.Price, item.ItemTotal).
		Scan(&item.ID)
	if err != nil {
		return OrderItem{}, fmt.Errorf("insert order item: %w", err)
	}
	return item, nil
}

// GetOrder returns (nil, nil) when the order does not exist.
func (s *PgStore) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var o Order
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, order_total FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.UserID, &o.OrderTotal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &o, nil
}

// ListItems returns the order's items in insertion order.
func (s *PgStore) ListItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, order_id, product_id, product_num, price, item_total
		 FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductNum, &it.Price, &it.ItemTotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
