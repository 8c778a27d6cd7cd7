package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store abstracts user persistence so handlers can be tested in memory.
type Store interface {
	Create(ctx context.Context, name string, orders []int64) (int64, error)
	Get(ctx context.Context, id int64) (*User, error)
	AppendOrder(ctx context.Context, id, orderID int64) (*User, error)
}

// PgStore is the PostgreSQL-backed Store.
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

var _ Store = (*PgStore)(nil)

// EnsureSchema creates the users table if it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS users (
  id serial PRIMARY KEY,
  name text NOT NULL,
  orders integer[] NOT NULL DEFAULT '{}'
);`)
	return err
}

func (s *PgStore) Create(ctx context.Context, name string, orders []int64) (int64, error) {
	if orders == nil {
		orders = []int64{}
	}
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users(name, orders) VALUES($1, $2::integer[]) RETURNING id`,
		name, orders).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// Get returns (nil, nil) when the user does not exist.
func (s *PgStore) Get(ctx context.Context, id int64) (*User, error) {
	var u User
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, orders FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Orders)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// AppendOrder atomically appends orderID to the user's order list in a
// single UPDATE. Returns (nil, nil) when the user does not exist.
func (s *PgStore) AppendOrder(ctx context.Context, id, orderID int64) (*User, error) {
	var u User
	err := s.pool.QueryRow(ctx,
		`UPDATE users SET orders = array_append(orders, $2::integer)
		 WHERE id = $1
		 RETURNING id, name, orders`, id, orderID).
		Scan(&u.ID, &u.Name, &u.Orders)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}
	return &u, nil
}
