package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Row is a product as persisted, with its shelf price.
type Row struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// Store reads and writes the products table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Product fetches a single product by name. Returns pgx.ErrNoRows when absent.
func (s *Store) Product(ctx context.Context, name string) (Row, error) {
	var row Row
	err := s.pool.QueryRow(ctx,
		`SELECT name, unit, price FROM products WHERE name = $1`, name,
	).Scan(&row.Name, &row.Unit, &row.Price)
	if err != nil {
		if err == pgx.ErrNoRows {
			return Row{}, err
		}
		return Row{}, fmt.Errorf("select product: %w", err)
	}
	return row, nil
}

// List returns every product ordered by name.
func (s *Store) List(ctx context.Context) ([]Row, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, unit, price FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Name, &row.Unit, &row.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return result, nil
}

// Upsert creates the product or replaces its unit and price.
func (s *Store) Upsert(ctx context.Context, row Row) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO products (name, unit, price)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET unit = EXCLUDED.unit, price = EXCLUDED.price`,
		row.Name, row.Unit, row.Price,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}
