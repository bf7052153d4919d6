package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/grocerly/checkout-api/internal/common"
	"github.com/grocerly/checkout-api/internal/pricing"
)

type rowProvider interface {
	Product(ctx context.Context, name string) (Row, error)
	List(ctx context.Context) ([]Row, error)
	Upsert(ctx context.Context, row Row) error
}

// Service resolves products and shelf prices with a cache-aside Redis layer.
// It satisfies pricing.Catalog so a Teller can price carts straight off it.
type Service struct {
	store rowProvider
	cache *Cache
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Store rowProvider
	Cache *Cache
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("catalog: store is required")
	}
	return &Service{store: cfg.Store, cache: cfg.Cache}, nil
}

func productCacheKey(name string) string {
	return "catalog:product:" + name
}

func (s *Service) lookup(ctx context.Context, name string) (Row, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Row{}, pricing.ErrPriceNotFound
	}
	key := productCacheKey(name)
	var cached Row
	ok, err := s.cache.GetJSON(ctx, key, &cached)
	if err == nil && ok {
		return cached, nil
	}
	row, err := s.store.Product(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Row{}, pricing.ErrPriceNotFound
		}
		return Row{}, err
	}
	_ = s.cache.SetJSON(ctx, key, row)
	return row, nil
}

// Product resolves a product by name. Unknown names surface as a PricingError
// so callers can tell a bad cart item from an infrastructure failure.
func (s *Service) Product(ctx context.Context, name string) (pricing.Product, error) {
	row, err := s.lookup(ctx, name)
	if err != nil {
		return pricing.Product{}, &pricing.PricingError{
			Product: pricing.Product{Name: name},
			Err:     err,
		}
	}
	return pricing.Product{Name: row.Name, Unit: parseUnit(row.Unit)}, nil
}

// UnitPrice implements pricing.Catalog.
func (s *Service) UnitPrice(ctx context.Context, product pricing.Product) (float64, error) {
	row, err := s.lookup(ctx, product.Name)
	if err != nil {
		return 0, &pricing.PricingError{Product: product, Err: err}
	}
	return row.Price, nil
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]Row, error) {
	return s.store.List(ctx)
}

// Upsert writes a product and invalidates its cache entry.
func (s *Service) Upsert(ctx context.Context, row Row) error {
	row.Name = strings.TrimSpace(row.Name)
	if row.Name == "" {
		return &common.AppError{Code: "BAD_REQUEST", Message: "product name is required", HTTPStatus: http.StatusBadRequest}
	}
	if _, ok := validUnits[row.Unit]; !ok {
		return &common.AppError{
			Code:       "BAD_REQUEST",
			Message:    fmt.Sprintf("unit must be one of: each, kilo (got %q)", row.Unit),
			HTTPStatus: http.StatusBadRequest,
		}
	}
	if err := s.store.Upsert(ctx, row); err != nil {
		return err
	}
	return s.cache.Del(ctx, productCacheKey(row.Name))
}

var validUnits = map[string]struct{}{
	"each": {},
	"kilo": {},
}

func parseUnit(s string) pricing.Unit {
	if s == "kilo" {
		return pricing.Kilo
	}
	return pricing.Each
}
