package pricing

import (
	"context"
	"errors"
	"fmt"
)

// ErrPriceNotFound indicates the catalog holds no price for a product.
var ErrPriceNotFound = errors.New("price not found")

// Catalog resolves the current unit price for a product. Lookups must be
// deterministic within a single checkout: prices must not change mid-call.
type Catalog interface {
	UnitPrice(ctx context.Context, product Product) (float64, error)
}

// PricingError reports a failed price lookup for a product that is genuinely
// in the cart. It aborts the checkout; an unresolved price cannot be defaulted
// without corrupting the total.
type PricingError struct {
	Product Product
	Err     error
}

// Error implements the error interface.
func (e *PricingError) Error() string {
	return fmt.Sprintf("price lookup for %q: %v", e.Product.Name, e.Err)
}

// Unwrap exposes the underlying lookup failure to errors.Is/As.
func (e *PricingError) Unwrap() error {
	return e.Err
}

// lookupPrice resolves a unit price, wrapping any failure as a PricingError
// unless the catalog already produced one.
func lookupPrice(ctx context.Context, catalog Catalog, product Product) (float64, error) {
	price, err := catalog.UnitPrice(ctx, product)
	if err != nil {
		var pe *PricingError
		if errors.As(err, &pe) {
			return 0, err
		}
		return 0, &PricingError{Product: product, Err: err}
	}
	return price, nil
}

// MemoryCatalog is an in-process Catalog keyed by product name. It backs tests
// and the demo seeder.
type MemoryCatalog struct {
	prices map[string]float64
}

// NewMemoryCatalog returns an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{prices: make(map[string]float64)}
}

// AddProduct registers or replaces the unit price for a product.
func (c *MemoryCatalog) AddProduct(product Product, price float64) {
	c.prices[product.Name] = price
}

// UnitPrice implements Catalog.
func (c *MemoryCatalog) UnitPrice(_ context.Context, product Product) (float64, error) {
	price, ok := c.prices[product.Name]
	if !ok {
		return 0, &PricingError{Product: product, Err: ErrPriceNotFound}
	}
	return price, nil
}
