// Package pricing implements the checkout pricing and discount engine: carts,
// per-product offers, multi-product bundles, time-boxed coupons, and the teller
// that turns a cart into a priced receipt with loyalty settlement.
//
// The engine is deliberately dependency-free so it can be exercised without any
// infrastructure; transport, storage and observability live in the packages
// around it.
package pricing

// Unit identifies how a product is sold.
type Unit int

const (
	// Each counts whole items.
	Each Unit = iota
	// Kilo weighs the product; quantities are fractional.
	Kilo
)

// String returns the lowercase unit name used on the wire and in the catalog.
func (u Unit) String() string {
	if u == Kilo {
		return "kilo"
	}
	return "each"
}

// Product identifies an article for sale. Identity is by name: two values with
// the same name denote the same product for aggregation purposes.
type Product struct {
	Name string
	Unit Unit
}

// ProductQuantity pairs a product with a requested quantity.
type ProductQuantity struct {
	Product  Product
	Quantity float64
}
