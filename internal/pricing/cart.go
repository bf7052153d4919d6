package pricing

import (
	"context"
	"maps"
	"math"
	"slices"
)

// Cart accumulates requested quantities. Every add is kept as its own entry,
// preserving purchase history, alongside a per-product aggregate keyed by
// product name. The aggregate is always the sum of all add-events for that
// name.
type Cart struct {
	items      []ProductQuantity
	quantities map[string]ProductQuantity
	// order records first-add order of aggregate keys so discount evaluation
	// is deterministic; map iteration alone would not be.
	order []string
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{quantities: make(map[string]ProductQuantity)}
}

// AddItem adds a single unit of product.
func (c *Cart) AddItem(product Product) {
	c.AddItemQuantity(product, 1)
}

// AddItemQuantity appends a new add-event and grows the product's aggregate.
// Repeated adds of the same product stay separate entries in the item list.
func (c *Cart) AddItemQuantity(product Product, quantity float64) {
	c.items = append(c.items, ProductQuantity{Product: product, Quantity: quantity})

	current, ok := c.quantities[product.Name]
	if ok {
		c.quantities[product.Name] = ProductQuantity{Product: product, Quantity: current.Quantity + quantity}
		return
	}
	c.quantities[product.Name] = ProductQuantity{Product: product, Quantity: quantity}
	c.order = append(c.order, product.Name)
}

// Items returns an independent copy of the add-event list.
func (c *Cart) Items() []ProductQuantity {
	return slices.Clone(c.items)
}

// Quantities returns an independent copy of the per-product aggregate.
func (c *Cart) Quantities() map[string]ProductQuantity {
	return maps.Clone(c.quantities)
}

// ApplyOffers evaluates registered offers against the aggregate quantities, in
// first-add order, appending every positive discount to the receipt. Products
// below an offer's threshold contribute nothing, not a zero-amount discount.
func (c *Cart) ApplyOffers(ctx context.Context, receipt *Receipt, offers map[string]Offer, catalog Catalog) error {
	for _, name := range c.order {
		offer, ok := offers[name]
		if !ok {
			continue
		}
		pq := c.quantities[name]
		if pq.Quantity == 0 {
			continue
		}
		unitPrice, err := lookupPrice(ctx, catalog, pq.Product)
		if err != nil {
			return err
		}
		if d, ok := offer.discount(pq.Quantity, unitPrice); ok {
			receipt.addDiscount(d)
		}
	}
	return nil
}

// ApplyBundles evaluates each bundle independently, appending at most one
// discount per bundle.
func (c *Cart) ApplyBundles(ctx context.Context, receipt *Receipt, bundles []Bundle, catalog Catalog) error {
	for _, bundle := range bundles {
		d, ok, err := c.bundleDiscount(ctx, bundle, catalog)
		if err != nil {
			return err
		}
		if ok {
			receipt.addDiscount(d)
		}
	}
	return nil
}

// completeBundles returns how many full bundles the aggregate quantities
// support: the minimum unit count over the members. Each products count in
// whole units; any positive weight of a Kilo product satisfies one bundle's
// worth of that ingredient, since weight is prorated rather than counted.
func (c *Cart) completeBundles(bundle Bundle) int {
	complete := -1
	for _, product := range bundle.Products {
		pq, ok := c.quantities[product.Name]
		if !ok || pq.Quantity <= 0 {
			return 0
		}
		var units int
		if product.Unit == Kilo {
			units = int(math.Ceil(pq.Quantity))
		} else {
			units = int(math.Floor(pq.Quantity))
		}
		if units == 0 {
			return 0
		}
		if complete < 0 || units < complete {
			complete = units
		}
	}
	if complete < 0 {
		return 0
	}
	return complete
}

func (c *Cart) bundleDiscount(ctx context.Context, bundle Bundle, catalog Catalog) (Discount, bool, error) {
	complete := c.completeBundles(bundle)
	if complete == 0 {
		return Discount{}, false, nil
	}

	// Bundle value per instance: Each members contribute one unit, Kilo
	// members their cart weight spread over the complete bundles.
	var bundleValue float64
	for _, product := range bundle.Products {
		unitPrice, err := lookupPrice(ctx, catalog, product)
		if err != nil {
			return Discount{}, false, err
		}
		qtyPerBundle := 1.0
		if product.Unit == Kilo {
			qtyPerBundle = c.quantities[product.Name].Quantity / float64(complete)
		}
		bundleValue += unitPrice * qtyPerBundle
	}

	amount := float64(complete) * bundleValue * bundlePercent / 100
	if amount <= 0 {
		return Discount{}, false, nil
	}
	// The first member represents the bundle on the receipt; a presentation
	// choice, not a pricing one.
	return Discount{Product: bundle.Products[0], Description: bundle.Description(), Amount: amount}, true, nil
}

// ApplyCoupons checks each registered coupon against its captured date and the
// aggregate quantities, appending at most one discount per coupon and setting
// the redeemed latch on success. Redeemed, expired or under-threshold coupons
// are silently skipped; an under-threshold coupon stays unredeemed and may be
// honoured on a later checkout inside its window.
func (c *Cart) ApplyCoupons(ctx context.Context, receipt *Receipt, coupons []AppliedCoupon, catalog Catalog) error {
	for _, applied := range coupons {
		coupon := applied.Coupon
		if coupon == nil || coupon.Redeemed() || !coupon.ValidOn(applied.Date) {
			continue
		}
		pq, ok := c.quantities[coupon.Product.Name]
		if !ok || pq.Quantity <= 0 {
			continue
		}
		required := float64(coupon.RequiredQuantity)
		if pq.Quantity <= required {
			continue
		}
		unitPrice, err := lookupPrice(ctx, catalog, coupon.Product)
		if err != nil {
			return err
		}
		discountQty := math.Min(pq.Quantity-required, required)
		amount := discountQty * unitPrice * coupon.DiscountPercent / 100
		if amount <= 0 {
			continue
		}
		receipt.addDiscount(Discount{Product: coupon.Product, Description: coupon.Description(), Amount: amount})
		coupon.redeem()
	}
	return nil
}
