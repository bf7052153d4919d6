package promo

import (
	"sync"
	"time"

	"github.com/grocerly/checkout-api/internal/pricing"
)

// Registry holds the promotions currently in force. Checkouts snapshot it
// onto a fresh Teller, so registrations never race an in-flight sale.
type Registry struct {
	mu      sync.RWMutex
	offers  map[string]registeredOffer
	bundles []pricing.Bundle
	coupons []couponEntry
}

type registeredOffer struct {
	offerType pricing.OfferType
	product   pricing.Product
	argument  float64
}

type couponEntry struct {
	coupon    *pricing.Coupon
	appliedAt time.Time
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{offers: make(map[string]registeredOffer)}
}

// SetOffer records a special offer for the product. The latest registration
// for a product wins.
func (r *Registry) SetOffer(offerType pricing.OfferType, product pricing.Product, argument float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers[product.Name] = registeredOffer{offerType: offerType, product: product, argument: argument}
}

// AddBundle records a bundle discount over the given products.
func (r *Registry) AddBundle(products []pricing.Product) {
	if len(products) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bundles = append(r.bundles, pricing.Bundle{Products: products})
}

// AddCoupon records a coupon, stamped with the date it is handed out.
// Already-redeemed coupons are ignored.
func (r *Registry) AddCoupon(coupon *pricing.Coupon, appliedAt time.Time) {
	if coupon == nil || coupon.Redeemed() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coupons = append(r.coupons, couponEntry{coupon: coupon, appliedAt: appliedAt})
}

// Apply registers the current promotions onto the teller. Coupons are shared
// by pointer so a redemption in one checkout is visible to the next.
func (r *Registry) Apply(t *pricing.Teller) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.offers {
		t.RegisterOffer(o.offerType, o.product, o.argument)
	}
	for _, b := range r.bundles {
		t.RegisterBundle(b.Products)
	}
	for _, c := range r.coupons {
		t.RegisterCoupon(c.coupon, c.appliedAt)
	}
}
