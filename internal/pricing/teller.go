package pricing

import (
	"context"
	"math"
	"time"

	"github.com/grocerly/checkout-api/internal/loyalty"
)

// Teller owns the promotions registered at the register and drives a checkout:
// price items, apply offers, bundles and coupons, settle loyalty points, emit
// the receipt. One teller instance serves one register; it is not safe for
// concurrent use.
type Teller struct {
	catalog     Catalog
	offers      map[string]Offer
	bundles     []Bundle
	coupons     []AppliedCoupon
	loyalty     *loyalty.Account
	pointsToUse float64
}

// NewTeller constructs a teller bound to a catalog.
func NewTeller(catalog Catalog) *Teller {
	return &Teller{catalog: catalog, offers: make(map[string]Offer)}
}

// RegisterOffer records an offer for a product, replacing any existing one.
func (t *Teller) RegisterOffer(offerType OfferType, product Product, argument float64) {
	t.offers[product.Name] = Offer{Type: offerType, Product: product, Argument: argument}
}

// RegisterBundle appends a bundle promotion.
func (t *Teller) RegisterBundle(products []Product) {
	t.bundles = append(t.bundles, Bundle{Products: products})
}

// RegisterCoupon records a coupon together with the date its validity is
// checked against. Registering an already-redeemed coupon is a no-op; the
// check is structural (the latch), not instance identity.
func (t *Teller) RegisterCoupon(coupon *Coupon, date time.Time) {
	if coupon == nil || coupon.Redeemed() {
		return
	}
	t.coupons = append(t.coupons, AppliedCoupon{Coupon: coupon, Date: date})
}

// AttachLoyaltyAccount binds the account settled after discounting.
func (t *Teller) AttachLoyaltyAccount(account *loyalty.Account) {
	t.loyalty = account
}

// SetPointsToUse requests points as payment on the next checkout only. The
// request is cleared once that checkout completes.
func (t *Teller) SetPointsToUse(points float64) {
	t.pointsToUse = points
}

// Checkout prices every cart add-event via the catalog, applies offers, then
// bundles, then coupons, settles loyalty points, and returns the finished
// receipt. A failed price lookup aborts with a *PricingError. Each rule
// computes against raw cart aggregates, so the application order matters only
// for receipt presentation.
func (t *Teller) Checkout(ctx context.Context, cart *Cart) (*Receipt, error) {
	receipt := &Receipt{}

	for _, pq := range cart.Items() {
		unitPrice, err := lookupPrice(ctx, t.catalog, pq.Product)
		if err != nil {
			return nil, err
		}
		receipt.addProduct(pq.Product, pq.Quantity, unitPrice, pq.Quantity*unitPrice)
	}

	if err := cart.ApplyOffers(ctx, receipt, t.offers, t.catalog); err != nil {
		return nil, err
	}
	if err := cart.ApplyBundles(ctx, receipt, t.bundles, t.catalog); err != nil {
		return nil, err
	}
	if err := cart.ApplyCoupons(ctx, receipt, t.coupons, t.catalog); err != nil {
		return nil, err
	}

	t.settlePoints(receipt)
	t.pointsToUse = 0
	return receipt, nil
}

// settlePoints applies pending points as payment, capped by balance and the
// post-discount total, then accrues one point per whole unit of the remaining
// total.
func (t *Teller) settlePoints(receipt *Receipt) {
	if t.loyalty == nil {
		return
	}
	total := receipt.Total()
	if t.pointsToUse > 0 {
		use := math.Min(t.pointsToUse, math.Min(t.loyalty.Points(), total))
		if deducted := t.loyalty.Deduct(use); deducted > 0 {
			receipt.usePoints(deducted)
			total -= deducted
		}
	}
	if earned := math.Floor(total); earned > 0 {
		t.loyalty.Add(earned)
	}
}
