package pricing

import (
	"fmt"
	"time"
)

// Coupon is a time-boxed, single-use discount: buy RequiredQuantity of a
// product and get up to the same amount again at DiscountPercent off.
type Coupon struct {
	Product          Product
	RequiredQuantity int
	DiscountPercent  float64
	ValidFrom        time.Time
	ValidTo          time.Time

	redeemed bool
}

// NewCoupon constructs an unredeemed coupon.
func NewCoupon(product Product, requiredQuantity int, discountPercent float64, validFrom, validTo time.Time) *Coupon {
	return &Coupon{
		Product:          product,
		RequiredQuantity: requiredQuantity,
		DiscountPercent:  discountPercent,
		ValidFrom:        validFrom,
		ValidTo:          validTo,
	}
}

// ValidOn reports whether date falls inside the validity window, inclusive on
// both ends.
func (c *Coupon) ValidOn(date time.Time) bool {
	return !date.Before(c.ValidFrom) && !date.After(c.ValidTo)
}

// Redeemed reports whether the coupon has been applied. The flag is a one-way
// latch: once set it never reverts.
func (c *Coupon) Redeemed() bool {
	return c.redeemed
}

// redeem sets the latch. Colocated with the eligibility check in ApplyCoupons;
// nothing else flips the flag.
func (c *Coupon) redeem() {
	c.redeemed = true
}

// Description renders the coupon the way the receipt presents it.
func (c *Coupon) Description() string {
	return fmt.Sprintf("coupon(buy %d %s, get %d at %s%% off)",
		c.RequiredQuantity, c.Product.Name, c.RequiredQuantity, formatNumber(c.DiscountPercent))
}

// AppliedCoupon pairs a coupon with the date its validity is checked against.
// The date is captured when the coupon is registered, not at checkout time.
type AppliedCoupon struct {
	Coupon *Coupon
	Date   time.Time
}
