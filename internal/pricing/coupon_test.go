package pricing

import (
	"context"
	"testing"
	"time"
)

func couponFixture() (*MemoryCatalog, Product, *Coupon, time.Time) {
	juice := Product{Name: "orange juice", Unit: Each}
	catalog := NewMemoryCatalog()
	catalog.AddProduct(juice, 2.00)

	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	coupon := NewCoupon(juice, 6, 50, from, to)
	applied := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	return catalog, juice, coupon, applied
}

func applyCoupon(t *testing.T, cart *Cart, coupon *Coupon, date time.Time, catalog Catalog) []Discount {
	t.Helper()
	receipt := &Receipt{}
	if err := cart.ApplyCoupons(context.Background(), receipt, []AppliedCoupon{{Coupon: coupon, Date: date}}, catalog); err != nil {
		t.Fatalf("apply coupons: %v", err)
	}
	return receipt.Discounts()
}

func TestCouponDoubleQuantityScenario(t *testing.T) {
	catalog, juice, coupon, applied := couponFixture()
	cart := NewCart()
	cart.AddItemQuantity(juice, 12)

	discounts := applyCoupon(t, cart, coupon, applied, catalog)
	if len(discounts) != 1 {
		t.Fatalf("expected one discount, got %d", len(discounts))
	}
	// Six extra units at 50% of 2.00 each.
	if !almost(discounts[0].Amount, 6.00) {
		t.Fatalf("expected 6.00, got %v", discounts[0].Amount)
	}
	if discounts[0].Description != "coupon(buy 6 orange juice, get 6 at 50% off)" {
		t.Fatalf("unexpected description %q", discounts[0].Description)
	}
	if !coupon.Redeemed() {
		t.Fatal("coupon must be redeemed after application")
	}
}

func TestCouponDiscountedQuantityCappedAtRequired(t *testing.T) {
	catalog, juice, coupon, applied := couponFixture()
	cart := NewCart()
	cart.AddItemQuantity(juice, 20) // 14 extra, but only 6 are discountable

	discounts := applyCoupon(t, cart, coupon, applied, catalog)
	if !almost(discounts[0].Amount, 6.00) {
		t.Fatalf("expected cap at required quantity, got %v", discounts[0].Amount)
	}
}

func TestCouponSingleRedemptionAcrossCheckouts(t *testing.T) {
	catalog, juice, coupon, applied := couponFixture()

	cart := NewCart()
	cart.AddItemQuantity(juice, 12)
	if got := applyCoupon(t, cart, coupon, applied, catalog); len(got) != 1 {
		t.Fatalf("first application: expected one discount, got %d", len(got))
	}

	again := NewCart()
	again.AddItemQuantity(juice, 12)
	if got := applyCoupon(t, again, coupon, applied, catalog); len(got) != 0 {
		t.Fatalf("redeemed coupon must not apply again, got %+v", got)
	}
}

func TestCouponAtThresholdStaysUnredeemed(t *testing.T) {
	catalog, juice, coupon, applied := couponFixture()
	cart := NewCart()
	cart.AddItemQuantity(juice, 6) // q == required: nothing extra to discount

	if got := applyCoupon(t, cart, coupon, applied, catalog); len(got) != 0 {
		t.Fatalf("expected no discount at threshold, got %+v", got)
	}
	if coupon.Redeemed() {
		t.Fatal("unapplied coupon must stay unredeemed for a later checkout")
	}
}

func TestCouponValidityWindowInclusive(t *testing.T) {
	_, _, coupon, _ := couponFixture()
	if !coupon.ValidOn(coupon.ValidFrom) {
		t.Fatal("window start must be valid")
	}
	if !coupon.ValidOn(coupon.ValidTo) {
		t.Fatal("window end must be valid")
	}
	if coupon.ValidOn(coupon.ValidTo.Add(time.Second)) {
		t.Fatal("past the window must be invalid")
	}
	if coupon.ValidOn(coupon.ValidFrom.Add(-time.Second)) {
		t.Fatal("before the window must be invalid")
	}
}

func TestCouponOutsideWindowSkippedSilently(t *testing.T) {
	catalog, juice, coupon, _ := couponFixture()
	cart := NewCart()
	cart.AddItemQuantity(juice, 12)

	late := coupon.ValidTo.AddDate(0, 1, 0)
	if got := applyCoupon(t, cart, coupon, late, catalog); len(got) != 0 {
		t.Fatalf("expired coupon must be skipped, got %+v", got)
	}
	if coupon.Redeemed() {
		t.Fatal("skipped coupon must stay unredeemed")
	}
}

func TestRegisterRedeemedCouponIsNoOp(t *testing.T) {
	catalog, juice, coupon, applied := couponFixture()
	cart := NewCart()
	cart.AddItemQuantity(juice, 12)
	applyCoupon(t, cart, coupon, applied, catalog)

	teller := NewTeller(catalog)
	teller.RegisterCoupon(coupon, applied)
	if len(teller.coupons) != 0 {
		t.Fatal("registering a redeemed coupon must be a no-op")
	}
}
