package pricing

import (
	"context"
	"testing"
)

func bundleFixture() (*MemoryCatalog, Product, Product) {
	toothbrush := Product{Name: "toothbrush", Unit: Each}
	toothpaste := Product{Name: "toothpaste", Unit: Each}
	catalog := NewMemoryCatalog()
	catalog.AddProduct(toothbrush, 0.99)
	catalog.AddProduct(toothpaste, 1.79)
	return catalog, toothbrush, toothpaste
}

func applyBundle(t *testing.T, cart *Cart, bundle Bundle, catalog Catalog) []Discount {
	t.Helper()
	receipt := &Receipt{}
	if err := cart.ApplyBundles(context.Background(), receipt, []Bundle{bundle}, catalog); err != nil {
		t.Fatalf("apply bundles: %v", err)
	}
	return receipt.Discounts()
}

func TestBundleTenPercentOfValue(t *testing.T) {
	catalog, toothbrush, toothpaste := bundleFixture()
	cart := NewCart()
	cart.AddItem(toothbrush)
	cart.AddItem(toothpaste)

	discounts := applyBundle(t, cart, Bundle{Products: []Product{toothbrush, toothpaste}}, catalog)
	if len(discounts) != 1 {
		t.Fatalf("expected one discount, got %d", len(discounts))
	}
	if !almost(discounts[0].Amount, 0.278) {
		t.Fatalf("expected 10%% of 2.78, got %v", discounts[0].Amount)
	}
	if discounts[0].Description != "bundle(toothbrush + toothpaste)" {
		t.Fatalf("unexpected description %q", discounts[0].Description)
	}
	if discounts[0].Product.Name != "toothbrush" {
		t.Fatalf("discount must carry the first bundle product, got %q", discounts[0].Product.Name)
	}
}

func TestBundleMissingMemberProducesNothing(t *testing.T) {
	catalog, toothbrush, toothpaste := bundleFixture()
	cart := NewCart()
	cart.AddItem(toothbrush)

	discounts := applyBundle(t, cart, Bundle{Products: []Product{toothbrush, toothpaste}}, catalog)
	if len(discounts) != 0 {
		t.Fatalf("expected no discount, got %+v", discounts)
	}
}

func TestBundleCompletenessIsMinimumUnitCount(t *testing.T) {
	_, toothbrush, toothpaste := bundleFixture()
	bundle := Bundle{Products: []Product{toothbrush, toothpaste}}

	cart := NewCart()
	cart.AddItemQuantity(toothbrush, 3)
	cart.AddItem(toothpaste)
	if got := cart.completeBundles(bundle); got != 1 {
		t.Fatalf("expected 1 complete bundle, got %d", got)
	}

	// Adding a unit of the limiting member raises the count.
	cart.AddItem(toothpaste)
	if got := cart.completeBundles(bundle); got != 2 {
		t.Fatalf("expected 2 complete bundles, got %d", got)
	}
}

func TestBundleKiloWeightIsProratedNotCounted(t *testing.T) {
	apples := Product{Name: "apples", Unit: Kilo}
	bread := Product{Name: "bread", Unit: Each}
	catalog := NewMemoryCatalog()
	catalog.AddProduct(apples, 2.00)
	catalog.AddProduct(bread, 1.00)

	// Any positive weight satisfies one bundle's worth of the kilo member;
	// the discount prorates the actual weight.
	cart := NewCart()
	cart.AddItemQuantity(apples, 0.5)
	cart.AddItem(bread)

	discounts := applyBundle(t, cart, Bundle{Products: []Product{apples, bread}}, catalog)
	if len(discounts) != 1 {
		t.Fatalf("expected one discount, got %d", len(discounts))
	}
	// Bundle value: 2.00*0.5 + 1.00 = 2.00; discount 10% = 0.20.
	if !almost(discounts[0].Amount, 0.20) {
		t.Fatalf("expected 0.20, got %v", discounts[0].Amount)
	}
}

func TestBundlePerBundleDiscountNotPerUnit(t *testing.T) {
	catalog, toothbrush, toothpaste := bundleFixture()
	cart := NewCart()
	cart.AddItemQuantity(toothbrush, 2)
	cart.AddItemQuantity(toothpaste, 2)

	discounts := applyBundle(t, cart, Bundle{Products: []Product{toothbrush, toothpaste}}, catalog)
	if len(discounts) != 1 {
		t.Fatalf("expected a single discount record per bundle, got %d", len(discounts))
	}
	// Two complete bundles at 2.78 each, 10% off.
	if !almost(discounts[0].Amount, 0.556) {
		t.Fatalf("expected 0.556, got %v", discounts[0].Amount)
	}
}

func TestBundleFractionalEachMemberIncomplete(t *testing.T) {
	catalog, toothbrush, toothpaste := bundleFixture()
	cart := NewCart()
	cart.AddItemQuantity(toothbrush, 0.5)
	cart.AddItem(toothpaste)

	discounts := applyBundle(t, cart, Bundle{Products: []Product{toothbrush, toothpaste}}, catalog)
	if len(discounts) != 0 {
		t.Fatalf("half a counted item must not complete a bundle, got %+v", discounts)
	}
}
