package render

import (
	"context"
	"strings"
	"testing"

	"github.com/grocerly/checkout-api/internal/pricing"
)

func checkout(t *testing.T, configure func(catalog *pricing.MemoryCatalog, teller *pricing.Teller, cart *pricing.Cart)) *pricing.Receipt {
	t.Helper()
	catalog := pricing.NewMemoryCatalog()
	teller := pricing.NewTeller(catalog)
	cart := pricing.NewCart()
	configure(catalog, teller, cart)
	receipt, err := teller.Checkout(context.Background(), cart)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return receipt
}

func TestPrintSingleItem(t *testing.T) {
	receipt := checkout(t, func(catalog *pricing.MemoryCatalog, _ *pricing.Teller, cart *pricing.Cart) {
		toothbrush := pricing.Product{Name: "toothbrush", Unit: pricing.Each}
		catalog.AddProduct(toothbrush, 0.99)
		cart.AddItem(toothbrush)
	})

	got := NewPrinter(40).Print(receipt)
	want := "toothbrush                          0.99\n\nTotal:                              0.99"
	if got != want {
		t.Fatalf("unexpected tape:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrintQuantityLineForMultiples(t *testing.T) {
	receipt := checkout(t, func(catalog *pricing.MemoryCatalog, _ *pricing.Teller, cart *pricing.Cart) {
		toothbrush := pricing.Product{Name: "toothbrush", Unit: pricing.Each}
		catalog.AddProduct(toothbrush, 0.99)
		cart.AddItemQuantity(toothbrush, 2)
	})

	got := NewPrinter(40).Print(receipt)
	if !strings.Contains(got, "  0.99 * 2\n") {
		t.Fatalf("expected unit-price line, got:\n%q", got)
	}
}

func TestPrintKiloQuantityWithThreeDecimals(t *testing.T) {
	receipt := checkout(t, func(catalog *pricing.MemoryCatalog, _ *pricing.Teller, cart *pricing.Cart) {
		apples := pricing.Product{Name: "apples", Unit: pricing.Kilo}
		catalog.AddProduct(apples, 1.99)
		cart.AddItemQuantity(apples, 2.5)
	})

	got := NewPrinter(40).Print(receipt)
	if !strings.Contains(got, "  1.99 * 2.500\n") {
		t.Fatalf("expected weighed quantity with three decimals, got:\n%q", got)
	}
}

func TestPrintDiscountLine(t *testing.T) {
	receipt := checkout(t, func(catalog *pricing.MemoryCatalog, teller *pricing.Teller, cart *pricing.Cart) {
		toothbrush := pricing.Product{Name: "toothbrush", Unit: pricing.Each}
		catalog.AddProduct(toothbrush, 1.00)
		teller.RegisterOffer(pricing.ThreeForTwo, toothbrush, 0)
		cart.AddItemQuantity(toothbrush, 3)
	})

	got := NewPrinter(40).Print(receipt)
	if !strings.Contains(got, "3 for 2(toothbrush)") {
		t.Fatalf("expected discount line, got:\n%q", got)
	}
	if !strings.Contains(got, "-1.00\n") {
		t.Fatalf("expected negative amount on discount line, got:\n%q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "3 for 2") && len(line) != 40 {
			t.Fatalf("discount line %q is %d columns wide", line, len(line))
		}
	}
}

func TestPrintGroupsThousands(t *testing.T) {
	receipt := checkout(t, func(catalog *pricing.MemoryCatalog, _ *pricing.Teller, cart *pricing.Cart) {
		paper := pricing.Product{Name: "paper", Unit: pricing.Each}
		catalog.AddProduct(paper, 1.00)
		cart.AddItemQuantity(paper, 1500)
	})

	got := NewPrinter(40).Print(receipt)
	if !strings.Contains(got, "1,500.00") {
		t.Fatalf("expected grouped total, got:\n%q", got)
	}
	if !strings.Contains(got, "* 1,500\n") {
		t.Fatalf("expected grouped quantity, got:\n%q", got)
	}
}

func TestDefaultColumnsFallback(t *testing.T) {
	if NewPrinter(0).columns != 40 {
		t.Fatal("expected 40-column fallback")
	}
}
