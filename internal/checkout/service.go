package checkout

import (
	"context"
	"math"
	"net/http"
	"sync"

	"github.com/grocerly/checkout-api/internal/common"
	"github.com/grocerly/checkout-api/internal/loyalty"
	"github.com/grocerly/checkout-api/internal/obs"
	"github.com/grocerly/checkout-api/internal/pricing"
	"github.com/grocerly/checkout-api/internal/promo"
	"github.com/grocerly/checkout-api/internal/render"
)

// Catalog resolves product names and unit prices for a checkout.
type Catalog interface {
	pricing.Catalog
	Product(ctx context.Context, name string) (pricing.Product, error)
}

// ItemInput is one scanned line: a product name and how much of it.
type ItemInput struct {
	Product  string  `json:"product" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

// Input is the checkout request payload. An empty item list is a valid
// zero-total sale.
type Input struct {
	Items         []ItemInput `json:"items" validate:"dive"`
	LoyaltyCardID *string     `json:"loyaltyCardId,omitempty"`
	PointsToUse   float64     `json:"pointsToUse" validate:"gte=0"`
}

// LineItem mirrors a receipt line on the wire.
type LineItem struct {
	Product    string  `json:"product"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}

// DiscountItem mirrors an itemised discount on the wire.
type DiscountItem struct {
	Product     string  `json:"product"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Output is the finished sale: the receipt data plus the printed tape.
type Output struct {
	Items         []LineItem     `json:"items"`
	Discounts     []DiscountItem `json:"discounts"`
	PointsUsed    float64        `json:"pointsUsed"`
	PointsBalance *float64       `json:"pointsBalance,omitempty"`
	Total         float64        `json:"total"`
	Printed       string         `json:"printed"`
}

// Service runs checkouts: it builds a cart from the request, snapshots the
// promotion registry onto a fresh teller, and settles loyalty points. The
// mutex serialises sales so concurrent checkouts against one loyalty account
// never interleave the balance read and write.
type Service struct {
	Catalog Catalog
	Promos  *promo.Registry
	Cards   *loyalty.Store
	Printer *render.Printer

	mu sync.Mutex
}

// Checkout prices the request and returns the receipt.
func (s *Service) Checkout(ctx context.Context, in Input) (Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := pricing.NewCart()
	for _, item := range in.Items {
		product, err := s.Catalog.Product(ctx, item.Product)
		if err != nil {
			obs.CheckoutTotal.WithLabelValues("price_lookup_failed").Inc()
			return Output{}, err
		}
		cart.AddItemQuantity(product, item.Quantity)
	}

	teller := pricing.NewTeller(s.Catalog)
	if s.Promos != nil {
		s.Promos.Apply(teller)
	}

	var account *loyalty.Account
	if in.LoyaltyCardID != nil && *in.LoyaltyCardID != "" {
		var ok bool
		account, ok = s.Cards.Get(*in.LoyaltyCardID)
		if !ok {
			obs.CheckoutTotal.WithLabelValues("card_not_found").Inc()
			return Output{}, &common.AppError{
				Code:       "CARD_NOT_FOUND",
				Message:    "unknown loyalty card",
				HTTPStatus: http.StatusNotFound,
			}
		}
		teller.AttachLoyaltyAccount(account)
		teller.SetPointsToUse(in.PointsToUse)
	}

	receipt, err := teller.Checkout(ctx, cart)
	if err != nil {
		obs.CheckoutTotal.WithLabelValues("price_lookup_failed").Inc()
		return Output{}, err
	}

	obs.CheckoutTotal.WithLabelValues("ok").Inc()
	obs.CheckoutAmount.Observe(receipt.Total())
	var discounted float64
	for _, d := range receipt.Discounts() {
		discounted += d.Amount
	}
	obs.DiscountAmount.Observe(discounted)
	if used := receipt.PointsUsed(); used > 0 {
		obs.LoyaltyPointsUsed.Add(used)
	}
	if account != nil {
		if earned := math.Floor(receipt.Total()); earned > 0 {
			obs.LoyaltyPointsEarned.Add(earned)
		}
	}

	out := Output{
		Items:      make([]LineItem, 0, len(receipt.Items())),
		Discounts:  make([]DiscountItem, 0, len(receipt.Discounts())),
		PointsUsed: receipt.PointsUsed(),
		Total:      receipt.Total(),
	}
	for _, item := range receipt.Items() {
		out.Items = append(out.Items, LineItem{
			Product:    item.Product.Name,
			Unit:       item.Product.Unit.String(),
			Quantity:   item.Quantity,
			Price:      item.Price,
			TotalPrice: item.TotalPrice,
		})
	}
	for _, d := range receipt.Discounts() {
		out.Discounts = append(out.Discounts, DiscountItem{
			Product:     d.Product.Name,
			Description: d.Description,
			Amount:      d.Amount,
		})
	}
	if account != nil {
		balance := account.Points()
		out.PointsBalance = &balance
	}
	if s.Printer != nil {
		out.Printed = s.Printer.Print(receipt)
	}
	return out, nil
}
