package promo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/grocerly/checkout-api/internal/common"
	"github.com/grocerly/checkout-api/internal/pricing"
)

// ProductResolver turns a product name into a catalog product.
type ProductResolver interface {
	Product(ctx context.Context, name string) (pricing.Product, error)
}

// Handler exposes admin endpoints for registering promotions.
type Handler struct {
	registry *Registry
	products ProductResolver
	validate *validator.Validate
	now      func() time.Time
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Registry *Registry
	Products ProductResolver
	Validate *validator.Validate
	Now      func() time.Time
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{registry: cfg.Registry, products: cfg.Products, validate: v, now: now}
}

type offerPayload struct {
	Type     string  `json:"type" validate:"required,oneof=three_for_two two_for_amount five_for_amount percent_discount"`
	Product  string  `json:"product" validate:"required"`
	Argument float64 `json:"argument" validate:"gte=0"`
}

// CreateOffer handles POST /api/v1/admin/offers.
func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var payload offerPayload
	if !h.decode(w, r, &payload) {
		return
	}
	offerType, err := pricing.ParseOfferType(payload.Type)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	product, ok := h.resolve(w, r.Context(), payload.Product)
	if !ok {
		return
	}
	h.registry.SetOffer(offerType, product, payload.Argument)
	common.JSON(w, http.StatusCreated, map[string]any{"data": payload})
}

type bundlePayload struct {
	Products []string `json:"products" validate:"required,min=2,unique,dive,required"`
}

// CreateBundle handles POST /api/v1/admin/bundles.
func (h *Handler) CreateBundle(w http.ResponseWriter, r *http.Request) {
	var payload bundlePayload
	if !h.decode(w, r, &payload) {
		return
	}
	products := make([]pricing.Product, 0, len(payload.Products))
	for _, name := range payload.Products {
		product, ok := h.resolve(w, r.Context(), name)
		if !ok {
			return
		}
		products = append(products, product)
	}
	h.registry.AddBundle(products)
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{"description": pricing.Bundle{Products: products}.Description()},
	})
}

type couponPayload struct {
	Product          string    `json:"product" validate:"required"`
	RequiredQuantity int       `json:"requiredQuantity" validate:"required,gt=0"`
	DiscountPercent  float64   `json:"discountPercent" validate:"gt=0,lte=100"`
	ValidFrom        time.Time `json:"validFrom" validate:"required"`
	ValidTo          time.Time `json:"validTo" validate:"required,gtefield=ValidFrom"`
	// AppliedAt overrides the registration date the validity window is
	// checked against. Defaults to now.
	AppliedAt *time.Time `json:"appliedAt,omitempty"`
}

// CreateCoupon handles POST /api/v1/admin/coupons.
func (h *Handler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var payload couponPayload
	if !h.decode(w, r, &payload) {
		return
	}
	product, ok := h.resolve(w, r.Context(), payload.Product)
	if !ok {
		return
	}
	coupon := pricing.NewCoupon(product, payload.RequiredQuantity, payload.DiscountPercent, payload.ValidFrom, payload.ValidTo)
	appliedAt := h.now()
	if payload.AppliedAt != nil {
		appliedAt = *payload.AppliedAt
	}
	h.registry.AddCoupon(coupon, appliedAt)
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{
			"description": coupon.Description(),
			"appliedAt":   appliedAt,
			"valid":       coupon.ValidOn(appliedAt),
		},
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if h.registry == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "promo registry not configured", nil)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON payload", nil)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "validation failed", common.ValidationDetails(err))
		return false
	}
	return true
}

func (h *Handler) resolve(w http.ResponseWriter, ctx context.Context, name string) (pricing.Product, bool) {
	product, err := h.products.Product(ctx, name)
	if err != nil {
		if errors.Is(err, pricing.ErrPriceNotFound) {
			common.JSONError(w, http.StatusUnprocessableEntity, "PRICE_LOOKUP", "unknown product: "+name, nil)
			return pricing.Product{}, false
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
		return pricing.Product{}, false
	}
	return product, true
}
