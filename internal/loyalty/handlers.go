package loyalty

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grocerly/checkout-api/internal/common"
)

// Handler exposes loyalty card endpoints.
type Handler struct {
	Store *Store
}

type cardPayload struct {
	CardID string  `json:"cardId"`
	Points float64 `json:"points"`
}

// CreateCard handles POST /api/v1/loyalty-cards.
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "loyalty store not configured", nil)
		return
	}
	id := h.Store.Create()
	common.JSON(w, http.StatusCreated, map[string]any{"data": cardPayload{CardID: id}})
}

// Card handles GET /api/v1/loyalty-cards/{id}.
func (h *Handler) Card(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "loyalty store not configured", nil)
		return
	}
	id := chi.URLParam(r, "id")
	account, ok := h.Store.Get(id)
	if !ok {
		common.JSONError(w, http.StatusNotFound, "CARD_NOT_FOUND", "unknown loyalty card", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": cardPayload{CardID: id, Points: account.Points()}})
}
