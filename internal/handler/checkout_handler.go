package handler

import (
	"net/http"

	"supermarket/internal/model"
	"supermarket/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout HTTP requests.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Create handles POST /api/checkout requests.
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.CheckoutRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	rec, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to check out", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}
