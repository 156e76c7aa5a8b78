package handler

import (
	"net/http"
	"strings"

	"supermarket/internal/model"
	"supermarket/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const receiptsPath = "/api/receipts/"

// ReceiptHandler serves stored receipts.
type ReceiptHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(service service.CheckoutService, logger zerolog.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		service: service,
		logger:  logger.With().Str("handler", "receipt").Logger(),
	}
}

// GetByID handles GET /api/receipts/{id} requests. With ?format=text the
// printed receipt is returned as plain text.
func (h *ReceiptHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, receiptsPath)
	if idStr == "" || idStr == r.URL.Path {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "receipt ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid receipt ID format", h.logger)
		return
	}

	rec, err := h.service.GetReceipt(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve receipt", h.logger)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(rec.Printed))
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
