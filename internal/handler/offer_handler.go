package handler

import (
	"net/http"

	"supermarket/internal/model"
	"supermarket/internal/service"

	"github.com/rs/zerolog"
)

// OfferHandler handles special offer HTTP requests.
type OfferHandler struct {
	service service.OfferService
	logger  zerolog.Logger
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(service service.OfferService, logger zerolog.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		logger:  logger.With().Str("handler", "offer").Logger(),
	}
}

// ServeHTTP routes GET, POST and DELETE /api/offers.
func (h *OfferHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Register(w, r)
	case http.MethodDelete:
		h.Remove(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
	}
}

// List handles GET /api/offers requests.
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// Register handles POST /api/offers requests.
func (h *OfferHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.OfferRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to register offer", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Remove handles DELETE /api/offers?name=<name>&unit=<unit> requests.
func (h *OfferHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	unit := r.URL.Query().Get("unit")
	if name == "" || unit == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "name and unit query parameters are required", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), name, unit); err != nil {
		writeServiceError(w, err, "failed to remove offer", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
