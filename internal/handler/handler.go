package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"supermarket/internal/catalog"
	"supermarket/internal/model"

	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps request payloads.
const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error onto a status code and error code.
// Unknown errors are reported as internal without leaking their text.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var de *model.DomainError
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		writeError(w, http.StatusBadRequest, model.ErrCodeProductNotFound, err.Error(), logger)
	case errors.Is(err, model.ErrReceiptNotFound):
		writeError(w, http.StatusNotFound, model.ErrCodeReceiptNotFound, "receipt not found", logger)
	case errors.Is(err, model.ErrOfferNotFound):
		writeError(w, http.StatusNotFound, model.ErrCodeOfferNotFound, "offer not found", logger)
	case errors.As(err, &de):
		writeError(w, http.StatusBadRequest, de.Code, err.Error(), logger)
	default:
		logger.Error().Err(err).Msg(fallback)
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, fallback, logger)
	}
}

// decodeAndValidate reads a JSON body into dst and runs its validation tags.
// On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			writeError(w, http.StatusBadRequest, model.ErrCodeTypeMismatch,
				fmt.Sprintf("%s must be %s", typeErr.Field, typeErr.Type), logger)
			return false
		}
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			code := model.ErrCodeValueViolation
			if fe.Tag() == "required" {
				code = model.ErrCodeMissingField
			}
			writeError(w, http.StatusBadRequest, code, validationMessage(fe), logger)
			return false
		}
		writeError(w, http.StatusBadRequest, model.ErrCodeValueViolation, err.Error(), logger)
		return false
	}

	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "min":
		return fmt.Sprintf("%s must contain at least %s entries", fe.Namespace(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Namespace(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Namespace(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag())
	}
}
