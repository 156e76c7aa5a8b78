package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"supermarket/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReceiptHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	receiptID := uuid.New()
	testRecord := &model.ReceiptRecord{
		ID:    receiptID,
		Total: 1.98,
		Items: []model.ReceiptLine{
			{Name: "toothbrush", Unit: "EACH", Quantity: 2, UnitPrice: 0.99, TotalPrice: 1.98},
		},
		Printed: "toothbrush                          1.98\n  0.99 * 2\n\nTotal:                              1.98\n",
	}

	tests := []struct {
		name           string
		method         string
		path           string
		mockReturn     *model.ReceiptRecord
		mockError      error
		expectedStatus int
		expectService  bool
		receiptID      uuid.UUID
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			path:           "/api/receipts/" + receiptID.String(),
			mockReturn:     testRecord,
			expectedStatus: http.StatusOK,
			expectService:  true,
			receiptID:      receiptID,
		},
		{
			name:           "Receipt not found",
			method:         http.MethodGet,
			path:           "/api/receipts/" + receiptID.String(),
			mockError:      model.ErrReceiptNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
			receiptID:      receiptID,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			path:           "/api/receipts/" + receiptID.String(),
			mockError:      fmt.Errorf("failed to get receipt: %w", errors.New("timeout")),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
			receiptID:      receiptID,
		},
		{
			name:           "Invalid UUID format",
			method:         http.MethodGet,
			path:           "/api/receipts/invalid-uuid",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Missing receipt ID",
			method:         http.MethodGet,
			path:           "/api/receipts/",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPut,
			path:           "/api/receipts/" + receiptID.String(),
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCheckoutService)
			handler := NewReceiptHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetReceipt", mock.Anything, tt.receiptID).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestReceiptHandler_GetByID_TextFormat(t *testing.T) {
	receiptID := uuid.New()
	printed := "rice                                2.49\n\nTotal:                              2.49\n"

	mockService := new(MockCheckoutService)
	mockService.On("GetReceipt", mock.Anything, receiptID).
		Return(&model.ReceiptRecord{ID: receiptID, Total: 2.49, Printed: printed}, nil)
	handler := NewReceiptHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/receipts/"+receiptID.String()+"?format=text", nil)
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, printed, w.Body.String())
}
