package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"supermarket/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOfferHandler_List(t *testing.T) {
	offers := []model.OfferResponse{
		{Name: "apples", Unit: "KILO", OfferType: "TEN_PERCENT_DISCOUNT", Argument: 20},
		{Name: "toothbrush", Unit: "EACH", OfferType: "THREE_FOR_TWO"},
	}

	mockService := new(MockOfferService)
	mockService.On("List", mock.Anything).Return(offers)
	handler := NewOfferHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/offers", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []model.OfferResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, offers, got)
	mockService.AssertExpectations(t)
}

func TestOfferHandler_Register(t *testing.T) {
	logger := zerolog.Nop()

	validRequest := &model.OfferRequest{Name: "rice", Unit: "EACH", OfferType: "FIVE_FOR_AMOUNT", Argument: 9.99}

	tests := []struct {
		name           string
		method         string
		requestBody    interface{}
		mockReturn     *model.OfferResponse
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			requestBody:    validRequest,
			mockReturn:     &model.OfferResponse{Name: "rice", Unit: "EACH", OfferType: "FIVE_FOR_AMOUNT", Argument: 9.99},
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Unknown offer type",
			method:         http.MethodPost,
			requestBody:    &model.OfferRequest{Name: "rice", Unit: "EACH", OfferType: "BOGOF"},
			mockError:      model.NewValueError("unknown special offer type %q", "BOGOF"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValueViolation,
			expectService:  true,
		},
		{
			name:           "Missing offer type",
			method:         http.MethodPost,
			requestBody:    &model.OfferRequest{Name: "rice", Unit: "EACH"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
			expectService:  false,
		},
		{
			name:           "Negative argument",
			method:         http.MethodPost,
			requestBody:    &model.OfferRequest{Name: "rice", Unit: "EACH", OfferType: "TWO_FOR_AMOUNT", Argument: -1},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValueViolation,
			expectService:  false,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			requestBody:    "{",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
			expectService:  false,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPut,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOfferService)
			handler := NewOfferHandler(mockService, logger)

			var body []byte
			if tt.requestBody != nil {
				if str, ok := tt.requestBody.(string); ok {
					body = []byte(str)
				} else {
					var err error
					body, err = json.Marshal(tt.requestBody)
					require.NoError(t, err)
				}
			}

			if tt.expectService {
				mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.OfferRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/offers", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOfferHandler_Remove(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{name: "Success", query: "?name=rice&unit=EACH", expectedStatus: http.StatusNoContent, expectService: true},
		{name: "No offer registered", query: "?name=rice&unit=EACH", mockError: model.ErrOfferNotFound, expectedStatus: http.StatusNotFound, expectService: true},
		{name: "Unknown unit", query: "?name=rice&unit=BOX", mockError: model.NewValueError("invalid product unit %q", "BOX"), expectedStatus: http.StatusBadRequest, expectService: true},
		{name: "Missing unit", query: "?name=rice", expectedStatus: http.StatusBadRequest, expectService: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOfferService)
			handler := NewOfferHandler(mockService, zerolog.Nop())

			if tt.expectService {
				mockService.On("Remove", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
					Return(tt.mockError)
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/offers"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
