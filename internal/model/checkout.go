package model

import (
	"time"

	"github.com/google/uuid"
)

// PricedProduct is a catalog entry: a product and its undiscounted unit price.
type PricedProduct struct {
	Product Product
	Price   float64
}

// CatalogEntry is a stored catalog row as returned by the API.
type CatalogEntry struct {
	Name      string    `json:"name" db:"name"`
	Unit      string    `json:"unit" db:"unit"`
	Price     float64   `json:"price" db:"price"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CheckoutRequest represents the request payload for checking out a cart.
type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CheckoutItemRequest is one cart entry. Repeated products are accumulated.
type CheckoutItemRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Unit     string  `json:"unit" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

// OfferRequest represents the request payload for registering an offer.
type OfferRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Unit      string  `json:"unit" validate:"required"`
	OfferType string  `json:"offerType" validate:"required"`
	Argument  float64 `json:"argument" validate:"gte=0"`
}

// OfferResponse represents a registered offer.
type OfferResponse struct {
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	OfferType string  `json:"offerType"`
	Argument  float64 `json:"argument"`
}

// ReceiptRecord is a completed checkout as stored and returned by the API.
type ReceiptRecord struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	Total     float64           `json:"total" db:"total"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	Items     []ReceiptLine     `json:"items"`
	Discounts []ReceiptDiscount `json:"discounts"`
	Printed   string            `json:"printed,omitempty"`
}

// ReceiptLine is one product line of a stored receipt.
type ReceiptLine struct {
	ID         uuid.UUID `json:"-" db:"id"`
	ReceiptID  uuid.UUID `json:"-" db:"receipt_id"`
	Position   int       `json:"-" db:"position"`
	Name       string    `json:"name" db:"product_name"`
	Unit       string    `json:"unit" db:"product_unit"`
	Quantity   float64   `json:"quantity" db:"quantity"`
	UnitPrice  float64   `json:"unitPrice" db:"unit_price"`
	TotalPrice float64   `json:"totalPrice" db:"total_price"`
}

// ReceiptDiscount is one discount line of a stored receipt.
type ReceiptDiscount struct {
	ID          uuid.UUID `json:"-" db:"id"`
	ReceiptID   uuid.UUID `json:"-" db:"receipt_id"`
	Position    int       `json:"-" db:"position"`
	Name        string    `json:"name" db:"product_name"`
	Unit        string    `json:"unit" db:"product_unit"`
	Description string    `json:"description" db:"description"`
	Amount      float64   `json:"amount" db:"amount"`
}
