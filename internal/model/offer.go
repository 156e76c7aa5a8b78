package model

import "strings"

// SpecialOfferType enumerates the supported offer kinds. No other values
// are accepted.
type SpecialOfferType int

const (
	TenPercentDiscount SpecialOfferType = iota + 1
	ThreeForTwo
	TwoForAmount
	FiveForAmount
)

var offerTypeNames = map[SpecialOfferType]string{
	TenPercentDiscount: "TEN_PERCENT_DISCOUNT",
	ThreeForTwo:        "THREE_FOR_TWO",
	TwoForAmount:       "TWO_FOR_AMOUNT",
	FiveForAmount:      "FIVE_FOR_AMOUNT",
}

// SpecialOfferTypes lists every offer type in declaration order.
func SpecialOfferTypes() []SpecialOfferType {
	return []SpecialOfferType{TenPercentDiscount, ThreeForTwo, TwoForAmount, FiveForAmount}
}

// String returns the canonical name, e.g. "THREE_FOR_TWO".
func (t SpecialOfferType) String() string {
	if name, ok := offerTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether t is one of the four known offer types.
func (t SpecialOfferType) Valid() bool {
	_, ok := offerTypeNames[t]
	return ok
}

// RequiresArgument reports whether offers of this type need a positive argument.
func (t SpecialOfferType) RequiresArgument() bool {
	return t.Valid() && t != ThreeForTwo
}

// ParseSpecialOfferType converts a canonical name (any case) to its type.
func ParseSpecialOfferType(s string) (SpecialOfferType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return 0, NewValueError("offer type is required")
	}
	for t, n := range offerTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, NewValueError("invalid offer type %q", s)
}

// Offer is a special offer registered against a single product.
type Offer struct {
	offerType SpecialOfferType
	product   Product
	argument  float64
}

// NewOffer creates a validated offer. The argument is a percentage for
// TenPercentDiscount and a bundle price for TwoForAmount and FiveForAmount;
// ThreeForTwo ignores it.
func NewOffer(offerType SpecialOfferType, product Product, argument float64) (Offer, error) {
	if offerType == 0 {
		return Offer{}, NewValueError("offer type is required")
	}
	if !offerType.Valid() {
		return Offer{}, NewValueError("invalid offer type %d", int(offerType))
	}
	if product.IsZero() {
		return Offer{}, NewValueError("product cannot be empty")
	}
	if offerType.RequiresArgument() {
		if !IsFinite(argument) {
			return Offer{}, NewTypeError("%s requires a numeric argument, got %v", offerType, argument)
		}
		if argument <= 0 {
			return Offer{}, NewValueError("%s requires a positive argument, got %v", offerType, argument)
		}
	}
	return Offer{offerType: offerType, product: product, argument: argument}, nil
}

// OfferType returns the offer kind.
func (o Offer) OfferType() SpecialOfferType { return o.offerType }

// Product returns the product the offer applies to.
func (o Offer) Product() Product { return o.product }

// Argument returns the offer argument.
func (o Offer) Argument() float64 { return o.argument }

// IsZero reports whether o is the zero value.
func (o Offer) IsZero() bool { return o == Offer{} }
