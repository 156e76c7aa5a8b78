package offer

import (
	"fmt"
	"math"
	"strconv"

	"supermarket/internal/model"
)

// Calculator computes the discount one offer type grants.
type Calculator interface {
	// Threshold is the smallest quantity the offer applies to.
	Threshold() float64

	// Amount returns the discount for quantity units at unitPrice as a
	// non-positive number. Quantities below Threshold return exactly 0.
	Amount(quantity, unitPrice, argument float64) float64

	// Description renders the offer for a receipt line.
	Description(argument float64) string
}

// percentCalculator takes argument percent off the full line price.
type percentCalculator struct{}

func (percentCalculator) Threshold() float64 { return 0 }

func (c percentCalculator) Amount(quantity, unitPrice, argument float64) float64 {
	if quantity <= c.Threshold() {
		return 0
	}
	return -(quantity * unitPrice) * (argument / 100)
}

func (percentCalculator) Description(argument float64) string {
	return strconv.FormatFloat(argument, 'f', -1, 64) + "% off"
}

// threeForTwoCalculator charges two units for every complete group of three.
type threeForTwoCalculator struct{}

func (threeForTwoCalculator) Threshold() float64 { return 3 }

func (c threeForTwoCalculator) Amount(quantity, unitPrice, _ float64) float64 {
	if quantity < c.Threshold() {
		return 0
	}
	groups := math.Floor(quantity / 3)
	paid := groups*2 + math.Mod(quantity, 3)
	return -(quantity*unitPrice - paid*unitPrice)
}

func (threeForTwoCalculator) Description(float64) string {
	return "3 for 2"
}

// bundleCalculator sells complete bundles of size units for argument;
// the remainder is charged at unit price.
type bundleCalculator struct {
	size float64
}

func (c bundleCalculator) Threshold() float64 { return c.size }

func (c bundleCalculator) Amount(quantity, unitPrice, argument float64) float64 {
	if quantity < c.Threshold() {
		return 0
	}
	bundles := math.Floor(quantity / c.size)
	remainder := math.Mod(quantity, c.size)
	return -(quantity*unitPrice - (bundles*argument + remainder*unitPrice))
}

func (c bundleCalculator) Description(argument float64) string {
	return fmt.Sprintf("%g for %.2f", c.size, argument)
}

// DefaultCalculators returns the calculator for every offer type.
func DefaultCalculators() map[model.SpecialOfferType]Calculator {
	return map[model.SpecialOfferType]Calculator{
		model.TenPercentDiscount: percentCalculator{},
		model.ThreeForTwo:        threeForTwoCalculator{},
		model.TwoForAmount:       bundleCalculator{size: 2},
		model.FiveForAmount:      bundleCalculator{size: 5},
	}
}
