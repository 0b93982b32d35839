package pricing

import "suitenest/internal/domain/stay"

type PriceCalculator interface {
	CalculateTotal(pricePerNight *Money, r stay.DateRange) Money
}

// NightlyPriceCalculator bills every night of the stay at the room rate.
// A nil rate means the room has not been loaded yet and prices to zero.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) CalculateTotal(pricePerNight *Money, r stay.DateRange) Money {
	if pricePerNight == nil {
		return Money{}
	}
	return pricePerNight.Times(r.Nights())
}
