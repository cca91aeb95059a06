package coerce

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

type tickTier struct {
	min  float64
	unit *apd.Decimal
}

// KRW market tick sizes, highest tier first. Prices from 1 up to 10 use the
// 0.1 unit of the tier above, so 7.25 checks to 7.2.
var tickTiers = []tickTier{
	{2_000_000, mustDecimal("1000")},
	{1_000_000, mustDecimal("500")},
	{500_000, mustDecimal("100")},
	{100_000, mustDecimal("50")},
	{10_000, mustDecimal("10")},
	{1_000, mustDecimal("5")},
	{100, mustDecimal("1")},
	{10, mustDecimal("0.1")},
	{1, mustDecimal("0.1")},
	{0, mustDecimal("0.01")},
}

var negativeTickUnit = mustDecimal("0.001")

// TickSize returns the price unit of the tier the price falls in.
func TickSize(price float64) float64 {
	v, _ := tickUnit(price).Float64()
	return v
}

// PriceChecker truncates price down to a multiple of its tick size:
// floor(price / unit) * unit. Non-finite input is returned unchanged.
func PriceChecker(price float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return price
	}

	var p apd.Decimal
	if _, err := p.SetFloat64(price); err != nil {
		return price
	}

	unit := tickUnit(price)
	var steps, result apd.Decimal
	if _, err := decimalContext.Quo(&steps, &p, unit); err != nil {
		return price
	}
	if _, err := decimalContext.Floor(&steps, &steps); err != nil {
		return price
	}
	if _, err := decimalContext.Mul(&result, &steps, unit); err != nil {
		return price
	}

	v, err := result.Float64()
	if err != nil {
		return price
	}
	return v
}

// DesiredOrderPrice returns the price the desired-price order helpers submit:
// (price + 1) / tick size of price.
// TODO: confirm this formula with the API owners; it does not match the
// exchange's documented tick rules.
func DesiredOrderPrice(price float64) float64 {
	return (price + 1) / TickSize(price)
}

func tickUnit(price float64) *apd.Decimal {
	if price < 0 {
		return negativeTickUnit
	}
	for _, tier := range tickTiers {
		if price >= tier.min {
			return tier.unit
		}
	}
	return negativeTickUnit
}

func mustDecimal(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
