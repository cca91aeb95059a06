package order

import (
	"math"

	"upbit/pkg/coerce"
	"upbit/pkg/core"
)

// Quote is the pricing of a desired-price order.
type Quote struct {
	// Desired is the price the caller asked for.
	Desired float64
	// Checked is Desired truncated down to its tick size.
	Checked float64
	// Submitted is the price actually sent with the order.
	Submitted float64
}

// QuoteDesiredPrice prices an order placed "at the desired price".
//
// Submitted is (Checked + 1) / tick, the formula existing callers depend on.
// It is not a tick-aligned price; see coerce.DesiredOrderPrice.
func QuoteDesiredPrice(desired float64) (Quote, error) {
	if desired <= 0 || math.IsNaN(desired) || math.IsInf(desired, 0) {
		return Quote{}, core.NewLocalError(core.KindInvalidParameter, "desired price must be a positive number")
	}
	checked := coerce.PriceChecker(desired)
	return Quote{
		Desired:   desired,
		Checked:   checked,
		Submitted: coerce.DesiredOrderPrice(checked),
	}, nil
}

// DesiredPriceOrder builds a limit order for volume at the submitted price of q.
func DesiredPriceOrder(market string, side core.OrderSide, volume float64, q Quote) (*core.OrderRequest, error) {
	return NewBuilder(market).
		Side(side).
		Limit().
		PriceFloat(q.Submitted).
		VolumeFloat(volume).
		Build()
}
