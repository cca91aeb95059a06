package core

import (
	"fmt"
)

// OrderRequest holds the parameters of a new order.
// Zero Volume or Price means the field is not sent.
type OrderRequest struct {
	Market      string      `json:"market" validate:"required"`
	Side        OrderSide   `json:"side" validate:"required"`
	OrdType     OrderType   `json:"ord_type" validate:"required"`
	Volume      float64     `json:"volume,omitempty" validate:"gte=0"`
	Price       float64     `json:"price,omitempty" validate:"gte=0"`
	Identifier  string      `json:"identifier,omitempty"`
	TimeInForce TimeInForce `json:"time_in_force,omitempty"`
}

// Validate checks the request against the exchange's per-type rules. It
// returns a KindInvalidParameter error without contacting the exchange.
func (r *OrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return WrapError(KindInvalidParameter, err)
	}
	if _, err := ParseMarket(r.Market); err != nil {
		return err
	}
	if r.Side != SideBid && r.Side != SideAsk {
		return invalidOrder("unknown side %d", int(r.Side))
	}

	switch r.OrdType {
	case TypeLimit:
		if r.Volume <= 0 || r.Price <= 0 {
			return invalidOrder("limit order requires volume and price")
		}
	case TypePrice:
		if r.Side != SideBid {
			return invalidOrder("price order must be a bid")
		}
		if r.Price <= 0 || r.Volume != 0 {
			return invalidOrder("price order requires price and no volume")
		}
	case TypeMarket:
		if r.Side != SideAsk {
			return invalidOrder("market order must be an ask")
		}
		if r.Volume <= 0 || r.Price != 0 {
			return invalidOrder("market order requires volume and no price")
		}
	case TypeBest:
		if r.TimeInForce != IOC && r.TimeInForce != FOK {
			return invalidOrder("best order requires time_in_force ioc or fok")
		}
		if r.Side == SideBid && (r.Price <= 0 || r.Volume != 0) {
			return invalidOrder("best bid requires price and no volume")
		}
		if r.Side == SideAsk && (r.Volume <= 0 || r.Price != 0) {
			return invalidOrder("best ask requires volume and no price")
		}
	default:
		return invalidOrder("unknown order type %d", int(r.OrdType))
	}

	if r.TimeInForce != 0 && r.OrdType != TypeLimit && r.OrdType != TypeBest {
		return invalidOrder("time_in_force is only allowed for limit and best orders")
	}
	return nil
}

func invalidOrder(format string, args ...any) error {
	return NewLocalError(KindInvalidParameter, fmt.Sprintf(format, args...))
}
