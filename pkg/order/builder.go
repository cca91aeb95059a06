package order

import (
	"fmt"

	"upbit/pkg/coerce"
	"upbit/pkg/core"
)

// Builder provides a fluent interface for constructing order requests.
// It accumulates the first parsing error and reports it on Build.
//
// Example:
//
//	req, err := order.NewBuilder("KRW-BTC").
//	    Bid().
//	    Limit().
//	    Price("50000000").
//	    Volume("0.001").
//	    Build()
type Builder struct {
	req *core.OrderRequest
	err error
}

// NewBuilder creates a new order builder for the given market code.
func NewBuilder(market string) *Builder {
	return &Builder{
		req: &core.OrderRequest{Market: market},
	}
}

// Side sets the order side.
func (b *Builder) Side(side core.OrderSide) *Builder {
	if b.err != nil {
		return b
	}
	b.req.Side = side
	return b
}

// Bid sets the order side to bid (buy).
func (b *Builder) Bid() *Builder {
	return b.Side(core.SideBid)
}

// Ask sets the order side to ask (sell).
func (b *Builder) Ask() *Builder {
	return b.Side(core.SideAsk)
}

// Type sets the order type.
func (b *Builder) Type(orderType core.OrderType) *Builder {
	if b.err != nil {
		return b
	}
	b.req.OrdType = orderType
	return b
}

// Limit sets the order type to limit.
func (b *Builder) Limit() *Builder {
	return b.Type(core.TypeLimit)
}

// MarketBuy makes the order a market bid spending the amount given by Price.
func (b *Builder) MarketBuy() *Builder {
	return b.Bid().Type(core.TypePrice)
}

// MarketSell makes the order a market ask selling the amount given by Volume.
func (b *Builder) MarketSell() *Builder {
	return b.Ask().Type(core.TypeMarket)
}

// Best sets the order type to best. It must be combined with IOC or FOK.
func (b *Builder) Best() *Builder {
	return b.Type(core.TypeBest)
}

// Price sets the price from a decimal string.
func (b *Builder) Price(price string) *Builder {
	if b.err != nil {
		return b
	}
	v, err := coerce.ParseFloat(price)
	if err != nil {
		b.err = core.WrapError(core.KindInvalidParameter, fmt.Errorf("parse price: %w", err))
		return b
	}
	b.req.Price = v
	return b
}

// PriceFloat sets the price.
func (b *Builder) PriceFloat(price float64) *Builder {
	if b.err != nil {
		return b
	}
	b.req.Price = price
	return b
}

// Volume sets the volume from a decimal string.
func (b *Builder) Volume(volume string) *Builder {
	if b.err != nil {
		return b
	}
	v, err := coerce.ParseFloat(volume)
	if err != nil {
		b.err = core.WrapError(core.KindInvalidParameter, fmt.Errorf("parse volume: %w", err))
		return b
	}
	b.req.Volume = v
	return b
}

// VolumeFloat sets the volume.
func (b *Builder) VolumeFloat(volume float64) *Builder {
	if b.err != nil {
		return b
	}
	b.req.Volume = volume
	return b
}

// TimeInForce sets the time-in-force policy.
func (b *Builder) TimeInForce(tif core.TimeInForce) *Builder {
	if b.err != nil {
		return b
	}
	b.req.TimeInForce = tif
	return b
}

// IOC sets the time-in-force to Immediate-Or-Cancel.
func (b *Builder) IOC() *Builder {
	return b.TimeInForce(core.IOC)
}

// FOK sets the time-in-force to Fill-Or-Kill.
func (b *Builder) FOK() *Builder {
	return b.TimeInForce(core.FOK)
}

// Identifier sets a caller-chosen identifier that can later be used to look
// the order up or cancel it. The exchange rejects reused identifiers.
func (b *Builder) Identifier(id string) *Builder {
	if b.err != nil {
		return b
	}
	b.req.Identifier = id
	return b
}

// Build validates and returns the order request.
func (b *Builder) Build() (*core.OrderRequest, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.req.Validate(); err != nil {
		return nil, err
	}
	return b.req, nil
}
