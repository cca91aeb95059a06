package upbit

import (
	"context"

	"upbit/pkg/core"
	"upbit/pkg/exchange"
)

// ListMarkets lists every tradable market. WithDetails adds warning flags.
func (e *UpbitExchange) ListMarkets(ctx context.Context, opts ...exchange.Option) ([]core.MarketInfo, error) {
	options := exchange.ApplyOptions(opts...)
	return call[[]core.MarketInfo](ctx, e, core.OpListMarkets, core.Params{"is_details": options.Details})
}

// GetTicker retrieves the current ticker of each market.
func (e *UpbitExchange) GetTicker(ctx context.Context, markets ...string) ([]core.Ticker, error) {
	return call[[]core.Ticker](ctx, e, core.OpGetTicker, core.Params{"markets": markets})
}

// GetOrderBook retrieves the order book of each market.
func (e *UpbitExchange) GetOrderBook(ctx context.Context, markets ...string) ([]core.OrderBook, error) {
	return call[[]core.OrderBook](ctx, e, core.OpGetOrderBook, core.Params{"markets": markets})
}

// GetTrades retrieves recent trades on market, newest first.
func (e *UpbitExchange) GetTrades(ctx context.Context, market string, opts ...exchange.Option) ([]core.TradeTick, error) {
	options := exchange.ApplyOptions(opts...)

	params := core.Params{
		"market":   market,
		"to":       options.To,
		"count":    options.Count,
		"cursor":   options.Cursor,
		"days_ago": options.DaysAgo,
	}
	return call[[]core.TradeTick](ctx, e, core.OpGetTrades, params)
}

// GetMinuteCandles retrieves minute candles. unit must be one of
// 1, 3, 5, 10, 15, 30, 60 or 240.
func (e *UpbitExchange) GetMinuteCandles(ctx context.Context, market string, unit int, opts ...exchange.Option) ([]core.Candle, error) {
	params := candleParams(market, opts)
	params["unit"] = unit
	return call[[]core.Candle](ctx, e, core.OpGetMinuteCandles, params)
}

// GetDayCandles retrieves day candles. WithConvertingPriceUnit adds closing
// prices converted to another currency.
func (e *UpbitExchange) GetDayCandles(ctx context.Context, market string, opts ...exchange.Option) ([]core.Candle, error) {
	return call[[]core.Candle](ctx, e, core.OpGetDayCandles, candleParams(market, opts))
}

func (e *UpbitExchange) GetWeekCandles(ctx context.Context, market string, opts ...exchange.Option) ([]core.Candle, error) {
	return call[[]core.Candle](ctx, e, core.OpGetWeekCandles, candleParams(market, opts))
}

func (e *UpbitExchange) GetMonthCandles(ctx context.Context, market string, opts ...exchange.Option) ([]core.Candle, error) {
	return call[[]core.Candle](ctx, e, core.OpGetMonthCandles, candleParams(market, opts))
}

func candleParams(market string, opts []exchange.Option) core.Params {
	options := exchange.ApplyOptions(opts...)
	return core.Params{
		"market":                market,
		"to":                    options.To,
		"count":                 options.Count,
		"converting_price_unit": options.ConvertingPriceUnit,
	}
}
