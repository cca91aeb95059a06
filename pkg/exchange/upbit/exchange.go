package upbit

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"upbit/internal/auth"
	httpClient "upbit/internal/http"
	"upbit/internal/keyring"
	"upbit/pkg/core"
	"upbit/pkg/exchange"
	"upbit/pkg/order"
)

var _ exchange.Exchange = (*UpbitExchange)(nil)

// UpbitExchange implements the Exchange interface for Upbit.
// Each instance owns its credentials, so several clients with different keys
// can be used at the same time.
type UpbitExchange struct {
	config     *core.Config
	keys       *keyring.Store
	signer     *auth.Builder
	httpClient *httpClient.Client
	logger     zerolog.Logger
	protocol   *Protocol
}

// Option is a functional option for configuring the UpbitExchange.
type Option func(*Options)

// Options holds configuration options for the UpbitExchange.
type Options struct {
	Logger zerolog.Logger
}

// WithLogger returns an option that sets the logger for the exchange.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates a new UpbitExchange instance with the given configuration and options.
// Credentials are optional; signed calls fail with KindMissingCredentials until
// both keys are set.
func New(config *core.Config, opts ...Option) (*UpbitExchange, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.Logger.With().Str("exchange", "upbit").Logger()
	if config.LogLevel != "" {
		level, err := zerolog.ParseLevel(config.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		logger = logger.Level(level)
	}

	client, err := httpClient.NewClient(&httpClient.Config{
		Timeout: config.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	keys := keyring.FromCredentials(config.Credentials)

	return &UpbitExchange{
		config:     config,
		keys:       keys,
		signer:     auth.NewBuilder(keys),
		httpClient: client,
		logger:     logger,
		protocol:   NewProtocol(config.BaseURL),
	}, nil
}

// Name returns the exchange identifier "upbit".
func (e *UpbitExchange) Name() string {
	return e.protocol.Name()
}

// Version returns the Upbit API version.
func (e *UpbitExchange) Version() string {
	return e.protocol.Version()
}

// SetAccessKey replaces the access key used to sign requests.
func (e *UpbitExchange) SetAccessKey(key string) {
	e.keys.SetAccessKey(key)
}

// SetSecretKey replaces the secret key used to sign requests.
func (e *UpbitExchange) SetSecretKey(key string) {
	e.keys.SetSecretKey(key)
}

// Close releases resources used by the exchange, including the HTTP client.
func (e *UpbitExchange) Close() error {
	if e.httpClient != nil {
		return e.httpClient.Close()
	}
	return nil
}

// GetAccounts retrieves the balance of every currency held.
func (e *UpbitExchange) GetAccounts(ctx context.Context) ([]core.AccountsInfo, error) {
	return call[[]core.AccountsInfo](ctx, e, core.OpGetAccounts, core.Params{})
}

// GetOrderChance retrieves fees, limits and balances for ordering on market.
func (e *UpbitExchange) GetOrderChance(ctx context.Context, market string) (*core.OrderChance, error) {
	return call[*core.OrderChance](ctx, e, core.OpGetOrderChance, core.Params{"market": market})
}

// GetOrder retrieves one order, trades included.
func (e *UpbitExchange) GetOrder(ctx context.Context, lookup exchange.OrderLookup) (*core.OrderInfo, error) {
	return call[*core.OrderInfo](ctx, e, core.OpGetOrder, lookupParams(lookup))
}

// ListOrders lists orders through one of the three listing endpoints.
// ScopeLegacy is the original state-filtered listing, ScopeOpen returns wait
// and watch orders, ScopeClosed returns done and cancelled orders.
func (e *UpbitExchange) ListOrders(ctx context.Context, scope core.OrderListScope, market string, opts ...exchange.Option) ([]core.OrderInfo, error) {
	options := exchange.ApplyOptions(opts...)

	params := core.Params{
		"market":   market,
		"state":    options.State,
		"states":   options.States,
		"page":     options.Page,
		"limit":    options.Limit,
		"order_by": options.OrderBy,
	}

	var op core.Operation
	switch scope {
	case core.ScopeLegacy:
		op = core.OpListOrders
		params["uuids"] = options.UUIDs
		params["identifiers"] = options.Identifiers
	case core.ScopeOpen:
		op = core.OpListOpenOrders
	case core.ScopeClosed:
		op = core.OpListClosedOrders
		params["start_time"] = options.StartTime
		params["end_time"] = options.EndTime
	default:
		return nil, core.NewLocalError(core.KindInvalidParameter, fmt.Sprintf("unknown order list scope %d", scope))
	}

	return call[[]core.OrderInfo](ctx, e, op, params)
}

// ListOrdersByID retrieves the orders named by WithUUIDs or WithIdentifiers.
func (e *UpbitExchange) ListOrdersByID(ctx context.Context, market string, opts ...exchange.Option) ([]core.OrderInfo, error) {
	options := exchange.ApplyOptions(opts...)

	params := core.Params{
		"market":      market,
		"uuids":       options.UUIDs,
		"identifiers": options.Identifiers,
		"order_by":    options.OrderBy,
	}
	return call[[]core.OrderInfo](ctx, e, core.OpListOrdersByID, params)
}

// PlaceOrder submits a new order. The request is validated locally first.
func (e *UpbitExchange) PlaceOrder(ctx context.Context, req *core.OrderRequest) (*core.OrderInfo, error) {
	info, err := call[*core.OrderInfo](ctx, e, core.OpPlaceOrder, core.Params{"order": req})
	if err != nil {
		return nil, err
	}

	e.logger.Info().
		Str("uuid", info.UUID).
		Str("market", info.Market).
		Stringer("side", info.Side).
		Stringer("ord_type", info.OrdType).
		Msg("order placed")

	return info, nil
}

// CancelOrder cancels an order by uuid or identifier.
func (e *UpbitExchange) CancelOrder(ctx context.Context, lookup exchange.OrderLookup) (*core.OrderInfo, error) {
	info, err := call[*core.OrderInfo](ctx, e, core.OpCancelOrder, lookupParams(lookup))
	if err != nil {
		return nil, err
	}

	e.logger.Info().Str("uuid", info.UUID).Msg("order cancelled")
	return info, nil
}

// BuyAtDesiredPrice places a limit bid for volume priced from desired through
// order.QuoteDesiredPrice.
func (e *UpbitExchange) BuyAtDesiredPrice(ctx context.Context, market string, volume, desired float64) (*core.OrderInfo, error) {
	return e.placeAtDesiredPrice(ctx, market, core.SideBid, volume, desired)
}

// SellAtDesiredPrice places a limit ask for volume priced from desired through
// order.QuoteDesiredPrice.
func (e *UpbitExchange) SellAtDesiredPrice(ctx context.Context, market string, volume, desired float64) (*core.OrderInfo, error) {
	return e.placeAtDesiredPrice(ctx, market, core.SideAsk, volume, desired)
}

func (e *UpbitExchange) placeAtDesiredPrice(ctx context.Context, market string, side core.OrderSide, volume, desired float64) (*core.OrderInfo, error) {
	quote, err := order.QuoteDesiredPrice(desired)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Float64("desired", quote.Desired).
		Float64("checked", quote.Checked).
		Float64("submitted", quote.Submitted).
		Msg("desired price quote")

	req, err := order.DesiredPriceOrder(market, side, volume, quote)
	if err != nil {
		return nil, err
	}
	return e.PlaceOrder(ctx, req)
}

// execute runs one operation through build, sign, send and parse.
func (e *UpbitExchange) execute(ctx context.Context, op core.Operation, params core.Params) (any, error) {
	req, err := e.protocol.BuildRequest(ctx, op, params)
	if err != nil {
		return nil, err
	}

	rawURL := req.URL(e.protocol.BaseURL())
	if err := e.protocol.SignRequest(req, rawURL, e.signer); err != nil {
		return nil, err
	}

	resp, err := e.httpClient.Do(ctx, req.Method, rawURL, httpClient.WithHeaders(req.Headers))
	if err != nil {
		if errors.Is(err, httpClient.ErrClosed) {
			return nil, core.WrapError(core.KindTransport, core.ErrClientClosed)
		}
		return nil, core.WrapError(core.KindTransport, err)
	}

	result, err := e.protocol.ParseResponse(op, resp.StatusCode, resp.Status, resp.Body)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Stringer("op", op).
			Int("status", resp.StatusCode).
			Msg("request failed")
		return nil, err
	}
	return result, nil
}

func call[T any](ctx context.Context, e *UpbitExchange, op core.Operation, params core.Params) (T, error) {
	var zero T

	result, err := e.execute(ctx, op, params)
	if err != nil {
		return zero, err
	}

	v, ok := result.(T)
	if !ok {
		return zero, core.WrapError(core.KindJSONParse, fmt.Errorf("unexpected response type: %T", result))
	}
	return v, nil
}

func lookupParams(lookup exchange.OrderLookup) core.Params {
	return core.Params{
		"uuid":       lookup.UUID,
		"identifier": lookup.Identifier,
	}
}
