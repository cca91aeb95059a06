package upbit

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"upbit/pkg/core"
)

const (
	ProductionURL = core.DefaultBaseURL
	APIVersion    = "1"
)

// Minute candle units accepted by the exchange.
var minuteUnits = []int{1, 3, 5, 10, 15, 30, 60, 240}

// Protocol implements the core.Protocol interface for the Upbit REST API.
// It builds requests, signs them with a JWT bearer token and normalizes responses.
type Protocol struct {
	baseURL    string
	normalizer *Normalizer
}

// NewProtocol creates a new Upbit protocol instance for baseURL.
// An empty baseURL selects the production endpoint.
func NewProtocol(baseURL string) *Protocol {
	if baseURL == "" {
		baseURL = ProductionURL
	}
	return &Protocol{
		baseURL:    strings.TrimRight(baseURL, "/"),
		normalizer: NewNormalizer(),
	}
}

// Name returns the protocol identifier "upbit".
func (p *Protocol) Name() string {
	return "upbit"
}

// Version returns the Upbit API version string.
func (p *Protocol) Version() string {
	return APIVersion
}

// BaseURL returns the API base URL requests are sent to.
func (p *Protocol) BaseURL() string {
	return p.baseURL
}

// SupportedOperations returns the list of operations supported by this protocol.
func (p *Protocol) SupportedOperations() []core.Operation {
	return []core.Operation{
		core.OpGetAccounts,
		core.OpGetOrderChance,
		core.OpGetOrder,
		core.OpListOrders,
		core.OpListOpenOrders,
		core.OpListClosedOrders,
		core.OpListOrdersByID,
		core.OpPlaceOrder,
		core.OpCancelOrder,
		core.OpListWithdraws,
		core.OpGetWithdraw,
		core.OpGetWithdrawChance,
		core.OpWithdrawCoin,
		core.OpWithdrawKRW,
		core.OpListWithdrawAddresses,
		core.OpListDeposits,
		core.OpGetDeposit,
		core.OpDepositKRW,
		core.OpGenerateCoinAddress,
		core.OpListCoinAddresses,
		core.OpGetCoinAddress,
		core.OpListMarkets,
		core.OpGetTicker,
		core.OpGetOrderBook,
		core.OpGetTrades,
		core.OpGetMinuteCandles,
		core.OpGetDayCandles,
		core.OpGetWeekCandles,
		core.OpGetMonthCandles,
	}
}

// BuildRequest constructs the HTTP request for the given operation.
// Parameter checks that can fail locally are done here, so an invalid call
// never reaches the network.
func (p *Protocol) BuildRequest(ctx context.Context, op core.Operation, params core.Params) (*core.Request, error) {
	switch op {
	case core.OpGetAccounts:
		return p.signed(http.MethodGet, "/v1/accounts"), nil
	case core.OpGetOrderChance:
		return p.buildGetOrderChanceRequest(params)
	case core.OpGetOrder:
		return p.buildOrderLookupRequest(http.MethodGet, params)
	case core.OpCancelOrder:
		return p.buildOrderLookupRequest(http.MethodDelete, params)
	case core.OpListOrders:
		return p.buildListOrdersRequest(params)
	case core.OpListOpenOrders:
		return p.buildListOpenOrdersRequest(params)
	case core.OpListClosedOrders:
		return p.buildListClosedOrdersRequest(params)
	case core.OpListOrdersByID:
		return p.buildListOrdersByIDRequest(params)
	case core.OpPlaceOrder:
		return p.buildPlaceOrderRequest(params)

	case core.OpListWithdraws:
		return p.buildListTransfersRequest("/v1/withdraws", params)
	case core.OpGetWithdraw:
		return p.buildTransferLookupRequest("/v1/withdraw", params)
	case core.OpGetWithdrawChance:
		return p.buildCurrencyNetRequest(http.MethodGet, "/v1/withdraws/chance", params, true)
	case core.OpWithdrawCoin:
		return p.buildWithdrawCoinRequest(params)
	case core.OpWithdrawKRW:
		return p.buildKRWTransferRequest("/v1/withdraws/krw", params)
	case core.OpListWithdrawAddresses:
		return p.signed(http.MethodGet, "/v1/withdraws/coin_addresses"), nil

	case core.OpListDeposits:
		return p.buildListTransfersRequest("/v1/deposits", params)
	case core.OpGetDeposit:
		return p.buildTransferLookupRequest("/v1/deposit", params)
	case core.OpDepositKRW:
		return p.buildKRWTransferRequest("/v1/deposits/krw", params)
	case core.OpGenerateCoinAddress:
		return p.buildCurrencyNetRequest(http.MethodPost, "/v1/deposits/generate_coin_address", params, true)
	case core.OpListCoinAddresses:
		return p.signed(http.MethodGet, "/v1/deposits/coin_addresses"), nil
	case core.OpGetCoinAddress:
		return p.buildCurrencyNetRequest(http.MethodGet, "/v1/deposits/coin_address", params, true)

	case core.OpListMarkets:
		return p.buildListMarketsRequest(params), nil
	case core.OpGetTicker:
		return p.buildMarketsRequest("/v1/ticker", params)
	case core.OpGetOrderBook:
		return p.buildMarketsRequest("/v1/orderbook", params)
	case core.OpGetTrades:
		return p.buildGetTradesRequest(params)
	case core.OpGetMinuteCandles:
		return p.buildMinuteCandlesRequest(params)
	case core.OpGetDayCandles:
		return p.buildCandlesRequest("/v1/candles/days", params, true)
	case core.OpGetWeekCandles:
		return p.buildCandlesRequest("/v1/candles/weeks", params, false)
	case core.OpGetMonthCandles:
		return p.buildCandlesRequest("/v1/candles/months", params, false)
	default:
		return nil, core.NewLocalError(core.KindInvalidParameter, fmt.Sprintf("unsupported operation: %s", op))
	}
}

// SignRequest sets the Authorization header from a token bound to the exact
// URL that will be sent. Unsigned requests are left untouched.
func (p *Protocol) SignRequest(req *core.Request, rawURL string, signer core.TokenSigner) error {
	if !req.RequireAuth {
		return nil
	}
	header, err := signer.ForURL(rawURL)
	if err != nil {
		return err
	}
	req.SetHeader("Authorization", header)
	return nil
}

// ParseResponse classifies the body as an error envelope or decodes the
// success shape of op.
func (p *Protocol) ParseResponse(op core.Operation, statusCode int, status string, body []byte) (any, error) {
	return p.normalizer.Normalize(op, statusCode, status, body)
}

func (p *Protocol) newRequest(method, path string) *core.Request {
	req := core.NewRequest(method, path)
	req.SetHeader("Accept", "application/json")
	if method == http.MethodPost || method == http.MethodDelete {
		req.SetHeader("Content-Type", "application/json")
	}
	return req
}

func (p *Protocol) signed(method, path string) *core.Request {
	return p.newRequest(method, path).SetRequireAuth(true)
}

func (p *Protocol) buildGetOrderChanceRequest(params core.Params) (*core.Request, error) {
	market, err := getRequiredStringParam(params, "market")
	if err != nil {
		return nil, err
	}
	req := p.signed(http.MethodGet, "/v1/orders/chance")
	req.Query.Add("market", market)
	return req, nil
}

func (p *Protocol) buildOrderLookupRequest(method string, params core.Params) (*core.Request, error) {
	uuid, identifier := params.String("uuid"), params.String("identifier")
	if err := exactlyOne("uuid", uuid, "identifier", identifier); err != nil {
		return nil, err
	}
	req := p.signed(method, "/v1/order")
	req.Query.AddIf("uuid", uuid).AddIf("identifier", identifier)
	return req, nil
}

func (p *Protocol) buildListOrdersRequest(params core.Params) (*core.Request, error) {
	if err := stateOrStates(params); err != nil {
		return nil, err
	}
	uuids, identifiers := getStringsParam(params, "uuids"), getStringsParam(params, "identifiers")
	if len(uuids) > 0 && len(identifiers) > 0 {
		return nil, core.NewLocalError(core.KindTooManyParameterSpecified, "uuids and identifiers cannot be combined")
	}
	orderBy, err := getOrderByParam(params)
	if err != nil {
		return nil, err
	}

	req := p.signed(http.MethodGet, "/v1/orders")
	req.Query.AddIf("market", params.String("market"))
	req.Query.AddIf("state", params.String("state"))
	req.Query.AddArray("states", getStringsParam(params, "states"))
	req.Query.AddArray("uuids", uuids)
	req.Query.AddArray("identifiers", identifiers)
	req.Query.AddInt("page", getIntParam(params, "page"))
	req.Query.AddInt("limit", getIntParam(params, "limit"))
	req.Query.AddIf("order_by", orderBy)
	return req, nil
}

func (p *Protocol) buildListOpenOrdersRequest(params core.Params) (*core.Request, error) {
	if err := stateOrStates(params); err != nil {
		return nil, err
	}
	orderBy, err := getOrderByParam(params)
	if err != nil {
		return nil, err
	}

	req := p.signed(http.MethodGet, "/v1/orders/open")
	req.Query.AddIf("market", params.String("market"))
	req.Query.AddIf("state", params.String("state"))
	req.Query.AddArray("states", getStringsParam(params, "states"))
	req.Query.AddInt("page", getIntParam(params, "page"))
	req.Query.AddInt("limit", getIntParam(params, "limit"))
	req.Query.AddIf("order_by", orderBy)
	return req, nil
}

func (p *Protocol) buildListClosedOrdersRequest(params core.Params) (*core.Request, error) {
	if err := stateOrStates(params); err != nil {
		return nil, err
	}
	orderBy, err := getOrderByParam(params)
	if err != nil {
		return nil, err
	}
	start, end := getTimeParam(params, "start_time"), getTimeParam(params, "end_time")
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, core.NewLocalError(core.KindInvalidParameter, "end_time is before start_time")
	}

	req := p.signed(http.MethodGet, "/v1/orders/closed")
	req.Query.AddIf("market", params.String("market"))
	req.Query.AddIf("state", params.String("state"))
	req.Query.AddArray("states", getStringsParam(params, "states"))
	req.Query.AddIf("start_time", formatTime(start))
	req.Query.AddIf("end_time", formatTime(end))
	req.Query.AddInt("limit", getIntParam(params, "limit"))
	req.Query.AddIf("order_by", orderBy)
	return req, nil
}

func (p *Protocol) buildListOrdersByIDRequest(params core.Params) (*core.Request, error) {
	uuids, identifiers := getStringsParam(params, "uuids"), getStringsParam(params, "identifiers")
	switch {
	case len(uuids) == 0 && len(identifiers) == 0:
		return nil, core.NewLocalError(core.KindNeitherParameterSpecified, "either uuids or identifiers must be specified")
	case len(uuids) > 0 && len(identifiers) > 0:
		return nil, core.NewLocalError(core.KindTooManyParameterSpecified, "only one of uuids and identifiers may be specified")
	}
	orderBy, err := getOrderByParam(params)
	if err != nil {
		return nil, err
	}

	req := p.signed(http.MethodGet, "/v1/orders/uuids")
	req.Query.AddIf("market", params.String("market"))
	req.Query.AddArray("uuids", uuids)
	req.Query.AddArray("identifiers", identifiers)
	req.Query.AddIf("order_by", orderBy)
	return req, nil
}

func (p *Protocol) buildPlaceOrderRequest(params core.Params) (*core.Request, error) {
	order, ok := params["order"].(*core.OrderRequest)
	if !ok || order == nil {
		return nil, core.NewLocalError(core.KindInvalidParameter, "missing required parameter: order")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	req := p.signed(http.MethodPost, "/v1/orders")
	req.Query.Add("market", order.Market)
	req.Query.Add("side", order.Side.String())
	req.Query.AddDecimal("volume", order.Volume)
	req.Query.AddDecimal("price", order.Price)
	req.Query.Add("ord_type", order.OrdType.String())
	req.Query.AddIf("identifier", order.Identifier)
	if order.TimeInForce != 0 {
		req.Query.Add("time_in_force", order.TimeInForce.String())
	}
	return req, nil
}

func (p *Protocol) buildListTransfersRequest(path string, params core.Params) (*core.Request, error) {
	orderBy, err := getOrderByParam(params)
	if err != nil {
		return nil, err
	}

	req := p.signed(http.MethodGet, path)
	req.Query.AddIf("currency", params.String("currency"))
	req.Query.AddIf("state", params.String("state"))
	req.Query.AddArray("uuids", getStringsParam(params, "uuids"))
	req.Query.AddArray("txids", getStringsParam(params, "txids"))
	req.Query.AddInt("limit", getIntParam(params, "limit"))
	req.Query.AddInt("page", getIntParam(params, "page"))
	req.Query.AddIf("order_by", orderBy)
	return req, nil
}

func (p *Protocol) buildTransferLookupRequest(path string, params core.Params) (*core.Request, error) {
	uuid, txid := params.String("uuid"), params.String("txid")
	if uuid == "" && txid == "" {
		return nil, core.NewLocalError(core.KindNeitherParameterSpecified, "either uuid or txid must be specified")
	}

	req := p.signed(http.MethodGet, path)
	req.Query.AddIf("uuid", uuid)
	req.Query.AddIf("txid", txid)
	req.Query.AddIf("currency", params.String("currency"))
	return req, nil
}

func (p *Protocol) buildCurrencyNetRequest(method, path string, params core.Params, netRequired bool) (*core.Request, error) {
	currency, err := getRequiredStringParam(params, "currency")
	if err != nil {
		return nil, err
	}
	netType := params.String("net_type")
	if netRequired && netType == "" {
		return nil, core.NewLocalError(core.KindInvalidParameter, "missing required parameter: net_type")
	}

	req := p.signed(method, path)
	req.Query.Add("currency", currency)
	req.Query.AddIf("net_type", netType)
	return req, nil
}

func (p *Protocol) buildWithdrawCoinRequest(params core.Params) (*core.Request, error) {
	currency, err := getRequiredStringParam(params, "currency")
	if err != nil {
		return nil, err
	}
	netType, err := getRequiredStringParam(params, "net_type")
	if err != nil {
		return nil, err
	}
	address, err := getRequiredStringParam(params, "address")
	if err != nil {
		return nil, err
	}
	amount, err := getPositiveFloatParam(params, "amount")
	if err != nil {
		return nil, err
	}

	req := p.signed(http.MethodPost, "/v1/withdraws/coin")
	req.Query.Add("currency", currency)
	req.Query.Add("net_type", netType)
	req.Query.AddDecimal("amount", amount)
	req.Query.Add("address", address)
	req.Query.AddIf("secondary_address", params.String("secondary_address"))
	if tt, ok := params["transaction_type"].(core.TransactionType); ok && tt != 0 {
		req.Query.Add("transaction_type", tt.String())
	}
	return req, nil
}

func (p *Protocol) buildKRWTransferRequest(path string, params core.Params) (*core.Request, error) {
	amount, err := getPositiveFloatParam(params, "amount")
	if err != nil {
		return nil, err
	}
	twoFactor, ok := params["two_factor_type"].(core.TwoFactorType)
	if !ok || twoFactor == 0 {
		return nil, core.NewLocalError(core.KindInvalidParameter, "missing required parameter: two_factor_type")
	}

	req := p.signed(http.MethodPost, path)
	req.Query.AddDecimal("amount", amount)
	req.Query.Add("two_factor_type", twoFactor.String())
	return req, nil
}

func (p *Protocol) buildListMarketsRequest(params core.Params) *core.Request {
	req := p.newRequest(http.MethodGet, "/v1/market/all")
	if details, _ := params["is_details"].(bool); details {
		req.Query.Add("isDetails", "true")
	}
	return req
}

func (p *Protocol) buildMarketsRequest(path string, params core.Params) (*core.Request, error) {
	markets := getStringsParam(params, "markets")
	if len(markets) == 0 {
		return nil, core.NewLocalError(core.KindInvalidParameter, "missing required parameter: markets")
	}
	req := p.newRequest(http.MethodGet, path)
	req.Query.Add("markets", strings.Join(markets, ","))
	return req, nil
}

func (p *Protocol) buildGetTradesRequest(params core.Params) (*core.Request, error) {
	market, err := getRequiredStringParam(params, "market")
	if err != nil {
		return nil, err
	}
	daysAgo := getIntParam(params, "days_ago")
	if daysAgo < 0 || daysAgo > 7 {
		return nil, core.NewLocalError(core.KindInvalidParameter, "daysAgo must be between 0 and 7")
	}

	req := p.newRequest(http.MethodGet, "/v1/trades/ticks")
	req.Query.Add("market", market)
	if to := getTimeParam(params, "to"); !to.IsZero() {
		req.Query.Add("to", to.UTC().Format("150405"))
	}
	req.Query.AddInt("count", getIntParam(params, "count"))
	req.Query.AddIf("cursor", params.String("cursor"))
	req.Query.AddInt("daysAgo", daysAgo)
	return req, nil
}

func (p *Protocol) buildMinuteCandlesRequest(params core.Params) (*core.Request, error) {
	unit := getIntParam(params, "unit")
	if !slices.Contains(minuteUnits, unit) {
		return nil, core.NewLocalError(core.KindInvalidParameter,
			fmt.Sprintf("invalid minute unit %d: must be one of 1, 3, 5, 10, 15, 30, 60, 240", unit))
	}
	return p.buildCandlesRequest("/v1/candles/minutes/"+strconv.Itoa(unit), params, false)
}

func (p *Protocol) buildCandlesRequest(path string, params core.Params, converting bool) (*core.Request, error) {
	market, err := getRequiredStringParam(params, "market")
	if err != nil {
		return nil, err
	}

	req := p.newRequest(http.MethodGet, path)
	req.Query.Add("market", market)
	req.Query.AddIf("to", formatTime(getTimeParam(params, "to")))
	req.Query.AddInt("count", getIntParam(params, "count"))
	if converting {
		req.Query.AddIf("convertingPriceUnit", params.String("converting_price_unit"))
	}
	return req, nil
}

func exactlyOne(nameA, a, nameB, b string) error {
	switch {
	case a == "" && b == "":
		return core.NewLocalError(core.KindNeitherParameterSpecified,
			fmt.Sprintf("either %s or %s must be specified", nameA, nameB))
	case a != "" && b != "":
		return core.NewLocalError(core.KindTooManyParameterSpecified,
			fmt.Sprintf("only one of %s and %s may be specified", nameA, nameB))
	}
	return nil
}

func stateOrStates(params core.Params) error {
	if params.String("state") != "" && len(getStringsParam(params, "states")) > 0 {
		return core.NewLocalError(core.KindTooManyParameterSpecified, "state and states cannot be combined")
	}
	return nil
}

func getRequiredStringParam(params core.Params, key string) (string, error) {
	val, ok := params[key]
	if !ok {
		return "", core.NewLocalError(core.KindInvalidParameter, "missing required parameter: "+key)
	}

	str, ok := val.(string)
	if !ok {
		return "", core.NewLocalError(core.KindInvalidParameter, fmt.Sprintf("parameter %s must be a string", key))
	}

	if str == "" {
		return "", core.NewLocalError(core.KindInvalidParameter, fmt.Sprintf("parameter %s cannot be empty", key))
	}

	return str, nil
}

func getStringsParam(params core.Params, key string) []string {
	if v, ok := params[key].([]string); ok {
		return v
	}
	return nil
}

func getIntParam(params core.Params, key string) int {
	if v, ok := params[key].(int); ok {
		return v
	}
	return 0
}

func getPositiveFloatParam(params core.Params, key string) (float64, error) {
	v, ok := params[key].(float64)
	if !ok || v <= 0 {
		return 0, core.NewLocalError(core.KindInvalidParameter, fmt.Sprintf("parameter %s must be a positive number", key))
	}
	return v, nil
}

func getTimeParam(params core.Params, key string) time.Time {
	if v, ok := params[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func getOrderByParam(params core.Params) (string, error) {
	orderBy := strings.ToLower(params.String("order_by"))
	switch orderBy {
	case "", "asc", "desc":
		return orderBy, nil
	default:
		return "", core.NewLocalError(core.KindInvalidParameter,
			fmt.Sprintf("invalid order_by %q: must be asc or desc", orderBy))
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
