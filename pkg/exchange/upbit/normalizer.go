package upbit

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"

	"upbit/pkg/core"
)

// Normalizer turns response bodies into typed results or a *core.ResponseError.
type Normalizer struct{}

// NewNormalizer creates a new Upbit normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// ErrorEnvelope extracts the exchange error from body. It matches only a JSON
// object whose top-level "error" member is itself an object carrying a name or
// a message. A string value that merely contains "error" is not an envelope.
func (n *Normalizer) ErrorEnvelope(statusCode int, body []byte) (*core.ResponseError, bool) {
	node, err := sonic.Get(body, "error")
	if err != nil || node.Type() != ast.V_OBJECT {
		return nil, false
	}

	name := memberText(&node, "name")
	message := memberText(&node, "message")
	if name == "" && message == "" {
		return nil, false
	}

	return core.NewResponseError(core.KindFromWireName(name), statusCode, name, message), true
}

// Normalize classifies body and, when it is not an error, decodes it into the
// success shape of op.
func (n *Normalizer) Normalize(op core.Operation, statusCode int, status string, body []byte) (any, error) {
	if respErr, ok := n.ErrorEnvelope(statusCode, body); ok {
		return nil, respErr
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		if status == "" {
			status = fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
		}
		return nil, core.NewResponseError(core.KindUnexpectedError, statusCode, "", status)
	}

	// A top-level "error" member that is not a usable envelope matches no
	// success shape either.
	if _, err := sonic.Get(body, "error"); err == nil {
		return nil, core.WrapError(core.KindJSONParse, errors.New("malformed error envelope"))
	}

	switch op {
	case core.OpGetAccounts:
		return decodeList[core.AccountsInfo](body)
	case core.OpGetOrderChance:
		return decodeOne[core.OrderChance](body)
	case core.OpGetOrder, core.OpPlaceOrder, core.OpCancelOrder:
		return decodeOne[core.OrderInfo](body)
	case core.OpListOrders, core.OpListOpenOrders, core.OpListClosedOrders, core.OpListOrdersByID:
		return decodeList[core.OrderInfo](body)

	case core.OpListWithdraws:
		return decodeList[core.WithdrawInfo](body)
	case core.OpGetWithdraw, core.OpWithdrawCoin, core.OpWithdrawKRW:
		return decodeOne[core.WithdrawInfo](body)
	case core.OpGetWithdrawChance:
		return decodeOne[core.WithdrawChance](body)
	case core.OpListWithdrawAddresses:
		return decodeList[core.WithdrawAddress](body)

	case core.OpListDeposits:
		return decodeList[core.DepositInfo](body)
	case core.OpGetDeposit, core.OpDepositKRW:
		return decodeOne[core.DepositInfo](body)
	case core.OpGenerateCoinAddress:
		return decodeOne[core.CoinAddressResponse](body)
	case core.OpListCoinAddresses:
		return decodeList[core.CoinAddress](body)
	case core.OpGetCoinAddress:
		return decodeOne[core.CoinAddress](body)

	case core.OpListMarkets:
		return decodeList[core.MarketInfo](body)
	case core.OpGetTicker:
		return decodeList[core.Ticker](body)
	case core.OpGetOrderBook:
		return decodeList[core.OrderBook](body)
	case core.OpGetTrades:
		return decodeList[core.TradeTick](body)
	case core.OpGetMinuteCandles, core.OpGetDayCandles, core.OpGetWeekCandles, core.OpGetMonthCandles:
		return decodeList[core.Candle](body)

	default:
		return nil, core.NewLocalError(core.KindInvalidParameter, fmt.Sprintf("unsupported operation: %s", op))
	}
}

func decodeOne[T any](body []byte) (*T, error) {
	var v T
	if err := sonic.Unmarshal(body, &v); err != nil {
		return nil, core.WrapError(core.KindJSONParse, fmt.Errorf("decode %T: %w", v, err))
	}
	return &v, nil
}

func decodeList[T any](body []byte) ([]T, error) {
	var v []T
	if err := sonic.Unmarshal(body, &v); err != nil {
		return nil, core.WrapError(core.KindJSONParse, fmt.Errorf("decode %T: %w", v, err))
	}
	if v == nil {
		v = []T{}
	}
	return v, nil
}

// memberText returns a string or number member as text.
func memberText(node *ast.Node, key string) string {
	member := node.Get(key)
	if member == nil || !member.Exists() {
		return ""
	}
	s, err := member.String()
	if err != nil {
		return ""
	}
	return s
}
