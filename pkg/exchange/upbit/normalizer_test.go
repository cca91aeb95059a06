package upbit

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upbit/pkg/core"
)

func TestNormalizer_ErrorEnvelope(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name     string
		status   int
		body     string
		isError  bool
		kind     core.ErrorKind
		wireName string
		message  string
	}{
		{
			name:     "insufficient funds",
			status:   http.StatusBadRequest,
			body:     `{"error":{"name":"insufficient_funds_bid","message":"주문가능한 금액(KRW)이 부족합니다."}}`,
			isError:  true,
			kind:     core.KindInsufficientFundsBid,
			wireName: "insufficient_funds_bid",
			message:  "주문가능한 금액(KRW)이 부족합니다.",
		},
		{
			name:     "jwt verification",
			status:   http.StatusUnauthorized,
			body:     `{"error":{"message":"Jwt 토큰 검증에 실패했습니다.","name":"jwt_verification"}}`,
			isError:  true,
			kind:     core.KindJWTVerification,
			wireName: "jwt_verification",
			message:  "Jwt 토큰 검증에 실패했습니다.",
		},
		{
			name:     "unknown name",
			status:   http.StatusBadRequest,
			body:     `{"error":{"name":"totally_new_error","message":"?"}}`,
			isError:  true,
			kind:     core.KindUnexpectedError,
			wireName: "totally_new_error",
			message:  "?",
		},
		{
			name:     "numeric name",
			status:   http.StatusBadRequest,
			body:     `{"error":{"name":400,"message":"bad request"}}`,
			isError:  true,
			kind:     core.KindUnexpectedError,
			wireName: "400",
			message:  "bad request",
		},
		{
			name:    "message only",
			status:  http.StatusOK,
			body:    `{"error":{"message":"server busy"}}`,
			isError: true,
			kind:    core.KindUnexpectedError,
			message: "server busy",
		},
		{name: "array body", status: http.StatusOK, body: `[{"market":"KRW-BTC","error":"none"}]`},
		{name: "error is a string", status: http.StatusOK, body: `{"error":"no"}`},
		{name: "empty error object", status: http.StatusOK, body: `{"error":{}}`},
		{name: "nested error member", status: http.StatusOK, body: `{"data":{"error":{"name":"nonce_used"}}}`},
		{name: "malformed", status: http.StatusOK, body: `{"error":`},
		{name: "empty", status: http.StatusOK, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			respErr, ok := n.ErrorEnvelope(tt.status, []byte(tt.body))
			require.Equal(t, tt.isError, ok)
			if !tt.isError {
				assert.Nil(t, respErr)
				return
			}
			assert.Equal(t, tt.kind, respErr.Kind)
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, tt.wireName, respErr.Name)
			assert.Equal(t, tt.message, respErr.Message)
		})
	}
}

func TestNormalizer_Normalize_Accounts(t *testing.T) {
	n := NewNormalizer()
	body := `[{"currency":"KRW","balance":"1000.0","locked":"0.0","avg_buy_price":"0","avg_buy_price_modified":false,"unit_currency":"KRW"}]`

	result, err := n.Normalize(core.OpGetAccounts, http.StatusOK, "200 OK", []byte(body))
	require.NoError(t, err)

	accounts, ok := result.([]core.AccountsInfo)
	require.True(t, ok)
	require.Len(t, accounts, 1)
	assert.Equal(t, "KRW", accounts[0].Currency)
	assert.Equal(t, 1000.0, accounts[0].Balance.Float64())
	assert.Equal(t, 0.0, accounts[0].Locked.Float64())
	assert.Equal(t, 0.0, accounts[0].AvgBuyPrice.Float64())
	assert.False(t, accounts[0].AvgBuyPriceModified)
	assert.Equal(t, "KRW", accounts[0].UnitCurrency)
}

func TestNormalizer_Normalize_EmptyList(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(core.OpListOpenOrders, http.StatusOK, "200 OK", []byte(`[]`))
	require.NoError(t, err)

	orders, ok := result.([]core.OrderInfo)
	require.True(t, ok)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestNormalizer_Normalize_TickerContainingError(t *testing.T) {
	n := NewNormalizer()
	body := `[{"market":"KRW-ERROR","trade_date":"error","trade_price":"1.5","change":"EVEN"}]`

	result, err := n.Normalize(core.OpGetTicker, http.StatusOK, "200 OK", []byte(body))
	require.NoError(t, err)

	tickers, ok := result.([]core.Ticker)
	require.True(t, ok)
	require.Len(t, tickers, 1)
	assert.Equal(t, "KRW-ERROR", tickers[0].Market)
	assert.Equal(t, 1.5, tickers[0].TradePrice.Float64())
	assert.Equal(t, core.ChangeEven, tickers[0].Change)
}

func TestNormalizer_Normalize_CoinAddressPending(t *testing.T) {
	n := NewNormalizer()
	body := `{"success":true,"message":"BTC 입금주소를 생성중입니다."}`

	result, err := n.Normalize(core.OpGenerateCoinAddress, http.StatusCreated, "201 Created", []byte(body))
	require.NoError(t, err)

	resp, ok := result.(*core.CoinAddressResponse)
	require.True(t, ok)
	assert.True(t, resp.Success)
	assert.False(t, resp.Ready())
}

func TestNormalizer_Normalize_Errors(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name       string
		op         core.Operation
		statusCode int
		status     string
		body       string
		kind       core.ErrorKind
		message    string
	}{
		{
			name:       "envelope on success status",
			op:         core.OpGetOrder,
			statusCode: http.StatusOK,
			body:       `{"error":{"name":"order_not_found","message":"주문을 찾지 못했습니다."}}`,
			kind:       core.KindOrderNotFound,
		},
		{
			name:       "non-2xx without envelope",
			op:         core.OpGetTicker,
			statusCode: http.StatusTooManyRequests,
			status:     "429 Too Many Requests",
			body:       `Too many API requests.`,
			kind:       core.KindUnexpectedError,
			message:    "429 Too Many Requests",
		},
		{
			name:       "non-2xx without status text",
			op:         core.OpGetTicker,
			statusCode: http.StatusBadGateway,
			body:       ``,
			kind:       core.KindUnexpectedError,
			message:    "502 Bad Gateway",
		},
		{
			name:       "malformed json",
			op:         core.OpGetAccounts,
			statusCode: http.StatusOK,
			body:       `[{"currency":`,
			kind:       core.KindJSONParse,
		},
		{
			name:       "string error member on success status",
			op:         core.OpGetOrder,
			statusCode: http.StatusOK,
			body:       `{"error":"boom"}`,
			kind:       core.KindJSONParse,
		},
		{
			name:       "empty error object on success status",
			op:         core.OpGetOrder,
			statusCode: http.StatusOK,
			body:       `{"error":{}}`,
			kind:       core.KindJSONParse,
		},
		{
			name:       "object where list expected",
			op:         core.OpGetAccounts,
			statusCode: http.StatusOK,
			body:       `{"currency":"KRW"}`,
			kind:       core.KindJSONParse,
		},
		{
			name:       "garbage number",
			op:         core.OpGetOrderChance,
			statusCode: http.StatusOK,
			body:       `{"bid_fee":"abc"}`,
			kind:       core.KindJSONParse,
		},
		{
			name:       "unknown operation",
			op:         core.Operation(999),
			statusCode: http.StatusOK,
			body:       `{}`,
			kind:       core.KindInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := n.Normalize(tt.op, tt.statusCode, tt.status, []byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, core.IsErrorKind(err, tt.kind), "got %v", err)
			if tt.message != "" {
				var respErr *core.ResponseError
				require.ErrorAs(t, err, &respErr)
				assert.Equal(t, tt.message, respErr.Message)
				assert.Equal(t, tt.statusCode, respErr.StatusCode)
			}
		})
	}
}
