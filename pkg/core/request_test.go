package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("GET", "/v1/accounts")

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/v1/accounts", req.Path)
	assert.NotNil(t, req.Headers)
	assert.Equal(t, 0, req.Query.Len())
	assert.False(t, req.RequireAuth)
}

func TestRequest_SetHeader(t *testing.T) {
	req := NewRequest("GET", "/v1/ticker")
	result := req.SetHeader("Accept", "application/json")

	assert.Equal(t, req, result)
	assert.Equal(t, "application/json", req.Headers["Accept"])
}

func TestRequest_SetRequireAuth(t *testing.T) {
	req := NewRequest("GET", "/v1/accounts").SetRequireAuth(true)
	assert.True(t, req.RequireAuth)
}

func TestQuery_EncodePreservesOrder(t *testing.T) {
	var q Query
	q.Add("market", "KRW-ETH").Add("side", "bid")

	assert.Equal(t, "market=KRW-ETH&side=bid", q.Encode())

	var reversed Query
	reversed.Add("side", "bid").Add("market", "KRW-ETH")
	assert.Equal(t, "side=bid&market=KRW-ETH", reversed.Encode())
}

func TestQuery_Encoding(t *testing.T) {
	var q Query
	q.AddArray("states", []string{"done", "cancel"})
	q.Add("identifier", "my order/1")

	assert.Equal(t, "states%5B%5D=done&states%5B%5D=cancel&identifier=my+order%2F1", q.Encode())
}

func TestQuery_Helpers(t *testing.T) {
	var q Query
	q.AddIf("market", "")
	q.AddIf("currency", "BTC")
	q.AddDecimal("price", 0)
	q.AddDecimal("volume", 0.01)
	q.AddInt("page", 0)
	q.AddInt("limit", 100)

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "currency=BTC&volume=0.01000000&limit=100", q.Encode())

	v, ok := q.Get("volume")
	assert.True(t, ok)
	assert.Equal(t, "0.01000000", v)

	_, ok = q.Get("price")
	assert.False(t, ok)
}

func TestRequest_URL(t *testing.T) {
	req := NewRequest("GET", "/v1/accounts")
	assert.Equal(t, "https://api.upbit.com/v1/accounts", req.URL("https://api.upbit.com/"))

	req = NewRequest("GET", "/v1/orders/chance")
	req.Query.Add("market", "KRW-BTC")
	assert.Equal(t, "https://api.upbit.com/v1/orders/chance?market=KRW-BTC", req.URL("https://api.upbit.com"))
}

func TestParams_String(t *testing.T) {
	p := Params{"market": "KRW-BTC", "count": 3}

	assert.Equal(t, "KRW-BTC", p.String("market"))
	assert.Equal(t, "", p.String("count"))
	assert.Equal(t, "", p.String("missing"))
}
