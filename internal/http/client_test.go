package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(&Config{Timeout: 5 * time.Second}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{Timeout: 0}, zerolog.Nop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Timeout")
}

func TestClient_DoGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v1/ticker", r.URL.Path)
		assert.Equal(t, "markets=KRW-BTC%2CKRW-ETH", r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"market":"KRW-BTC"}]`))
	}))
	defer server.Close()

	client := newTestClient(t)
	resp, err := client.Do(context.Background(), "GET", server.URL+"/v1/ticker?markets=KRW-BTC%2CKRW-ETH",
		WithHeader("Accept", "application/json"))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.JSONEq(t, `[{"market":"KRW-BTC"}]`, string(resp.Body))
}

func TestClient_DoPreservesQueryOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "side=bid&market=KRW-ETH&states%5B%5D=done", r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t)
	_, err := client.Do(context.Background(), "POST", server.URL+"/v1/orders?side=bid&market=KRW-ETH&states%5B%5D=done")
	require.NoError(t, err)
}

func TestClient_DoErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"name":"order_not_found","message":"missing"}}`))
	}))
	defer server.Close()

	client := newTestClient(t)
	resp, err := client.Do(context.Background(), "DELETE", server.URL+"/v1/order?uuid=x",
		WithHeaders(map[string]string{"Authorization": "token"}))

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.Contains(t, string(resp.Body), "order_not_found")
}

func TestClient_DoContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t)
	_, err := client.Do(ctx, "GET", server.URL+"/v1/market/all")
	assert.Error(t, err)
}

func TestClient_Close(t *testing.T) {
	client, err := NewClient(&Config{Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close())

	_, err = client.Do(context.Background(), "GET", "http://127.0.0.1/")
	assert.ErrorIs(t, err, ErrClosed)
}
