package exchange

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upbit/pkg/core"
)

type mockExchange struct {
	Exchange

	name     string
	closed   bool
	closeErr error
}

func (m *mockExchange) Name() string    { return m.name }
func (m *mockExchange) Version() string { return "1" }

func (m *mockExchange) Close() error {
	m.closed = true
	return m.closeErr
}

func TestContainer_RegisterAndGet(t *testing.T) {
	c := NewContainer()
	primary := &mockExchange{name: "upbit"}

	require.NoError(t, c.Register("main", primary))

	ex, err := c.Get("main")
	require.NoError(t, err)
	assert.Same(t, primary, ex)
	assert.True(t, c.Exists("main"))

	_, err = c.Get("other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `account "other" not found`)
}

func TestContainer_RegisterErrors(t *testing.T) {
	c := NewContainer()

	assert.Error(t, c.Register("", &mockExchange{}))
	assert.Error(t, c.Register("main", nil))

	require.NoError(t, c.Register("main", &mockExchange{}))
	err := c.Register("main", &mockExchange{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestContainer_Accounts(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.Register("sub", &mockExchange{}))
	require.NoError(t, c.Register("main", &mockExchange{}))

	assert.Equal(t, []string{"main", "sub"}, c.Accounts())
}

func TestContainer_Unregister(t *testing.T) {
	c := NewContainer()
	ex := &mockExchange{}
	require.NoError(t, c.Register("main", ex))

	got, ok := c.Unregister("main")
	assert.True(t, ok)
	assert.Same(t, ex, got)
	assert.False(t, ex.closed)
	assert.False(t, c.Exists("main"))

	_, ok = c.Unregister("main")
	assert.False(t, ok)
}

func TestContainer_Close(t *testing.T) {
	c := NewContainer()
	a := &mockExchange{}
	b := &mockExchange{closeErr: errors.New("boom")}
	require.NoError(t, c.Register("a", a))
	require.NoError(t, c.Register("b", b))

	err := c.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, b.closeErr)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.Empty(t, c.Accounts())
}

func TestApplyOptions(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	o := ApplyOptions(
		WithPage(2),
		WithLimit(50),
		WithOrderBy("asc"),
		WithOrderStates(core.StateDone, core.StateCancel),
		WithUUIDs("u1"),
		WithUUIDs("u2"),
		WithIdentifiers("i1"),
		WithTxIDs("t1"),
		WithCurrency("BTC"),
		WithTimeRange(start, end),
		WithTo(end),
		WithCount(10),
		WithCursor("123"),
		WithDaysAgo(3),
		WithConvertingPriceUnit("KRW"),
		WithDetails(true),
	)

	assert.Equal(t, 2, o.Page)
	assert.Equal(t, 50, o.Limit)
	assert.Equal(t, "asc", o.OrderBy)
	assert.Equal(t, []string{"done", "cancel"}, o.States)
	assert.Equal(t, []string{"u1", "u2"}, o.UUIDs)
	assert.Equal(t, []string{"i1"}, o.Identifiers)
	assert.Equal(t, []string{"t1"}, o.TxIDs)
	assert.Equal(t, "BTC", o.Currency)
	assert.Equal(t, start, o.StartTime)
	assert.Equal(t, end, o.EndTime)
	assert.Equal(t, end, o.To)
	assert.Equal(t, 10, o.Count)
	assert.Equal(t, "123", o.Cursor)
	assert.Equal(t, 3, o.DaysAgo)
	assert.Equal(t, "KRW", o.ConvertingPriceUnit)
	assert.True(t, o.Details)
}

func TestApplyOptions_States(t *testing.T) {
	assert.Equal(t, "wait", ApplyOptions(WithOrderState(core.StateWait)).State)
	assert.Equal(t, "ACCEPTED", ApplyOptions(WithDepositState(core.DepositAccepted)).State)
	assert.Equal(t, "DONE", ApplyOptions(WithWithdrawState(core.WithdrawDone)).State)
	assert.Empty(t, ApplyOptions().State)
}

func TestLookups(t *testing.T) {
	assert.Equal(t, OrderLookup{UUID: "u"}, ByUUID("u"))
	assert.Equal(t, OrderLookup{Identifier: "i"}, ByIdentifier("i"))
}
