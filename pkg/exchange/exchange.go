package exchange

import (
	"context"

	"upbit/pkg/core"
)

// Exchange defines the account, order, transfer and quotation surface of the
// exchange REST API. Every call returns either a typed value or a
// *core.ResponseError.
type Exchange interface {
	Name() string
	Version() string

	GetAccounts(ctx context.Context) ([]core.AccountsInfo, error)
	GetOrderChance(ctx context.Context, market string) (*core.OrderChance, error)

	GetOrder(ctx context.Context, lookup OrderLookup) (*core.OrderInfo, error)
	ListOrders(ctx context.Context, scope core.OrderListScope, market string, opts ...Option) ([]core.OrderInfo, error)
	ListOrdersByID(ctx context.Context, market string, opts ...Option) ([]core.OrderInfo, error)
	PlaceOrder(ctx context.Context, req *core.OrderRequest) (*core.OrderInfo, error)
	CancelOrder(ctx context.Context, lookup OrderLookup) (*core.OrderInfo, error)

	ListWithdraws(ctx context.Context, opts ...Option) ([]core.WithdrawInfo, error)
	GetWithdraw(ctx context.Context, lookup TransferLookup) (*core.WithdrawInfo, error)
	GetWithdrawChance(ctx context.Context, currency, netType string) (*core.WithdrawChance, error)
	WithdrawCoin(ctx context.Context, req *CoinWithdrawal) (*core.WithdrawInfo, error)
	WithdrawKRW(ctx context.Context, amount float64, twoFactor core.TwoFactorType) (*core.WithdrawInfo, error)
	ListWithdrawAddresses(ctx context.Context) ([]core.WithdrawAddress, error)

	ListDeposits(ctx context.Context, opts ...Option) ([]core.DepositInfo, error)
	GetDeposit(ctx context.Context, lookup TransferLookup) (*core.DepositInfo, error)
	DepositKRW(ctx context.Context, amount float64, twoFactor core.TwoFactorType) (*core.DepositInfo, error)
	GenerateCoinAddress(ctx context.Context, currency, netType string) (*core.CoinAddressResponse, error)
	ListCoinAddresses(ctx context.Context) ([]core.CoinAddress, error)
	GetCoinAddress(ctx context.Context, currency, netType string) (*core.CoinAddress, error)

	ListMarkets(ctx context.Context, opts ...Option) ([]core.MarketInfo, error)
	GetTicker(ctx context.Context, markets ...string) ([]core.Ticker, error)
	GetOrderBook(ctx context.Context, markets ...string) ([]core.OrderBook, error)
	GetTrades(ctx context.Context, market string, opts ...Option) ([]core.TradeTick, error)
	GetMinuteCandles(ctx context.Context, market string, unit int, opts ...Option) ([]core.Candle, error)
	GetDayCandles(ctx context.Context, market string, opts ...Option) ([]core.Candle, error)
	GetWeekCandles(ctx context.Context, market string, opts ...Option) ([]core.Candle, error)
	GetMonthCandles(ctx context.Context, market string, opts ...Option) ([]core.Candle, error)
}

// OrderLookup identifies a single order. Exactly one field must be set.
type OrderLookup struct {
	UUID       string
	Identifier string
}

// ByUUID looks an order up by its exchange-assigned uuid.
func ByUUID(uuid string) OrderLookup {
	return OrderLookup{UUID: uuid}
}

// ByIdentifier looks an order up by the identifier given at placement.
func ByIdentifier(identifier string) OrderLookup {
	return OrderLookup{Identifier: identifier}
}

// TransferLookup identifies a single deposit or withdrawal. At least one of
// UUID and TxID must be set.
type TransferLookup struct {
	UUID     string
	TxID     string
	Currency string
}

// CoinWithdrawal contains the parameters of a digital asset withdrawal.
type CoinWithdrawal struct {
	Currency         string
	NetType          string
	Amount           float64
	Address          string
	SecondaryAddress string
	TransactionType  core.TransactionType
}
