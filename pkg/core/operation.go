package core

// Operation represents one API call.
type Operation int

// Exchange operations. All of them are signed.
const (
	// OpGetAccounts retrieves the balance of every currency held.
	OpGetAccounts Operation = iota
	// OpGetOrderChance retrieves fees and limits for ordering on a market.
	OpGetOrderChance
	// OpGetOrder retrieves one order by uuid or identifier.
	OpGetOrder
	// OpListOrders retrieves orders through the original, state-filtered listing.
	OpListOrders
	// OpListOpenOrders retrieves orders in wait or watch state.
	OpListOpenOrders
	// OpListClosedOrders retrieves done and cancelled orders.
	OpListClosedOrders
	// OpListOrdersByID retrieves orders by a list of uuids or identifiers.
	OpListOrdersByID
	// OpPlaceOrder submits a new order.
	OpPlaceOrder
	// OpCancelOrder cancels an order by uuid or identifier.
	OpCancelOrder
	OpListWithdraws
	OpGetWithdraw
	OpGetWithdrawChance
	OpWithdrawCoin
	OpWithdrawKRW
	OpListWithdrawAddresses
	OpListDeposits
	OpGetDeposit
	OpDepositKRW
	OpGenerateCoinAddress
	OpListCoinAddresses
	OpGetCoinAddress
)

// Quotation operations. None of them are signed.
const (
	OpListMarkets Operation = iota + OpGetCoinAddress + 1
	OpGetTicker
	OpGetOrderBook
	OpGetTrades
	OpGetMinuteCandles
	OpGetDayCandles
	OpGetWeekCandles
	OpGetMonthCandles
)

var operationNames = [...]string{
	"GET_ACCOUNTS",
	"GET_ORDER_CHANCE",
	"GET_ORDER",
	"LIST_ORDERS",
	"LIST_OPEN_ORDERS",
	"LIST_CLOSED_ORDERS",
	"LIST_ORDERS_BY_ID",
	"PLACE_ORDER",
	"CANCEL_ORDER",
	"LIST_WITHDRAWS",
	"GET_WITHDRAW",
	"GET_WITHDRAW_CHANCE",
	"WITHDRAW_COIN",
	"WITHDRAW_KRW",
	"LIST_WITHDRAW_ADDRESSES",
	"LIST_DEPOSITS",
	"GET_DEPOSIT",
	"DEPOSIT_KRW",
	"GENERATE_COIN_ADDRESS",
	"LIST_COIN_ADDRESSES",
	"GET_COIN_ADDRESS",
	"LIST_MARKETS",
	"GET_TICKER",
	"GET_ORDER_BOOK",
	"GET_TRADES",
	"GET_MINUTE_CANDLES",
	"GET_DAY_CANDLES",
	"GET_WEEK_CANDLES",
	"GET_MONTH_CANDLES",
}

// String returns the string representation of the operation.
func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return "UNKNOWN"
	}
	return operationNames[o]
}

// IsQuotation returns true for public market-data operations.
func (o Operation) IsQuotation() bool {
	return o >= OpListMarkets && o <= OpGetMonthCandles
}
