package core

import (
	"upbit/pkg/coerce"
)

// Numeric fields use the coerce types, which accept the exchange's decimal
// strings as well as bare JSON numbers. They are float64/int64 underneath.

// AccountsInfo is the balance of one currency in the account.
type AccountsInfo struct {
	// Currency is the currency code (e.g., "KRW", "BTC").
	Currency string `json:"currency"`
	// Balance is the amount available for orders and withdrawals.
	Balance coerce.Float `json:"balance"`
	// Locked is the amount held by open orders or pending withdrawals.
	Locked coerce.Float `json:"locked"`
	// AvgBuyPrice is the average purchase price.
	AvgBuyPrice coerce.Float `json:"avg_buy_price"`
	// AvgBuyPriceModified reports whether the average price was edited manually.
	AvgBuyPriceModified bool `json:"avg_buy_price_modified"`
	// UnitCurrency is the currency AvgBuyPrice is quoted in.
	UnitCurrency string `json:"unit_currency"`
}

// OrderTrade is one fill belonging to an order.
type OrderTrade struct {
	Market    string       `json:"market"`
	UUID      string       `json:"uuid"`
	Price     coerce.Float `json:"price"`
	Volume    coerce.Float `json:"volume"`
	Funds     coerce.Float `json:"funds"`
	Side      OrderSide    `json:"side"`
	CreatedAt coerce.Time  `json:"created_at"`
}

// OrderInfo describes an order as the exchange reports it.
// Price is 0 for market orders, which carry no limit price.
type OrderInfo struct {
	UUID            string       `json:"uuid"`
	Side            OrderSide    `json:"side"`
	OrdType         OrderType    `json:"ord_type"`
	Price           coerce.Float `json:"price"`
	State           OrderState   `json:"state"`
	Market          string       `json:"market"`
	CreatedAt       coerce.Time  `json:"created_at"`
	Volume          coerce.Float `json:"volume"`
	RemainingVolume coerce.Float `json:"remaining_volume"`
	ReservedFee     coerce.Float `json:"reserved_fee"`
	RemainingFee    coerce.Float `json:"remaining_fee"`
	PaidFee         coerce.Float `json:"paid_fee"`
	Locked          coerce.Float `json:"locked"`
	ExecutedVolume  coerce.Float `json:"executed_volume"`
	ExecutedFunds   coerce.Float `json:"executed_funds"`
	TradesCount     coerce.Int   `json:"trades_count"`
	Identifier      string       `json:"identifier,omitempty"`
	TimeInForce     TimeInForce  `json:"time_in_force,omitempty"`
	// Trades is only populated by single-order lookups.
	Trades []OrderTrade `json:"trades,omitempty"`
}

// MarketConstraint holds the order limits for one side of a market.
type MarketConstraint struct {
	Currency  string       `json:"currency"`
	PriceUnit coerce.Float `json:"price_unit"`
	MinTotal  coerce.Float `json:"min_total"`
}

// ChanceMarket describes what a market accepts.
type ChanceMarket struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	OrderTypes []string         `json:"order_types"`
	OrderSides []string         `json:"order_sides"`
	BidTypes   []string         `json:"bid_types"`
	AskTypes   []string         `json:"ask_types"`
	Bid        MarketConstraint `json:"bid"`
	Ask        MarketConstraint `json:"ask"`
	MaxTotal   coerce.Float     `json:"max_total"`
	State      string           `json:"state"`
}

// OrderChance holds the fees, limits and balances relevant to ordering on a market.
type OrderChance struct {
	BidFee      coerce.Float `json:"bid_fee"`
	AskFee      coerce.Float `json:"ask_fee"`
	MakerBidFee coerce.Float `json:"maker_bid_fee"`
	MakerAskFee coerce.Float `json:"maker_ask_fee"`
	Market      ChanceMarket `json:"market"`
	BidAccount  AccountsInfo `json:"bid_account"`
	AskAccount  AccountsInfo `json:"ask_account"`
}

// TransactionInfo is a deposit or withdrawal record. S is the state enum of
// the transfer direction.
type TransactionInfo[S DepositState | WithdrawState] struct {
	Type            TransferType    `json:"type"`
	UUID            string          `json:"uuid"`
	Currency        string          `json:"currency"`
	NetType         string          `json:"net_type,omitempty"`
	TxID            string          `json:"txid"`
	State           S               `json:"state"`
	CreatedAt       coerce.Time     `json:"created_at"`
	DoneAt          coerce.Time     `json:"done_at"`
	Amount          coerce.Float    `json:"amount"`
	Fee             coerce.Float    `json:"fee"`
	TransactionType TransactionType `json:"transaction_type,omitempty"`
}

// DepositInfo is a deposit record.
type DepositInfo = TransactionInfo[DepositState]

// WithdrawInfo is a withdrawal record.
type WithdrawInfo = TransactionInfo[WithdrawState]

// MemberLevel is the account's verification and security level.
type MemberLevel struct {
	SecurityLevel         coerce.Int `json:"security_level"`
	FeeLevel              coerce.Int `json:"fee_level"`
	EmailVerified         bool       `json:"email_verified"`
	IdentityAuthVerified  bool       `json:"identity_auth_verified"`
	BankAccountVerified   bool       `json:"bank_account_verified"`
	TwoFactorAuthVerified bool       `json:"two_factor_auth_verified"`
	Locked                bool       `json:"locked"`
	WalletLocked          bool       `json:"wallet_locked"`
}

// WithdrawCurrency describes the withdrawable currency.
type WithdrawCurrency struct {
	Code          string       `json:"code"`
	WithdrawFee   coerce.Float `json:"withdraw_fee"`
	IsCoin        bool         `json:"is_coin"`
	WalletState   string       `json:"wallet_state"`
	WalletSupport []string     `json:"wallet_support"`
}

// WithdrawLimit holds the withdrawal limits of a currency.
type WithdrawLimit struct {
	Currency          string       `json:"currency"`
	Minimum           coerce.Float `json:"minimum"`
	Onetime           coerce.Float `json:"onetime"`
	Daily             coerce.Float `json:"daily"`
	RemainingDaily    coerce.Float `json:"remaining_daily"`
	RemainingDailyKRW coerce.Float `json:"remaining_daily_krw"`
	Fixed             coerce.Int   `json:"fixed"`
	CanWithdraw       bool         `json:"can_withdraw"`
}

// WithdrawChance holds what is needed to decide whether a withdrawal is possible.
type WithdrawChance struct {
	MemberLevel   MemberLevel      `json:"member_level"`
	Currency      WithdrawCurrency `json:"currency"`
	Account       AccountsInfo     `json:"account"`
	WithdrawLimit WithdrawLimit    `json:"withdraw_limit"`
}

// WithdrawAddress is a registered withdrawal destination.
type WithdrawAddress struct {
	Currency         string `json:"currency"`
	NetType          string `json:"net_type"`
	NetworkName      string `json:"network_name"`
	WithdrawAddress  string `json:"withdraw_address"`
	SecondaryAddress string `json:"secondary_address,omitempty"`
}

// CoinAddress is a deposit address.
type CoinAddress struct {
	Currency         string `json:"currency"`
	NetType          string `json:"net_type,omitempty"`
	DepositAddress   string `json:"deposit_address"`
	SecondaryAddress string `json:"secondary_address,omitempty"`
}

// CoinAddressResponse is the result of requesting a deposit address. While the
// address is being generated the exchange answers with Success and Message
// only; once it exists, the address fields are filled instead.
type CoinAddressResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	CoinAddress
}

// Ready returns true if the response carries a usable address.
func (r CoinAddressResponse) Ready() bool {
	return r.DepositAddress != ""
}

// MarketInfo is a tradable market.
type MarketInfo struct {
	// Market is the market code (e.g., "KRW-BTC").
	Market        string `json:"market"`
	KoreanName    string `json:"korean_name"`
	EnglishName   string `json:"english_name"`
	MarketWarning string `json:"market_warning,omitempty"`
}

// Ticker is the current price snapshot of a market.
type Ticker struct {
	Market             string          `json:"market"`
	TradeDate          string          `json:"trade_date"`
	TradeTime          string          `json:"trade_time"`
	TradeDateKST       string          `json:"trade_date_kst"`
	TradeTimeKST       string          `json:"trade_time_kst"`
	TradeTimestamp     coerce.Int      `json:"trade_timestamp"`
	OpeningPrice       coerce.Float    `json:"opening_price"`
	HighPrice          coerce.Float    `json:"high_price"`
	LowPrice           coerce.Float    `json:"low_price"`
	TradePrice         coerce.Float    `json:"trade_price"`
	PrevClosingPrice   coerce.Float    `json:"prev_closing_price"`
	Change             ChangeDirection `json:"change"`
	ChangePrice        coerce.Float    `json:"change_price"`
	ChangeRate         coerce.Float    `json:"change_rate"`
	SignedChangePrice  coerce.Float    `json:"signed_change_price"`
	SignedChangeRate   coerce.Float    `json:"signed_change_rate"`
	TradeVolume        coerce.Float    `json:"trade_volume"`
	AccTradePrice      coerce.Float    `json:"acc_trade_price"`
	AccTradePrice24h   coerce.Float    `json:"acc_trade_price_24h"`
	AccTradeVolume     coerce.Float    `json:"acc_trade_volume"`
	AccTradeVolume24h  coerce.Float    `json:"acc_trade_volume_24h"`
	Highest52WeekPrice coerce.Float    `json:"highest_52_week_price"`
	Highest52WeekDate  string          `json:"highest_52_week_date"`
	Lowest52WeekPrice  coerce.Float    `json:"lowest_52_week_price"`
	Lowest52WeekDate   string          `json:"lowest_52_week_date"`
	Timestamp          coerce.Int      `json:"timestamp"`
}

// OrderBookUnit is one price level pair of the order book.
type OrderBookUnit struct {
	AskPrice coerce.Float `json:"ask_price"`
	BidPrice coerce.Float `json:"bid_price"`
	AskSize  coerce.Float `json:"ask_size"`
	BidSize  coerce.Float `json:"bid_size"`
}

// OrderBook is an order book snapshot of a market.
type OrderBook struct {
	Market       string          `json:"market"`
	Timestamp    coerce.Int      `json:"timestamp"`
	TotalAskSize coerce.Float    `json:"total_ask_size"`
	TotalBidSize coerce.Float    `json:"total_bid_size"`
	Units        []OrderBookUnit `json:"orderbook_units"`
	Level        coerce.Float    `json:"level"`
}

// TradeTick is one executed trade on a market.
type TradeTick struct {
	Market           string       `json:"market"`
	TradeDateUTC     string       `json:"trade_date_utc"`
	TradeTimeUTC     string       `json:"trade_time_utc"`
	Timestamp        coerce.Int   `json:"timestamp"`
	TradePrice       coerce.Float `json:"trade_price"`
	TradeVolume      coerce.Float `json:"trade_volume"`
	PrevClosingPrice coerce.Float `json:"prev_closing_price"`
	ChangePrice      coerce.Float `json:"change_price"`
	AskBid           OrderSide    `json:"ask_bid"`
	SequentialID     coerce.Uint  `json:"sequential_id"`
}

// Candle is one OHLCV bar. Unit is set for minute candles only; the change
// fields for day candles only; FirstDayOfPeriod for week and month candles.
type Candle struct {
	Market               string       `json:"market"`
	CandleDateTimeUTC    coerce.Time  `json:"candle_date_time_utc"`
	CandleDateTimeKST    coerce.Time  `json:"candle_date_time_kst"`
	OpeningPrice         coerce.Float `json:"opening_price"`
	HighPrice            coerce.Float `json:"high_price"`
	LowPrice             coerce.Float `json:"low_price"`
	TradePrice           coerce.Float `json:"trade_price"`
	Timestamp            coerce.Int   `json:"timestamp"`
	CandleAccTradePrice  coerce.Float `json:"candle_acc_trade_price"`
	CandleAccTradeVolume coerce.Float `json:"candle_acc_trade_volume"`
	Unit                 coerce.Int   `json:"unit,omitempty"`
	PrevClosingPrice     coerce.Float `json:"prev_closing_price,omitempty"`
	ChangePrice          coerce.Float `json:"change_price,omitempty"`
	ChangeRate           coerce.Float `json:"change_rate,omitempty"`
	ConvertedTradePrice  coerce.Float `json:"converted_trade_price,omitempty"`
	FirstDayOfPeriod     string       `json:"first_day_of_period,omitempty"`
}
