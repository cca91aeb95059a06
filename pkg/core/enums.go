package core

import (
	"strconv"

	"upbit/pkg/coerce"
)

// Every enum below keeps 0 as "unset": it decodes from null, marshals to null
// and is omitted from outgoing query parameters.

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

func marshalEnum(name string) ([]byte, error) {
	if name == "" {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(name)), nil
}

// OrderSide is the direction of an order: bid buys, ask sells.
type OrderSide int

// Order side constants.
const (
	SideBid OrderSide = iota + 1
	SideAsk
)

var (
	orderSideNames  = []string{"", "bid", "ask"}
	orderSideTokens = map[string]OrderSide{"bid": SideBid, "ask": SideAsk}
)

// String returns the wire token ("bid" or "ask").
func (s OrderSide) String() string { return enumName(orderSideNames, int(s)) }

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) { return marshalEnum(s.String()) }

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// The trade feed's upper-case "BID"/"ASK" decode as well.
func (s *OrderSide) UnmarshalJSON(data []byte) (err error) {
	*s, err = coerce.DecodeEnum(data, orderSideTokens)
	return err
}

// ParseOrderSide resolves a wire token to an OrderSide.
func ParseOrderSide(token string) (OrderSide, error) {
	return coerce.LookupEnum(token, orderSideTokens)
}

// OrderType defines how an order executes.
type OrderType int

// Order type constants.
const (
	// TypeLimit is a limit order; it needs price and volume.
	TypeLimit OrderType = iota + 1
	// TypePrice is a market buy for a total amount; it needs price only.
	TypePrice
	// TypeMarket is a market sell of a volume; it needs volume only.
	TypeMarket
	// TypeBest is a best-price order, always IOC or FOK.
	TypeBest
)

var (
	orderTypeNames  = []string{"", "limit", "price", "market", "best"}
	orderTypeTokens = map[string]OrderType{
		"limit":  TypeLimit,
		"price":  TypePrice,
		"market": TypeMarket,
		"best":   TypeBest,
	}
)

// String returns the wire token of the order type.
func (t OrderType) String() string { return enumName(orderTypeNames, int(t)) }

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) { return marshalEnum(t.String()) }

// UnmarshalJSON implements json.Unmarshaler for OrderType.
func (t *OrderType) UnmarshalJSON(data []byte) (err error) {
	*t, err = coerce.DecodeEnum(data, orderTypeTokens)
	return err
}

// ParseOrderType resolves a wire token to an OrderType.
func ParseOrderType(token string) (OrderType, error) {
	return coerce.LookupEnum(token, orderTypeTokens)
}

// OrderState is the lifecycle state of an order.
type OrderState int

// Order state constants.
const (
	// StateWait is an open order waiting to be filled.
	StateWait OrderState = iota + 1
	// StateWatch is a reserved order waiting for its trigger.
	StateWatch
	// StateDone is a fully filled order.
	StateDone
	// StateCancel is a cancelled order.
	StateCancel
)

var (
	orderStateNames  = []string{"", "wait", "watch", "done", "cancel"}
	orderStateTokens = map[string]OrderState{
		"wait":   StateWait,
		"watch":  StateWatch,
		"done":   StateDone,
		"cancel": StateCancel,
	}
)

// String returns the wire token of the order state.
func (s OrderState) String() string { return enumName(orderStateNames, int(s)) }

// IsTerminal returns true if the order can no longer change.
func (s OrderState) IsTerminal() bool {
	return s == StateDone || s == StateCancel
}

// MarshalJSON implements json.Marshaler for OrderState.
func (s OrderState) MarshalJSON() ([]byte, error) { return marshalEnum(s.String()) }

// UnmarshalJSON implements json.Unmarshaler for OrderState.
func (s *OrderState) UnmarshalJSON(data []byte) (err error) {
	*s, err = coerce.DecodeEnum(data, orderStateTokens)
	return err
}

// ParseOrderState resolves a wire token to an OrderState.
func ParseOrderState(token string) (OrderState, error) {
	return coerce.LookupEnum(token, orderStateTokens)
}

// TimeInForce restricts how long a limit or best order stays open.
type TimeInForce int

// Time in force constants.
const (
	// IOC (Immediate Or Cancel) cancels whatever is not filled immediately.
	IOC TimeInForce = iota + 1
	// FOK (Fill Or Kill) is filled completely or not at all.
	FOK
)

var (
	timeInForceNames  = []string{"", "ioc", "fok"}
	timeInForceTokens = map[string]TimeInForce{"ioc": IOC, "fok": FOK}
)

// String returns the wire token of the time in force.
func (t TimeInForce) String() string { return enumName(timeInForceNames, int(t)) }

// MarshalJSON implements json.Marshaler for TimeInForce.
func (t TimeInForce) MarshalJSON() ([]byte, error) { return marshalEnum(t.String()) }

// UnmarshalJSON implements json.Unmarshaler for TimeInForce.
func (t *TimeInForce) UnmarshalJSON(data []byte) (err error) {
	*t, err = coerce.DecodeEnum(data, timeInForceTokens)
	return err
}

// TransferType tells deposits and withdrawals apart.
type TransferType int

// Transfer type constants.
const (
	TransferDeposit TransferType = iota + 1
	TransferWithdraw
)

var (
	transferTypeNames  = []string{"", "deposit", "withdraw"}
	transferTypeTokens = map[string]TransferType{"deposit": TransferDeposit, "withdraw": TransferWithdraw}
)

// String returns the wire token of the transfer type.
func (t TransferType) String() string { return enumName(transferTypeNames, int(t)) }

// MarshalJSON implements json.Marshaler for TransferType.
func (t TransferType) MarshalJSON() ([]byte, error) { return marshalEnum(t.String()) }

// UnmarshalJSON implements json.Unmarshaler for TransferType.
func (t *TransferType) UnmarshalJSON(data []byte) (err error) {
	*t, err = coerce.DecodeEnum(data, transferTypeTokens)
	return err
}

// TransactionType distinguishes on-chain withdrawals from internal transfers.
type TransactionType int

// Transaction type constants.
const (
	TransactionDefault TransactionType = iota + 1
	TransactionInternal
)

var (
	transactionTypeNames  = []string{"", "default", "internal"}
	transactionTypeTokens = map[string]TransactionType{"default": TransactionDefault, "internal": TransactionInternal}
)

// String returns the wire token of the transaction type.
func (t TransactionType) String() string { return enumName(transactionTypeNames, int(t)) }

// MarshalJSON implements json.Marshaler for TransactionType.
func (t TransactionType) MarshalJSON() ([]byte, error) { return marshalEnum(t.String()) }

// UnmarshalJSON implements json.Unmarshaler for TransactionType.
func (t *TransactionType) UnmarshalJSON(data []byte) (err error) {
	*t, err = coerce.DecodeEnum(data, transactionTypeTokens)
	return err
}

// DepositState is the processing state of a deposit.
type DepositState int

// Deposit state constants. The lower-case tokens of the older API map onto
// the closest current state.
const (
	DepositProcessing DepositState = iota + 1
	DepositAccepted
	DepositCancelled
	DepositRejected
	DepositTravelRuleSuspected
	DepositRefunding
	DepositRefunded
)

var (
	depositStateNames = []string{
		"", "PROCESSING", "ACCEPTED", "CANCELLED", "REJECTED",
		"TRAVEL_RULE_SUSPECTED", "REFUNDING", "REFUNDED",
	}
	depositStateTokens = map[string]DepositState{
		"processing":            DepositProcessing,
		"submitting":            DepositProcessing,
		"submitted":             DepositProcessing,
		"almost_accepted":       DepositProcessing,
		"accepted":              DepositAccepted,
		"cancelled":             DepositCancelled,
		"canceled":              DepositCancelled,
		"rejected":              DepositRejected,
		"travel_rule_suspected": DepositTravelRuleSuspected,
		"refunding":             DepositRefunding,
		"refunded":              DepositRefunded,
	}
)

// String returns the wire token of the deposit state.
func (s DepositState) String() string { return enumName(depositStateNames, int(s)) }

// MarshalJSON implements json.Marshaler for DepositState.
func (s DepositState) MarshalJSON() ([]byte, error) { return marshalEnum(s.String()) }

// UnmarshalJSON implements json.Unmarshaler for DepositState.
func (s *DepositState) UnmarshalJSON(data []byte) (err error) {
	*s, err = coerce.DecodeEnum(data, depositStateTokens)
	return err
}

// ParseDepositState resolves a wire token to a DepositState.
func ParseDepositState(token string) (DepositState, error) {
	return coerce.LookupEnum(token, depositStateTokens)
}

// WithdrawState is the processing state of a withdrawal.
type WithdrawState int

// Withdraw state constants.
const (
	WithdrawWaiting WithdrawState = iota + 1
	WithdrawProcessing
	WithdrawDone
	WithdrawFailed
	WithdrawCancelled
	WithdrawRejected
)

var (
	withdrawStateNames = []string{
		"", "WAITING", "PROCESSING", "DONE", "FAILED", "CANCELLED", "REJECTED",
	}
	withdrawStateTokens = map[string]WithdrawState{
		"waiting":         WithdrawWaiting,
		"submitting":      WithdrawWaiting,
		"submitted":       WithdrawWaiting,
		"almost_accepted": WithdrawWaiting,
		"processing":      WithdrawProcessing,
		"accepted":        WithdrawProcessing,
		"done":            WithdrawDone,
		"failed":          WithdrawFailed,
		"cancelled":       WithdrawCancelled,
		"canceled":        WithdrawCancelled,
		"rejected":        WithdrawRejected,
	}
)

// String returns the wire token of the withdraw state.
func (s WithdrawState) String() string { return enumName(withdrawStateNames, int(s)) }

// MarshalJSON implements json.Marshaler for WithdrawState.
func (s WithdrawState) MarshalJSON() ([]byte, error) { return marshalEnum(s.String()) }

// UnmarshalJSON implements json.Unmarshaler for WithdrawState.
func (s *WithdrawState) UnmarshalJSON(data []byte) (err error) {
	*s, err = coerce.DecodeEnum(data, withdrawStateTokens)
	return err
}

// ParseWithdrawState resolves a wire token to a WithdrawState.
func ParseWithdrawState(token string) (WithdrawState, error) {
	return coerce.LookupEnum(token, withdrawStateTokens)
}

// TwoFactorType selects the second factor for KRW deposits and withdrawals.
type TwoFactorType int

// Two-factor type constants.
const (
	TwoFactorKakao TwoFactorType = iota + 1
	TwoFactorNaver
	TwoFactorHana
)

var (
	twoFactorNames  = []string{"", "kakao", "naver", "hana"}
	twoFactorTokens = map[string]TwoFactorType{
		"kakao": TwoFactorKakao,
		"naver": TwoFactorNaver,
		"hana":  TwoFactorHana,
	}
)

// String returns the wire token of the two-factor type.
func (t TwoFactorType) String() string { return enumName(twoFactorNames, int(t)) }

// MarshalJSON implements json.Marshaler for TwoFactorType.
func (t TwoFactorType) MarshalJSON() ([]byte, error) { return marshalEnum(t.String()) }

// UnmarshalJSON implements json.Unmarshaler for TwoFactorType.
func (t *TwoFactorType) UnmarshalJSON(data []byte) (err error) {
	*t, err = coerce.DecodeEnum(data, twoFactorTokens)
	return err
}

// ParseTwoFactorType resolves a wire token to a TwoFactorType.
func ParseTwoFactorType(token string) (TwoFactorType, error) {
	return coerce.LookupEnum(token, twoFactorTokens)
}

// ChangeDirection is the direction of a price move relative to the previous close.
type ChangeDirection int

// Change direction constants.
const (
	ChangeRise ChangeDirection = iota + 1
	ChangeEven
	ChangeFall
)

var (
	changeNames  = []string{"", "RISE", "EVEN", "FALL"}
	changeTokens = map[string]ChangeDirection{"rise": ChangeRise, "even": ChangeEven, "fall": ChangeFall}
)

// String returns the wire token of the change direction.
func (c ChangeDirection) String() string { return enumName(changeNames, int(c)) }

// MarshalJSON implements json.Marshaler for ChangeDirection.
func (c ChangeDirection) MarshalJSON() ([]byte, error) { return marshalEnum(c.String()) }

// UnmarshalJSON implements json.Unmarshaler for ChangeDirection.
func (c *ChangeDirection) UnmarshalJSON(data []byte) (err error) {
	*c, err = coerce.DecodeEnum(data, changeTokens)
	return err
}

// OrderListScope selects which generation of the order list endpoint to query.
type OrderListScope int

// Order list scopes.
const (
	// ScopeLegacy is the original /v1/orders listing, filtered by state.
	ScopeLegacy OrderListScope = iota
	// ScopeOpen lists orders in wait or watch state.
	ScopeOpen
	// ScopeClosed lists done and cancelled orders within a time window.
	ScopeClosed
)

// String returns the string representation of the scope.
func (s OrderListScope) String() string {
	return enumName([]string{"legacy", "open", "closed"}, int(s))
}
