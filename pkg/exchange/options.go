package exchange

import (
	"time"

	"upbit/pkg/core"
)

type Option func(*Options)

// Options holds the optional filters and paging arguments shared by list calls.
// Each call reads only the fields its endpoint accepts.
type Options struct {
	Page        int
	Limit       int
	OrderBy     string
	State       string
	States      []string
	UUIDs       []string
	Identifiers []string
	TxIDs       []string
	Currency    string
	StartTime   time.Time
	EndTime     time.Time

	To                  time.Time
	Count               int
	Cursor              string
	DaysAgo             int
	ConvertingPriceUnit string
	Details             bool
}

func WithPage(page int) Option {
	return func(o *Options) {
		o.Page = page
	}
}

func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithOrderBy sets the sort order, "asc" or "desc".
func WithOrderBy(orderBy string) Option {
	return func(o *Options) {
		o.OrderBy = orderBy
	}
}

// WithOrderState filters orders by a single state. It cannot be combined
// with WithOrderStates.
func WithOrderState(state core.OrderState) Option {
	return func(o *Options) {
		o.State = state.String()
	}
}

func WithOrderStates(states ...core.OrderState) Option {
	return func(o *Options) {
		for _, s := range states {
			o.States = append(o.States, s.String())
		}
	}
}

func WithDepositState(state core.DepositState) Option {
	return func(o *Options) {
		o.State = state.String()
	}
}

func WithWithdrawState(state core.WithdrawState) Option {
	return func(o *Options) {
		o.State = state.String()
	}
}

func WithUUIDs(uuids ...string) Option {
	return func(o *Options) {
		o.UUIDs = append(o.UUIDs, uuids...)
	}
}

func WithIdentifiers(identifiers ...string) Option {
	return func(o *Options) {
		o.Identifiers = append(o.Identifiers, identifiers...)
	}
}

func WithTxIDs(txids ...string) Option {
	return func(o *Options) {
		o.TxIDs = append(o.TxIDs, txids...)
	}
}

func WithCurrency(currency string) Option {
	return func(o *Options) {
		o.Currency = currency
	}
}

func WithTimeRange(start, end time.Time) Option {
	return func(o *Options) {
		o.StartTime = start
		o.EndTime = end
	}
}

// WithTo sets the end of the returned window for trades and candles.
func WithTo(to time.Time) Option {
	return func(o *Options) {
		o.To = to
	}
}

func WithCount(count int) Option {
	return func(o *Options) {
		o.Count = count
	}
}

// WithCursor continues a trade listing from a sequential id.
func WithCursor(cursor string) Option {
	return func(o *Options) {
		o.Cursor = cursor
	}
}

func WithDaysAgo(days int) Option {
	return func(o *Options) {
		o.DaysAgo = days
	}
}

// WithConvertingPriceUnit converts day candle closing prices to the given currency.
func WithConvertingPriceUnit(currency string) Option {
	return func(o *Options) {
		o.ConvertingPriceUnit = currency
	}
}

// WithDetails includes market warning details in the market list.
func WithDetails(details bool) Option {
	return func(o *Options) {
		o.Details = details
	}
}

func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
