package core

import (
	"fmt"
	"strings"
)

// Market is a market code split into its quote and base currency.
// "KRW-BTC" trades BTC priced in KRW.
type Market struct {
	Quote string
	Base  string
}

// ParseMarket splits a market code such as "KRW-BTC".
func ParseMarket(code string) (Market, error) {
	quote, base, ok := strings.Cut(strings.TrimSpace(code), "-")
	if !ok || quote == "" || base == "" || strings.Contains(base, "-") {
		return Market{}, NewLocalError(KindInvalidParameter, fmt.Sprintf("invalid market code %q", code))
	}
	return Market{Quote: strings.ToUpper(quote), Base: strings.ToUpper(base)}, nil
}

// String returns the market code.
func (m Market) String() string {
	return m.Quote + "-" + m.Base
}

// IsKRW returns true for markets priced in KRW, the ones the tick-size table applies to.
func (m Market) IsKRW() bool {
	return m.Quote == "KRW"
}
