// Package chain holds the in-memory options chain snapshot.
//
// A Chain is built once by one of the decoders (JSON, YAML, or the
// SQLite snapshot store) and is never mutated afterwards. The viewer
// only ever reads from it, so values are shared freely between the
// navigation state and the renderer.
package chain

import "github.com/shopspring/decimal"

// Chain is a full options chain for one underlying symbol.
// Expirations are kept in file order, which is also display order.
type Chain struct {
	Symbol      string
	LastPrice   decimal.Decimal
	LastUpdate  string
	Expirations []Expiration
}

// Expiration groups every strike listed for one contract date.
type Expiration struct {
	Date    string
	Options []OptionPair
}

// OptionPair is a single strike with its call and put quotes.
type OptionPair struct {
	Strike decimal.Decimal
	Call   Quote
	Put    Quote
}

// Quote is one side (call or put) of an option pair.
type Quote struct {
	Symbol       string
	Bid          decimal.Decimal
	Ask          decimal.Decimal
	BidSize      int64
	AskSize      int64
	Volume       int64
	OpenInterest int64
	Greeks       Greeks
}

// Greeks are the sensitivity measures attached to a quote.
// Theta and Rho are loaded but not shown by the viewer.
type Greeks struct {
	Delta decimal.Decimal
	Gamma decimal.Decimal
	Theta decimal.Decimal
	Vega  decimal.Decimal
	Rho   decimal.Decimal
}

// Len returns the number of expirations.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Expirations)
}

// Dates returns the expiration labels in display order.
func (c *Chain) Dates() []string {
	dates := make([]string, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		dates = append(dates, c.Expirations[i].Date)
	}
	return dates
}

// Rows returns the number of strikes listed under the expiration.
func (e Expiration) Rows() int {
	return len(e.Options)
}

// Moneyness compares a strike against the last trade price:
// -1 below, 0 at, +1 above.
func Moneyness(strike, last decimal.Decimal) int {
	return strike.Cmp(last)
}
