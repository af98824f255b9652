package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places kept for prices and diffs.
const PriceScale = 2

// SymbolResult is the outcome of one symbol in a batch.
// Either Error is set and every price is nil, or Error is empty and all three
// prices are set.
type SymbolResult struct {
	Symbol   string
	Date     time.Time
	Open0900 *decimal.Decimal
	Open0950 *decimal.Decimal
	Diff     *decimal.Decimal
	Error    string
}

// RoundPrice rounds a provider price to PriceScale places using
// round-half-to-even on its shortest decimal representation.
func RoundPrice(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).RoundBank(PriceScale)
}

// NewSymbolSuccess rounds both opens and derives the diff from the rounded values.
func NewSymbolSuccess(symbol string, date time.Time, open0900, open0950 float64) SymbolResult {
	o1 := RoundPrice(open0900)
	o2 := RoundPrice(open0950)
	diff := o2.Sub(o1).RoundBank(PriceScale)
	return SymbolResult{
		Symbol:   symbol,
		Date:     DateOf(date),
		Open0900: &o1,
		Open0950: &o2,
		Diff:     &diff,
	}
}

// NewSymbolFailure builds a result that carries only an error message.
func NewSymbolFailure(symbol string, date time.Time, reason string) SymbolResult {
	if reason == "" {
		reason = "unknown error"
	}
	return SymbolResult{
		Symbol: symbol,
		Date:   DateOf(date),
		Error:  reason,
	}
}

// Failed reports whether the lookup for this symbol failed.
func (r SymbolResult) Failed() bool {
	return r.Error != ""
}
