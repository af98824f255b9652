package entity

import "time"

// PriceSample is the opening price of one intraday bar.
type PriceSample struct {
	Time time.Time // Bar start in the exchange's local time zone
	Open float64   // Opening price of the bar
}

// IntradaySeries holds the intraday bars of one symbol on one trading date,
// sorted by time.
type IntradaySeries struct {
	Symbol   string         // Symbol as sent to the provider (e.g., "2330.TW")
	Interval string         // Bar interval reported by the provider (e.g., "1m", "5m")
	Location *time.Location // Exchange time zone
	Samples  []PriceSample
}

// Empty reports whether the series carries no samples.
func (s IntradaySeries) Empty() bool {
	return len(s.Samples) == 0
}
