// Package dto defines data transfer objects for the Yahoo chart API responses.
package dto

// ChartResponse represents the JSON response from the v8/finance/chart endpoint.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *ChartError   `json:"error"`
	} `json:"chart"`
}

// ChartError is set instead of Result when the request fails (unknown symbol, unsupported range).
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult holds the bars of one symbol. Timestamp and the quote arrays are parallel
// and may contain nulls for bars without trades.
type ChartResult struct {
	Meta       ChartMeta `json:"meta"`
	Timestamp  []*int64  `json:"timestamp"`
	Indicators struct {
		Quote []Quote `json:"quote"`
	} `json:"indicators"`
}

// ChartMeta describes the instrument and its exchange.
type ChartMeta struct {
	Symbol               string `json:"symbol"`
	Currency             string `json:"currency"`
	ExchangeName         string `json:"exchangeName"`
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	DataGranularity      string `json:"dataGranularity"`
}

// Quote holds per-bar prices.
type Quote struct {
	Open  []*float64 `json:"open"`
	High  []*float64 `json:"high"`
	Low   []*float64 `json:"low"`
	Close []*float64 `json:"close"`
}
