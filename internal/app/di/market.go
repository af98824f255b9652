// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"intraday_diff/internal/config"
	"intraday_diff/internal/feature/intradaydiff/usecase"
	"intraday_diff/internal/platform/externalapi/yahoo"
	infrahttp "intraday_diff/internal/platform/http"
)

// NewQuoteProvider creates a fully configured Yahoo ChartClient with HTTP client.
func NewQuoteProvider(cfg *config.Config, loc *time.Location) *yahoo.ChartClient {
	ycfg := yahoo.Config{
		BaseURL:   cfg.Yahoo.BaseURL,
		Timeout:   cfg.Yahoo.Timeout,
		Intervals: cfg.Yahoo.Intervals,
		Location:  loc,
	}
	httpClient := infrahttp.NewHTTPClient(ycfg.Timeout)
	return yahoo.NewChartClient(ycfg, httpClient)
}

// NewIntradayDiffUsecase wires the batch resolver to the given quote provider.
func NewIntradayDiffUsecase(cfg *config.Config, provider usecase.QuoteProvider, loc *time.Location) *usecase.IntradayDiffUsecase {
	return usecase.NewIntradayDiffUsecase(provider, usecase.Config{
		LookupTimeout:    cfg.Lookup.Timeout,
		MaxConcurrency:   cfg.Lookup.MaxConcurrency,
		ToleranceMinutes: cfg.Lookup.ToleranceMinutes,
		Location:         loc,
	})
}

// MarketClock returns a clock reporting the current time in the market time zone.
// The handler uses it to decide "today" when a request omits the date.
func MarketClock(loc *time.Location) func() time.Time {
	return func() time.Time { return time.Now().In(loc) }
}
