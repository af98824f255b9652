// Package domain defines domain-level errors for the intradaydiff feature.
package domain

import "errors"

// Domain errors for intraday diff lookups.
// Upper layers decide whether an error becomes a per-symbol message or an HTTP status.
var (
	// ErrInvalidRequest indicates that a batch request failed validation
	// (symbol count out of range, blank symbol, malformed date).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoData indicates that the quote provider has no intraday data for the
	// symbol on the requested date (holiday, weekend, delisted symbol).
	ErrNoData = errors.New("no trading data for this date")

	// ErrSymbolNotFound indicates that the quote provider does not know the symbol.
	ErrSymbolNotFound = errors.New("symbol not found")
)
