// Package entity defines the domain models for the intradaydiff feature.
package entity

import (
	"fmt"
	"strings"
	"time"

	"intraday_diff/internal/feature/intradaydiff/domain"
)

const (
	// MinSymbols is the smallest batch accepted by the service.
	MinSymbols = 1
	// MaxSymbols is the largest batch accepted by the service.
	MaxSymbols = 50
	// DateLayout is the wire format of calendar dates (YYYY-MM-DD).
	DateLayout = "2006-01-02"
)

// QuoteRequest is a validated batch of ticker symbols for one trading date.
// Build it with NewQuoteRequest; the zero value is not a valid request.
type QuoteRequest struct {
	Symbols []string  // Ticker symbols in caller order (e.g., "2330.TW", "AAPL")
	Date    time.Time // Calendar date at 00:00 UTC
}

// ValidationError lists every problem found while building a QuoteRequest.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrInvalidRequest, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidRequest
}

// NewQuoteRequest validates symbols and resolves the target date.
// When date is nil the calendar date of now is used, so callers should pass
// now already converted to the market's time zone.
func NewQuoteRequest(symbols []string, date *time.Time, now time.Time) (QuoteRequest, error) {
	var problems []string

	switch {
	case len(symbols) < MinSymbols:
		problems = append(problems, fmt.Sprintf("symbols: must contain at least %d item", MinSymbols))
	case len(symbols) > MaxSymbols:
		problems = append(problems, fmt.Sprintf("symbols: must contain at most %d items, got %d", MaxSymbols, len(symbols)))
	}

	cleaned := make([]string, len(symbols))
	for i, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" {
			problems = append(problems, fmt.Sprintf("symbols -> %d: must not be empty", i))
		}
		cleaned[i] = s
	}

	if len(problems) > 0 {
		return QuoteRequest{}, &ValidationError{Problems: problems}
	}

	d := now
	if date != nil {
		d = *date
	}
	return QuoteRequest{Symbols: cleaned, Date: DateOf(d)}, nil
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Problems: []string{fmt.Sprintf("date: %q is not a valid YYYY-MM-DD date", s)}}
	}
	return t, nil
}

// DateOf strips the clock from t and returns its calendar date at 00:00 UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
