// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import "time"

const (
	// DefaultBaseURL is the public chart API host.
	DefaultBaseURL = "https://query1.finance.yahoo.com"
	// DefaultUserAgent is sent on every request; the chart API rejects clients without a browser-like agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// DefaultIntervals is the bar interval fallback order.
var DefaultIntervals = []string{"1m", "5m"}

// Config holds configuration for the Yahoo chart API client.
type Config struct {
	BaseURL   string         // Base URL for the API (e.g., "https://query1.finance.yahoo.com")
	Timeout   time.Duration  // HTTP request timeout
	Intervals []string       // Bar intervals tried in order until one yields samples
	UserAgent string         // User-Agent header value
	Location  *time.Location // Exchange time zone used when the response carries none
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if len(c.Intervals) == 0 {
		c.Intervals = DefaultIntervals
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	return c
}
