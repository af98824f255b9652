// Package config はプロセス全体の設定を環境変数（および .env）から読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config はサーバーとCLIが共有する設定です。
type Config struct {
	HTTP   HTTP
	Log    Log
	Market Market
	Yahoo  Yahoo
	Lookup Lookup
}

// HTTP はHTTPサーバーの設定です。
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	CORSEnabled     bool          `env:"CORS_ENABLED" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Log はロガーの設定です。
type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`  // debug / info / warn / error
	Format string `env:"LOG_FORMAT" envDefault:"json"` // json / text
}

// Market は取引所に関する設定です。
type Market struct {
	// Timezone は日付省略時の「今日」の判定と、取引所タイムゾーンが取得できない場合に使います。
	Timezone string `env:"MARKET_TIMEZONE" envDefault:"Asia/Taipei"`
}

// Yahoo は株価APIクライアントの設定です。
type Yahoo struct {
	BaseURL   string        `env:"YAHOO_BASE_URL" envDefault:"https://query1.finance.yahoo.com"`
	Timeout   time.Duration `env:"YAHOO_TIMEOUT" envDefault:"10s"`
	Intervals []string      `env:"YAHOO_INTERVALS" envDefault:"1m,5m" envSeparator:","`
}

// Lookup は銘柄ごとの取得処理の設定です。
type Lookup struct {
	Timeout          time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"5s"`
	MaxConcurrency   int           `env:"LOOKUP_MAX_CONCURRENCY" envDefault:"8"`
	ToleranceMinutes int           `env:"SAMPLE_TOLERANCE_MINUTES" envDefault:"2"`
}

// Load は .env が存在すれば読み込み、環境変数から Config を組み立てます。
// .env の値は既存の環境変数を上書きしません。
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		slog.Debug(".env not found; using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は値の範囲を検証します。
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if c.Yahoo.Timeout <= 0 {
		errs = append(errs, errors.New("YAHOO_TIMEOUT must be positive"))
	}
	if len(c.Yahoo.Intervals) == 0 {
		errs = append(errs, errors.New("YAHOO_INTERVALS must contain at least one interval"))
	}
	if c.Lookup.Timeout <= 0 {
		errs = append(errs, errors.New("LOOKUP_TIMEOUT must be positive"))
	}
	if c.Lookup.MaxConcurrency < 1 {
		errs = append(errs, errors.New("LOOKUP_MAX_CONCURRENCY must be at least 1"))
	}
	if c.Lookup.ToleranceMinutes < 0 {
		errs = append(errs, errors.New("SAMPLE_TOLERANCE_MINUTES must not be negative"))
	}
	return errors.Join(errs...)
}

// Location は MARKET_TIMEZONE を解決します。
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Market.Timezone)
	if err != nil {
		return nil, fmt.Errorf("MARKET_TIMEZONE %q: %w", c.Market.Timezone, err)
	}
	return loc, nil
}
