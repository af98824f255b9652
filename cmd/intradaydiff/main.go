// Command intradaydiff はサーバーを起動せずに日中価差を1回だけ取得し、JSONで標準出力へ書き出します。
//
//	intradaydiff -symbols 2330.TW,2317 -date 2026-01-28
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"intraday_diff/internal/app/di"
	"intraday_diff/internal/config"
	"intraday_diff/internal/feature/intradaydiff/domain/entity"
	intradaydiffhandler "intraday_diff/internal/feature/intradaydiff/transport/handler"
	"intraday_diff/internal/platform/logger"
)

// resolver は run が必要とするユースケースの振る舞いです。
type resolver interface {
	Resolve(ctx context.Context, req entity.QuoteRequest) []entity.SymbolResult
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	// ログは標準エラーへ（標準出力は結果のJSON専用）
	lg, err := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	slog.SetDefault(lg)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("failed to resolve market time zone: %v", err)
	}

	uc := di.NewIntradayDiffUsecase(cfg, di.NewQuoteProvider(cfg, loc), loc)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, uc, di.MarketClock(loc)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "intradaydiff:", err)
		os.Exit(2)
	}
}

// run はフラグを解釈してユースケースを実行し、結果をJSON配列として out に書き出します。
// -h / -help の場合は使い方を errOut に出力し flag.ErrHelp を返します。
func run(ctx context.Context, args []string, out, errOut io.Writer, uc resolver, now func() time.Time) error {
	fs := flag.NewFlagSet("intradaydiff", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		symbolsCSV string
		dateStr    string
		pretty     bool
	)
	fs.StringVar(&symbolsCSV, "symbols", "", "comma-separated ticker symbols (e.g., 2330.TW,2317.TW)")
	fs.StringVar(&dateStr, "date", "", "trading date YYYY-MM-DD (default: today in the market time zone)")
	fs.BoolVar(&pretty, "pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(errOut)
			fmt.Fprintln(errOut, "usage: intradaydiff -symbols 2330.TW,2317.TW [-date YYYY-MM-DD] [-pretty]")
			fs.PrintDefaults()
		}
		return err
	}

	var symbols []string
	if symbolsCSV != "" {
		symbols = strings.Split(symbolsCSV, ",")
	}

	var date *time.Time
	if dateStr != "" {
		d, err := entity.ParseDate(dateStr)
		if err != nil {
			return err
		}
		date = &d
	}

	req, err := entity.NewQuoteRequest(symbols, date, now())
	if err != nil {
		return err
	}

	results := intradaydiffhandler.ToSymbolResults(uc.Resolve(ctx, req))

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(results)
}
