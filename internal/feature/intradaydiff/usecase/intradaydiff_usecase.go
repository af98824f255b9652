// Package usecase は日中価差（09:00 と 09:50 の始値差）の一括取得ロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"intraday_diff/internal/feature/intradaydiff/domain"
	"intraday_diff/internal/feature/intradaydiff/domain/entity"
)

const (
	// DefaultLookupTimeout は1銘柄あたりの取得タイムアウトのデフォルト値です。
	DefaultLookupTimeout = 5 * time.Second
	// DefaultMaxConcurrency は1バッチ内で同時に実行する取得数のデフォルト値です。
	DefaultMaxConcurrency = 8
	// DefaultToleranceMinutes は目標時刻にサンプルがない場合に前後を探索する分数です。
	DefaultToleranceMinutes = 2
)

// Config は IntradayDiffUsecase の動作設定です。
type Config struct {
	LookupTimeout    time.Duration  // 1銘柄あたりのタイムアウト
	MaxConcurrency   int            // 同時取得数（1〜MaxSymbols）
	ToleranceMinutes int            // サンプル位置合わせの許容分数
	Location         *time.Location // プロバイダがタイムゾーンを返さない場合の取引所タイムゾーン
}

// IntradayDiffUsecase は銘柄ごとに独立して価格を取得し、入力順の結果リストを組み立てます。
type IntradayDiffUsecase struct {
	provider QuoteProvider
	cfg      Config
}

// NewIntradayDiffUsecase は IntradayDiffUsecase の新しいインスタンスを生成します。
// 未設定・範囲外の設定値はデフォルト値で補います。
func NewIntradayDiffUsecase(provider QuoteProvider, cfg Config) *IntradayDiffUsecase {
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = DefaultLookupTimeout
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	if cfg.MaxConcurrency > entity.MaxSymbols {
		cfg.MaxConcurrency = entity.MaxSymbols
	}
	if cfg.ToleranceMinutes < 0 {
		cfg.ToleranceMinutes = 0
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &IntradayDiffUsecase{provider: provider, cfg: cfg}
}

// Resolve はリクエストの各銘柄について 09:00 / 09:50 の始値と価差を求めます。
// 戻り値は常に req.Symbols と同じ長さ・同じ順序で、1銘柄の失敗は
// その銘柄の Error に格納され、他の銘柄やバッチ全体には影響しません。
func (u *IntradayDiffUsecase) Resolve(ctx context.Context, req entity.QuoteRequest) []entity.SymbolResult {
	results := make([]entity.SymbolResult, len(req.Symbols))

	g := new(errgroup.Group)
	g.SetLimit(u.cfg.MaxConcurrency)
	for i, symbol := range req.Symbols {
		g.Go(func() error {
			// 各ゴルーチンは自分のインデックスにのみ書き込む
			results[i] = u.resolveOne(ctx, symbol, req.Date)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// resolveOne は1銘柄分の取得を行い、どのような失敗も結果値に変換します。
func (u *IntradayDiffUsecase) resolveOne(ctx context.Context, symbol string, date time.Time) (res entity.SymbolResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic while resolving symbol", "symbol", symbol, "date", date.Format(entity.DateLayout), "panic", r)
			res = entity.NewSymbolFailure(symbol, date, "internal error while processing symbol")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, u.cfg.LookupTimeout)
	defer cancel()

	series, err := u.provider.GetIntradaySeries(ctx, symbol, date)
	if err != nil {
		slog.WarnContext(ctx, "quote lookup failed", "symbol", symbol, "date", date.Format(entity.DateLayout), "error", err)
		return entity.NewSymbolFailure(symbol, date, lookupErrorMessage(err))
	}
	if series.Empty() {
		slog.WarnContext(ctx, "no intraday data", "symbol", symbol, "date", date.Format(entity.DateLayout))
		return entity.NewSymbolFailure(symbol, date, domain.ErrNoData.Error())
	}

	loc := series.Location
	if loc == nil {
		loc = u.cfg.Location
	}
	idx := newSampleIndex(series.Samples)

	samples := make([]entity.PriceSample, 0, 2)
	for _, cp := range []checkpoint{checkpoint0900, checkpoint0950} {
		sample, ok := idx.nearest(cp.at(date, loc), u.cfg.ToleranceMinutes)
		if !ok {
			slog.WarnContext(ctx, "no price sample near checkpoint",
				"symbol", symbol,
				"date", date.Format(entity.DateLayout),
				"checkpoint", cp.String(),
				"interval", series.Interval,
			)
			return entity.NewSymbolFailure(symbol, date, fmt.Sprintf("no price sample near %s", cp))
		}
		samples = append(samples, sample)
	}

	return entity.NewSymbolSuccess(symbol, date, samples[0].Open, samples[1].Open)
}

// lookupErrorMessage はプロバイダのエラーを利用者向けのメッセージに変換します。
func lookupErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoData):
		return domain.ErrNoData.Error()
	case errors.Is(err, domain.ErrSymbolNotFound):
		return domain.ErrSymbolNotFound.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "quote lookup timed out"
	default:
		return fmt.Sprintf("quote lookup failed: %v", err)
	}
}
