package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"intraday_diff/internal/app/di"
	"intraday_diff/internal/app/router"
	"intraday_diff/internal/config"
	intradaydiffhandler "intraday_diff/internal/feature/intradaydiff/transport/handler"
	"intraday_diff/internal/platform/http/handler"
	"intraday_diff/internal/platform/logger"
)

// version はビルド時に -ldflags "-X main.version=..." で上書きされます。
var version = "1.0.0"

func main() {
	// 設定（.env → 環境変数）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// ロガー
	lg, err := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	slog.SetDefault(lg)
	// GIN_MODE が未指定ならリリースモード（アクセスログはslogミドルウェアが出力する）
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("failed to resolve market time zone: %v", err)
	}

	// Repository（外部株価API）
	provider := di.NewQuoteProvider(cfg, loc)

	// Usecase
	intradayDiffUC := di.NewIntradayDiffUsecase(cfg, provider, loc)

	// Handler
	rootH := handler.NewRootHandler(version)
	intradayDiffH := intradaydiffhandler.NewIntradayDiffHandler(intradayDiffUC, di.MarketClock(loc))

	// ルータ生成
	r := router.NewRouter(rootH, intradayDiffH, router.Options{CORSEnabled: cfg.HTTP.CORSEnabled})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting",
			"addr", cfg.HTTP.Addr,
			"version", version,
			"market_timezone", loc.String(),
			"intervals", cfg.Yahoo.Intervals,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down", "timeout", cfg.HTTP.ShutdownTimeout.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
