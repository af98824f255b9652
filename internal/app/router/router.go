// Package router はginエンジンを組み立て、全エンドポイントを登録します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intradaydiffhandler "intraday_diff/internal/feature/intradaydiff/transport/handler"
	"intraday_diff/internal/platform/http/handler"
	"intraday_diff/internal/platform/http/middleware"
)

// Options はルーターの任意設定です。
type Options struct {
	// CORSEnabled がtrueの場合、全オリジンからのブラウザアクセスを許可します。
	CORSEnabled bool
}

// NewRouter はミドルウェアとルートを登録したginエンジンを返します。
func NewRouter(root *handler.RootHandler, intradayDiff *intradaydiffhandler.IntradayDiffHandler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(), middleware.Recovery())
	if opts.CORSEnabled {
		cfg := cors.DefaultConfig()
		cfg.AllowAllOrigins = true
		cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.HeaderRequestID)
		cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
		r.Use(cors.New(cfg))
	}

	// サービス概要
	r.GET("/", root.Info)
	r.GET("/openapi.yaml", root.OpenAPI)

	// 導通確認用（/healthz は旧パス）
	for _, path := range []string{"/health", "/healthz"} {
		r.GET(path, handler.Health)
		r.HEAD(path, handler.Health)
		r.OPTIONS(path, handler.Health)
	}

	api := r.Group("/api")
	{
		api.POST("/intraday-diff", intradayDiff.PostIntradayDiff)
	}

	return r
}
