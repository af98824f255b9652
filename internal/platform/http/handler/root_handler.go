package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"intraday_diff/internal/api"
)

// ServiceName はルートエンドポイントで返すサービス名です。
const ServiceName = "Stock Intraday Diff Service"

// RootHandler はサービス概要とAPI定義を返します。
type RootHandler struct {
	info api.ServiceInfo
}

// NewRootHandler は指定バージョンのRootHandlerを生成します。
func NewRootHandler(version string) *RootHandler {
	return &RootHandler{info: api.ServiceInfo{
		Service:     ServiceName,
		Version:     version,
		Description: "Batch lookup of the 09:00 and 09:50 opening prices and their difference for stock symbols on a trading date",
		Endpoints: map[string]string{
			"POST /api/intraday-diff": "Opening prices at 09:00 and 09:50 and their difference for 1-50 symbols",
			"GET /health":             "Liveness check",
			"GET /openapi.yaml":       "OpenAPI document",
		},
		Example: api.IntradayDiffRequest{
			Symbols: []string{"2330.TW", "2317.TW"},
			Date:    &openapi_types.Date{Time: time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)},
		},
	}}
}

// Info は GET / を処理します。
func (h *RootHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}

// OpenAPI は GET /openapi.yaml を処理し、埋め込まれたAPI定義をそのまま返します。
func (h *RootHandler) OpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", api.OpenAPISpec)
}
