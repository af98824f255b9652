// Package handler はintradaydiffフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"intraday_diff/internal/api"
	"intraday_diff/internal/feature/intradaydiff/domain/entity"
)

// IntradayDiffUsecase は日中価差の一括取得ユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type IntradayDiffUsecase interface {
	Resolve(ctx context.Context, req entity.QuoteRequest) []entity.SymbolResult
}

// IntradayDiffHandler は日中価差APIのHTTPリクエストを処理します。
type IntradayDiffHandler struct {
	uc  IntradayDiffUsecase
	now func() time.Time
}

// NewIntradayDiffHandler はIntradayDiffHandlerの新しいインスタンスを生成します。
// now は日付省略時の「今日」を決める時計で、取引所タイムゾーンの現在時刻を返す必要があります。
func NewIntradayDiffHandler(uc IntradayDiffUsecase, now func() time.Time) *IntradayDiffHandler {
	if now == nil {
		now = time.Now
	}
	return &IntradayDiffHandler{uc: uc, now: now}
}

// PostIntradayDiff は銘柄リストと日付を受け取り、銘柄ごとの 09:00 / 09:50 始値と価差を返します。
// - JSON形式・日付形式の不正、銘柄数が1〜50件の範囲外の場合は422を返却
// - 個別銘柄の取得失敗は各要素の error に格納し、ステータスは200のまま
//
// エンドポイント例:
// POST /api/intraday-diff {"symbols":["2330.TW"],"date":"2026-01-28"}
func (h *IntradayDiffHandler) PostIntradayDiff(c *gin.Context) {
	var body api.PostIntradayDiffJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		slog.WarnContext(c.Request.Context(), "intraday diff request binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, validationError([]string{bindErrorDetail(err)}))
		return
	}

	var date *time.Time
	if body.Date != nil {
		d := body.Date.Time
		date = &d
	}

	req, err := entity.NewQuoteRequest(body.Symbols, date, h.now())
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			slog.WarnContext(c.Request.Context(), "intraday diff request validation failed", "problems", verr.Problems, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, validationError(verr.Problems))
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to build quote request", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	results := h.uc.Resolve(c.Request.Context(), req)

	out := ToSymbolResults(results)

	slog.InfoContext(c.Request.Context(), "intraday diff resolved",
		"symbols", len(req.Symbols),
		"failed", countFailed(results),
		"date", req.Date.Format(entity.DateLayout),
	)
	c.JSON(http.StatusOK, out)
}

// ToSymbolResults はドメインの結果をレスポンス形式に変換します（入力順を維持）。
// CLIのJSON出力でも同じ形式を使います。
func ToSymbolResults(results []entity.SymbolResult) []api.SymbolResult {
	out := make([]api.SymbolResult, 0, len(results))
	for _, r := range results {
		out = append(out, toSymbolResult(r))
	}
	return out
}

// toSymbolResult はドメインの結果をレスポンスDTOに変換します。
func toSymbolResult(r entity.SymbolResult) api.SymbolResult {
	out := api.SymbolResult{
		Symbol: r.Symbol,
		Date:   openapi_types.Date{Time: r.Date},
	}
	if r.Failed() {
		msg := r.Error
		out.Error = &msg
		return out
	}
	if r.Open0900 != nil {
		v := r.Open0900.InexactFloat64()
		out.Open0900 = &v
	}
	if r.Open0950 != nil {
		v := r.Open0950.InexactFloat64()
		out.Open0950 = &v
	}
	if r.Diff != nil {
		v := r.Diff.InexactFloat64()
		out.Diff = &v
	}
	return out
}

func countFailed(results []entity.SymbolResult) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}

func validationError(details []string) api.ErrorResponse {
	return api.ErrorResponse{Error: "request validation failed", Details: &details}
}

// bindErrorDetail はJSONバインドエラーを利用者向けの1行メッセージに変換します。
func bindErrorDetail(err error) string {
	var (
		parseErr  *time.ParseError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &parseErr):
		return fmt.Sprintf("date: %q is not a valid YYYY-MM-DD date", parseErr.Value)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return fmt.Sprintf("%s: expected %s, got %s", field, typeErr.Type, typeErr.Value)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("body: malformed JSON at offset %d", syntaxErr.Offset)
	case errors.Is(err, io.EOF):
		return "body: request body must be a JSON object"
	default:
		return fmt.Sprintf("body: %v", err)
	}
}
