package usecase

import (
	"context"
	"time"

	"intraday_diff/internal/feature/intradaydiff/domain/entity"
)

// QuoteProvider は外部の株価APIから日中足データを取得するリポジトリのインターフェイスです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
//
//go:generate mockgen -package=usecase_test -destination=mock_quote_provider_test.go -source=quote_provider.go QuoteProvider
type QuoteProvider interface {
	// GetIntradaySeries は指定銘柄・指定日（取引所現地時間）の日中足を時刻順で返します。
	// データが存在しない場合は空のシリーズか domain.ErrNoData を返します。
	GetIntradaySeries(ctx context.Context, symbol string, date time.Time) (entity.IntradaySeries, error)
}
