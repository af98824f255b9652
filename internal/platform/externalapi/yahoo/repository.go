package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // 取引所タイムゾーン名をOSのzoneinfoに依存せず解決する

	"github.com/go-resty/resty/v2"

	"intraday_diff/internal/feature/intradaydiff/domain"
	"intraday_diff/internal/feature/intradaydiff/domain/entity"
	"intraday_diff/internal/feature/intradaydiff/usecase"
	"intraday_diff/internal/platform/externalapi/yahoo/dto"
)

const chartPath = "/v8/finance/chart/{symbol}"

// windowPadding は取引所のUTCオフセット（-12h〜+14h）を全て含むための取得範囲の余白です。
const windowPadding = 14 * time.Hour

// ChartClient はYahoo Finance chart APIから日中足を取得するQuoteProvider実装です。
type ChartClient struct {
	cfg    Config
	client *resty.Client
}

// ChartClientがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*ChartClient)(nil)

// NewChartClient は指定された設定とHTTPクライアントでChartClientの新しいインスタンスを生成します。
func NewChartClient(cfg Config, httpClient *http.Client) *ChartClient {
	cfg = cfg.withDefaults()
	client := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")
	return &ChartClient{cfg: cfg, client: client}
}

// NormalizeSymbol は数字のみの銘柄コードを台湾証券取引所の表記（"2330" → "2330.TW"）に変換します。
// それ以外の銘柄はそのまま返します。
func NormalizeSymbol(symbol string) string {
	if symbol == "" || strings.Contains(symbol, ".") {
		return symbol
	}
	for _, r := range symbol {
		if r < '0' || r > '9' {
			return symbol
		}
	}
	return symbol + ".TW"
}

// GetIntradaySeries は指定日の日中足を取得します。
// Config.Intervals の順に問い合わせ、指定日のサンプルが得られた最初の間隔の結果を返します。
func (c *ChartClient) GetIntradaySeries(ctx context.Context, symbol string, date time.Time) (entity.IntradaySeries, error) {
	yfSymbol := NormalizeSymbol(symbol)
	date = entity.DateOf(date)

	var (
		lastErr error
		noData  bool // いずれかの間隔が「指定日のデータなし」と正常に応答した
	)
	for _, interval := range c.cfg.Intervals {
		series, err := c.fetch(ctx, yfSymbol, interval, date)
		switch {
		case err == nil && !series.Empty():
			slog.DebugContext(ctx, "intraday series fetched",
				"symbol", yfSymbol,
				"interval", interval,
				"samples", len(series.Samples),
			)
			return series, nil
		case err == nil, errors.Is(err, domain.ErrNoData):
			// この間隔では指定日のデータがないため次の間隔を試す
			noData = true
			continue
		case errors.Is(err, domain.ErrSymbolNotFound), ctx.Err() != nil:
			return entity.IntradaySeries{}, err
		default:
			slog.WarnContext(ctx, "chart request failed, trying next interval",
				"symbol", yfSymbol,
				"interval", interval,
				"error", err,
			)
			lastErr = err
		}
	}
	// 古い日付では1分足が拒否されるため、他の間隔が「データなし」と答えた場合はそちらを優先する
	if lastErr != nil && !noData {
		return entity.IntradaySeries{}, lastErr
	}
	return entity.IntradaySeries{}, domain.ErrNoData
}

// fetch は1つの間隔でchart APIを呼び出し、指定日のサンプルだけを取り出します。
func (c *ChartClient) fetch(ctx context.Context, symbol, interval string, date time.Time) (entity.IntradaySeries, error) {
	from, to := fetchWindow(date)

	res, err := c.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"interval": interval,
			"period1":  strconv.FormatInt(from.Unix(), 10),
			"period2":  strconv.FormatInt(to.Unix(), 10),
		}).
		Get(chartPath)
	if err != nil {
		return entity.IntradaySeries{}, err
	}

	// JSONレスポンスをDTOにデコード（エラー時もchart.errorが返るため先にデコードを試みる）
	var body dto.ChartResponse
	decodeErr := json.Unmarshal(res.Body(), &body)

	if chartErr := body.Chart.Error; decodeErr == nil && chartErr != nil {
		if chartErr.Code == "Not Found" {
			return entity.IntradaySeries{}, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, chartErr.Description)
		}
		return entity.IntradaySeries{}, fmt.Errorf("yahoo: %s: %s", chartErr.Code, chartErr.Description)
	}
	if res.StatusCode() >= 400 {
		return entity.IntradaySeries{}, fmt.Errorf("yahoo http %d", res.StatusCode())
	}
	if decodeErr != nil {
		return entity.IntradaySeries{}, fmt.Errorf("decode chart response: %w", decodeErr)
	}
	if len(body.Chart.Result) == 0 {
		return entity.IntradaySeries{}, domain.ErrNoData
	}

	return c.toSeries(symbol, interval, date, body.Chart.Result[0]), nil
}

// toSeries はレスポンスを取引所現地時間のサンプルに変換し、指定日のものだけを時刻順で返します。
func (c *ChartClient) toSeries(symbol, interval string, date time.Time, r dto.ChartResult) entity.IntradaySeries {
	loc := c.location(r.Meta.ExchangeTimezoneName)
	if r.Meta.DataGranularity != "" {
		interval = r.Meta.DataGranularity
	}

	var opens []*float64
	if len(r.Indicators.Quote) > 0 {
		opens = r.Indicators.Quote[0].Open
	}

	y, m, d := date.Date()
	samples := make([]entity.PriceSample, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		// 取引のないバーはnullで返るためスキップ
		if ts == nil || i >= len(opens) || opens[i] == nil {
			continue
		}
		tm := time.Unix(*ts, 0).In(loc)
		if ty, tmo, td := tm.Date(); ty != y || tmo != m || td != d {
			continue
		}
		samples = append(samples, entity.PriceSample{Time: tm, Open: *opens[i]})
	}
	slices.SortStableFunc(samples, func(a, b entity.PriceSample) int {
		return a.Time.Compare(b.Time)
	})

	return entity.IntradaySeries{
		Symbol:   symbol,
		Interval: interval,
		Location: loc,
		Samples:  samples,
	}
}

// location はレスポンスの取引所タイムゾーン名を解決します。解決できない場合は設定値を使います。
func (c *ChartClient) location(name string) *time.Location {
	if name == "" {
		return c.cfg.Location
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown exchange time zone, using default", "timezone", name, "default", c.cfg.Location.String())
		return c.cfg.Location
	}
	return loc
}

// fetchWindow は指定日がどの取引所の現地日付であっても覆える取得範囲を返します。
func fetchWindow(date time.Time) (from, to time.Time) {
	day := entity.DateOf(date)
	return day.Add(-windowPadding), day.AddDate(0, 0, 1).Add(windowPadding)
}
