// Package logger はアプリケーション共通の slog ロガーを構築します。
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel は "debug" / "info" / "warn" / "error" をslogのレベルに変換します。
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// New は指定したレベルと形式（json / text）で w に出力するロガーを生成します。
// slog.InfoContext などに渡したコンテキストにリクエストIDがあれば request_id として出力します。
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lv, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lv}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		h = slog.NewJSONHandler(w, opts)
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q: want json or text", format)
	}
	return slog.New(contextHandler{h}).With("service", "intraday-diff"), nil
}
