package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intraday_diff/internal/feature/intradaydiff/domain/entity"
)

// TestRoundPrice は小数第2位への丸めが偶数丸め（銀行丸め）であることを検証します。
func TestRoundPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       float64
		expected string
	}{
		{1050.001, "1050.00"},
		{1055.004, "1055.00"},
		{1050.005, "1050.00"},
		{1050.015, "1050.02"},
		{2.675, "2.68"},
		{2.665, "2.66"},
		{-1.005, "-1.00"},
		{99.999, "100.00"},
		{0, "0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, entity.RoundPrice(tt.in).StringFixed(2), "input %v", tt.in)
	}
}

func TestNewSymbolSuccess(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	r := entity.NewSymbolSuccess("2330.TW", date, 1050.001, 1055.004)

	assert.False(t, r.Failed())
	assert.Equal(t, "2330.TW", r.Symbol)
	assert.Equal(t, date, r.Date)
	require.NotNil(t, r.Open0900)
	require.NotNil(t, r.Open0950)
	require.NotNil(t, r.Diff)
	assert.Equal(t, "1050.00", r.Open0900.StringFixed(2))
	assert.Equal(t, "1055.00", r.Open0950.StringFixed(2))
	assert.Equal(t, "5.00", r.Diff.StringFixed(2))
}

// TestNewSymbolSuccess_DiffUsesRoundedOpens は価差が丸め後の始値から計算されることを検証します。
func TestNewSymbolSuccess_DiffUsesRoundedOpens(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	r := entity.NewSymbolSuccess("X", date, 10.004, 10.016)

	assert.Equal(t, "10.00", r.Open0900.StringFixed(2))
	assert.Equal(t, "10.02", r.Open0950.StringFixed(2))
	assert.Equal(t, "0.02", r.Diff.StringFixed(2))
	assert.True(t, r.Diff.Equal(r.Open0950.Sub(*r.Open0900)))
}

func TestNewSymbolFailure(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 1, 28, 15, 0, 0, 0, time.UTC)
	r := entity.NewSymbolFailure("BADSYM", date, "symbol not found")

	assert.True(t, r.Failed())
	assert.Equal(t, "symbol not found", r.Error)
	assert.Equal(t, time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Nil(t, r.Open0900)
	assert.Nil(t, r.Open0950)
	assert.Nil(t, r.Diff)

	assert.Equal(t, "unknown error", entity.NewSymbolFailure("X", date, "").Error)
}
