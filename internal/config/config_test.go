package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// .env の無い一時ディレクトリで実行する
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.False(t, cfg.HTTP.CORSEnabled)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "Asia/Taipei", cfg.Market.Timezone)
	assert.Equal(t, "https://query1.finance.yahoo.com", cfg.Yahoo.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Yahoo.Timeout)
	assert.Equal(t, []string{"1m", "5m"}, cfg.Yahoo.Intervals)
	assert.Equal(t, 5*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 8, cfg.Lookup.MaxConcurrency)
	assert.Equal(t, 2, cfg.Lookup.ToleranceMinutes)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CORS_ENABLED", "true")
	t.Setenv("MARKET_TIMEZONE", "America/New_York")
	t.Setenv("YAHOO_INTERVALS", "5m,15m")
	t.Setenv("LOOKUP_TIMEOUT", "1500ms")
	t.Setenv("LOOKUP_MAX_CONCURRENCY", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.True(t, cfg.HTTP.CORSEnabled)
	assert.Equal(t, []string{"5m", "15m"}, cfg.Yahoo.Intervals)
	assert.Equal(t, 1500*time.Millisecond, cfg.Lookup.Timeout)
	assert.Equal(t, 4, cfg.Lookup.MaxConcurrency)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nLOG_FORMAT=text\n"), 0o600))
	// .env の値は既存の環境変数を上書きしない
	t.Setenv("LOG_LEVEL", "warn")
	// t.Setenv で後始末を登録してから未設定に戻し、.env から読み込ませる
	t.Setenv("LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unparsable duration", "LOOKUP_TIMEOUT", "soon", "parse env"},
		{"unparsable int", "LOOKUP_MAX_CONCURRENCY", "many", "parse env"},
		{"zero concurrency", "LOOKUP_MAX_CONCURRENCY", "0", "LOOKUP_MAX_CONCURRENCY must be at least 1"},
		{"negative tolerance", "SAMPLE_TOLERANCE_MINUTES", "-1", "SAMPLE_TOLERANCE_MINUTES must not be negative"},
		{"unknown time zone", "MARKET_TIMEZONE", "Mars/Olympus_Mons", "MARKET_TIMEZONE"},
		{"zero lookup timeout", "LOOKUP_TIMEOUT", "0s", "LOOKUP_TIMEOUT must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
