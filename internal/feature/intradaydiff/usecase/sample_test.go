package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"intraday_diff/internal/feature/intradaydiff/domain/entity"
)

func TestSampleIndex_Nearest(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CST", 8*60*60)
	at := func(h, m, s int) time.Time { return time.Date(2026, 1, 28, h, m, s, 0, loc) }

	samples := []entity.PriceSample{
		{Time: at(9, 0, 30), Open: 1},
		{Time: at(9, 0, 45), Open: 2}, // 同じ分の2件目は無視される
		{Time: at(9, 51, 0), Open: 3},
		{Time: at(9, 48, 0), Open: 4},
	}
	idx := newSampleIndex(samples)

	tests := []struct {
		name      string
		target    time.Time
		tolerance int
		wantOpen  float64
		wantOK    bool
	}{
		{"sub-minute timestamp matches its minute", at(9, 0, 0), 0, 1, true},
		{"forward before backward", at(9, 50, 0), 2, 3, true},
		{"zero tolerance requires exact minute", at(9, 50, 0), 0, 0, false},
		{"outside tolerance", at(10, 0, 0), 2, 0, false},
		{"target in other zone is compared as an instant", at(9, 0, 0).UTC(), 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := idx.nearest(tt.target, tt.tolerance)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOpen, got.Open)
		})
	}
}

func TestSampleIndex_NearestBackward(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CST", 8*60*60)
	idx := newSampleIndex([]entity.PriceSample{
		{Time: time.Date(2026, 1, 28, 9, 48, 0, 0, loc), Open: 4},
	})

	got, ok := idx.nearest(time.Date(2026, 1, 28, 9, 50, 0, 0, loc), 2)
	assert.True(t, ok)
	assert.Equal(t, 4.0, got.Open)
}

func TestCheckpoint_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "09:00", checkpoint0900.String())
	assert.Equal(t, "09:50", checkpoint0950.String())
}
