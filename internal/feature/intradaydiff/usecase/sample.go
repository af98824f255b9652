package usecase

import (
	"fmt"
	"time"

	"intraday_diff/internal/feature/intradaydiff/domain/entity"
)

// checkpoint は価格を取得する取引所現地時刻です。
type checkpoint struct {
	hour   int
	minute int
}

func (c checkpoint) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// at は指定日・指定タイムゾーンにおける checkpoint の時刻を返します。
func (c checkpoint) at(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.hour, c.minute, 0, 0, loc)
}

var (
	checkpoint0900 = checkpoint{hour: 9, minute: 0}
	checkpoint0950 = checkpoint{hour: 9, minute: 50}
)

// sampleIndex は分単位に切り捨てた時刻でサンプルを引けるようにしたインデックスです。
// 同じ分に複数のサンプルがある場合は先頭（最も早いもの）を採用します。
type sampleIndex map[int64]entity.PriceSample

func newSampleIndex(samples []entity.PriceSample) sampleIndex {
	idx := make(sampleIndex, len(samples))
	for _, s := range samples {
		key := s.Time.Truncate(time.Minute).Unix()
		if _, ok := idx[key]; ok {
			continue
		}
		idx[key] = s
	}
	return idx
}

// nearest は target に最も近いサンプルを返します。
// 1. target と同じ分のサンプル
// 2. 見つからなければ +1〜+tolerance 分を順に探索
// 3. それでもなければ -1〜-tolerance 分を順に探索
func (idx sampleIndex) nearest(target time.Time, tolerance int) (entity.PriceSample, bool) {
	target = target.Truncate(time.Minute)
	if s, ok := idx[target.Unix()]; ok {
		return s, true
	}
	for offset := 1; offset <= tolerance; offset++ {
		if s, ok := idx[target.Add(time.Duration(offset)*time.Minute).Unix()]; ok {
			return s, true
		}
	}
	for offset := 1; offset <= tolerance; offset++ {
		if s, ok := idx[target.Add(-time.Duration(offset)*time.Minute).Unix()]; ok {
			return s, true
		}
	}
	return entity.PriceSample{}, false
}
