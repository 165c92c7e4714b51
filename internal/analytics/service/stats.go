package service

import (
	"math"
	"sort"
	"time"

	"github.com/openretail/salesboard/internal/analytics/domain"
)

// weekdayOrder follows the business week, Monday first.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Thứ Hai",
	time.Tuesday:   "Thứ Ba",
	time.Wednesday: "Thứ Tư",
	time.Thursday:  "Thứ Năm",
	time.Friday:    "Thứ Sáu",
	time.Saturday:  "Thứ Bảy",
	time.Sunday:    "Chủ Nhật",
}

func round0(v float64) float64 { return math.Round(v) }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func codeOrUnknown(code string) string {
	if code == "" {
		return domain.UnknownCode
	}
	return code
}

func nameOrUnknown(name string) string {
	if name == "" {
		return domain.UnknownName
	}
	return name
}

func displayName(names map[string]string, code string) string {
	if name, ok := names[code]; ok && name != "" {
		return name
	}
	return code
}

// spendStats computes box-plot statistics over one segment's per-customer
// totals. Quartiles are picked by index, sorted[n/4] and sorted[3n/4],
// with the median at sorted[n/2]; tiny samples degrade to the minimum.
// Whiskers are the extreme values inside the 1.5×IQR bounds; when every
// value lies outside they fall back to the global extremes.
func spendStats(code string, spends []int64) domain.SegmentSpendStats {
	sort.Slice(spends, func(i, j int) bool { return spends[i] < spends[j] })

	n := len(spends)
	stats := domain.SegmentSpendStats{
		SegmentCode: code,
		Min:         spends[0],
		Q1:          spends[0],
		Median:      spends[0],
		Q3:          spends[0],
		Max:         spends[n-1],
		Outliers:    []int64{},
		RawData:     spends,
	}
	if n > 1 {
		stats.Median = spends[n/2]
	}
	if n > 3 {
		stats.Q1 = spends[n/4]
		stats.Q3 = spends[3*n/4]
	}

	iqr := float64(stats.Q3 - stats.Q1)
	lower := float64(stats.Q1) - 1.5*iqr
	upper := float64(stats.Q3) + 1.5*iqr

	var kept []int64
	for _, v := range spends {
		if float64(v) < lower || float64(v) > upper {
			stats.Outliers = append(stats.Outliers, v)
		} else {
			kept = append(kept, v)
		}
	}
	stats.WhiskerBottom, stats.WhiskerTop = stats.Min, stats.Max
	if len(kept) > 0 {
		stats.WhiskerBottom = kept[0]
		stats.WhiskerTop = kept[len(kept)-1]
	}
	return stats
}
