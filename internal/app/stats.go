package app

import (
	"math"
	"sort"

	"hotel_dashboard/internal/domain"
)

// quantile interpolates linearly between order statistics (the same method
// pandas/numpy default to), over an already-sorted slice.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// boxSummary builds a five-number summary with Tukey fences: whiskers reach
// the most extreme values within 1.5×IQR of the quartiles, points beyond are
// listed as outliers.
func boxSummary(label string, values []float64) domain.BoxSummary {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	med := quantile(sorted, 0.50)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	loFence := q1 - 1.5*iqr
	hiFence := q3 + 1.5*iqr

	min, max := math.Inf(1), math.Inf(-1)
	var outliers []float64
	for _, v := range sorted {
		if v < loFence || v > hiFence {
			outliers = append(outliers, v)
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	// all values outside the fences can only happen with a degenerate IQR
	if math.IsInf(min, 1) {
		min, max = sorted[0], sorted[len(sorted)-1]
	}
	return domain.BoxSummary{Label: label, Min: min, Q1: q1, Median: med, Q3: q3, Max: max, Outliers: outliers}
}

// histogram counts values into `bins` equal-width bins spanning [min, max].
// A zero-width range is padded by half a unit on each side; the last bin is
// closed on the right so the maximum lands inside it.
func histogram(values []float64, bins int) []domain.HistogramBin {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	out := make([]domain.HistogramBin, bins)
	for i := range out {
		out[i] = domain.HistogramBin{From: lo + float64(i)*width, To: lo + float64(i+1)*width}
	}
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}

// round1 keeps one decimal, the precision the share panels report.
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// sortDescStable orders points by value descending, preserving
// first-encountered order among ties.
func sortDescStable(points []domain.SeriesPoint) {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Value > points[j].Value })
}
