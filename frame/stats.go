package frame

import (
	"math"
	"sort"
)

// quantiles

// Quantile returns the p-th quantile of x, interpolating linearly between
// order statistics at h = p*(n-1). This is the convention the survey's
// published medians follow. x is not modified; order of x does not affect
// the result. An empty x yields NaN.
func Quantile(p float64, x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	vSort := make([]float64, len(x))
	copy(vSort, x)
	sort.Float64s(vSort)

	h := p * float64(len(vSort)-1)
	lo := int(math.Floor(h))
	if lo >= len(vSort)-1 {
		return vSort[len(vSort)-1]
	}

	return vSort[lo] + (h-float64(lo))*(vSort[lo+1]-vSort[lo])
}

// Median is the midpoint of the two middle order statistics for even
// counts, the middle datum for odd.
func Median(x []float64) float64 {
	return Quantile(0.5, x)
}

// Present collects the values behind non-nil pointers, dropping absent
// cells so they never contribute to a quantile.
func Present(x []*float64) []float64 {
	var out []float64
	for _, v := range x {
		if v != nil {
			out = append(out, *v)
		}
	}

	return out
}
