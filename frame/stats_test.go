package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile_OrderIndependent(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7}
	shuffled := []float64{4, 1, 7, 3, 6, 2, 5}

	for _, p := range []float64{0.3, 0.5, 0.8} {
		assert.Equal(t, Quantile(p, sorted), Quantile(p, shuffled))
	}

	// input not modified
	assert.Equal(t, []float64{4, 1, 7, 3, 6, 2, 5}, shuffled)
}

func TestQuantile_Constant(t *testing.T) {
	x := []float64{0.4, 0.4, 0.4, 0.4}

	for _, p := range []float64{0.3, 0.5, 0.8} {
		assert.Equal(t, 0.4, Quantile(p, x))
	}
}

func TestQuantile_Bounds(t *testing.T) {
	x := []float64{3, 1, 2}

	q := Quantile(0.3, x)
	assert.GreaterOrEqual(t, q, 1.0)
	assert.LessOrEqual(t, q, 3.0)

	assert.True(t, math.IsNaN(Quantile(0.5, nil)))
}

func TestQuantile_Interpolates(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	assert.InDelta(t, 2.8, Quantile(0.3, x), 1e-12)
	assert.InDelta(t, 5.8, Quantile(0.8, x), 1e-12)
	assert.Equal(t, 2.5, Quantile(0.5, []float64{1, 2, 3, 4}))
	assert.Equal(t, 1.0, Quantile(0, x))
	assert.Equal(t, 7.0, Quantile(1, x))
}

func TestMedian(t *testing.T) {
	// even count: midpoint of the two middle order statistics
	assert.Equal(t, 75.0, Median([]float64{60, 90}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))

	// odd count: the middle datum
	assert.Equal(t, 5.0, Median([]float64{5, 1, 9}))
	assert.Equal(t, 2.0, Median([]float64{2, 2, 2}))
	assert.Equal(t, 90.0, Median([]float64{90}))
}

func TestPresent(t *testing.T) {
	a, b := 1.0, 3.0
	assert.Equal(t, []float64{1, 3}, Present([]*float64{&a, nil, &b}))
	assert.Nil(t, Present([]*float64{nil, nil}))
}
