package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomTonic/rngenie"
	"github.com/TomTonic/rngenie/internal/stats"
)

func TestNewTriangularValidation(t *testing.T) {
	for _, c := range []struct{ min, mode, max float64 }{
		{0, 0, 0},
		{1, 1, 0},
		{0, -1, 1},
		{0, 2, 1},
		{math.NaN(), 0, 1},
		{0, math.NaN(), 1},
		{0, 0, math.Inf(1)},
		{-math.MaxFloat64, 0, math.MaxFloat64},
	} {
		_, err := NewTriangular(c.min, c.mode, c.max)
		assert.ErrorIs(t, err, ErrInvalidParameter, "(%v, %v, %v)", c.min, c.mode, c.max)
	}
}

func TestTriangularRange(t *testing.T) {
	d, err := NewTriangular(0, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Min())
	assert.Equal(t, 5.0, d.Mode())
	assert.Equal(t, 10.0, d.Max())

	rng := rngenie.NewPcg32(2024)
	var s stats.Summary
	for range 50_000 {
		x, err := d.Sample(rng)
		require.NoError(t, err)
		require.True(t, x >= 0 && x < 10, "sample %v out of range", x)
		s.Add(x)
	}
	assert.Equal(t, 5.0, d.ExpectedMean())
	assert.InDelta(t, 5.0, s.Mean(), 0.02)
}

func TestTriangularMoments(t *testing.T) {
	d, err := NewTriangular(0, 2, 5)
	require.NoError(t, err)
	assert.InDelta(t, 7.0/3.0, d.ExpectedMean(), 1e-12)
	assert.InDelta(t, 19.0/18.0, d.ExpectedVariance(), 1e-12)

	rng := rngenie.NewPcg32(99)
	var s stats.Summary
	for range 200_000 {
		x, err := d.Sample(rng)
		require.NoError(t, err)
		s.Add(x)
	}
	assert.InDelta(t, d.ExpectedMean(), s.Mean(), 0.02)
	assert.True(t, stats.FloatsEqualWithTolerance(d.ExpectedVariance(), s.Variance(), 5),
		"variance %v, expected %v", s.Variance(), d.ExpectedVariance())
}

func TestTriangularDegenerateModes(t *testing.T) {
	for _, mode := range []float64{0, 1} {
		d, err := NewTriangular(0, mode, 1)
		require.NoError(t, err)
		rng := rngenie.NewPcg32(uint64(7 + mode))
		var s stats.Summary
		for range 100_000 {
			x, err := d.Sample(rng)
			require.NoError(t, err)
			require.False(t, math.IsNaN(x))
			require.True(t, x >= 0 && x < 1, "mode %v: sample %v out of range", mode, x)
			s.Add(x)
		}
		assert.InDelta(t, d.ExpectedMean(), s.Mean(), 0.01, "mode %v", mode)
	}
}

func TestTriangularOutOfContractDraws(t *testing.T) {
	d, err := NewTriangular(0, 0.25, 1)
	require.NoError(t, err)
	rng := &scripted{floats: []float64{1.0, -0.1, 2.0, 0.5, math.NaN()}}
	for range len(rng.floats) {
		x, err := d.Sample(rng)
		require.NoError(t, err)
		require.False(t, math.IsNaN(x))
		assert.True(t, x >= 0 && x <= 1, "sample %v out of range", x)
	}
}

func TestTriangularInverseCDF(t *testing.T) {
	d, err := NewTriangular(0, 0.25, 1)
	require.NoError(t, err)
	rng := &scripted{floats: []float64{0, 0.25, 0.5, 0.1}}

	x, _ := d.Sample(rng)
	assert.Equal(t, 0.0, x)
	x, _ = d.Sample(rng)
	assert.InDelta(t, 0.25, x, 1e-12, "the split point maps to the mode")
	x, _ = d.Sample(rng)
	assert.InDelta(t, 1-math.Sqrt(0.5*0.75), x, 1e-12)
	x, _ = d.Sample(rng)
	assert.InDelta(t, math.Sqrt(0.1*0.25), x, 1e-12)
}

func TestSampleTriangular(t *testing.T) {
	x, err := SampleTriangular(&scripted{floats: []float64{0.5}}, 0, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 1e-12)

	_, err = SampleTriangular(nil, 0, 1, 2)
	assert.ErrorIs(t, err, rngenie.ErrNilSource)
	_, err = SampleTriangular(rngenie.NewPcg32(1), 0, 3, 2)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
