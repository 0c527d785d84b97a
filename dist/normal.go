package dist

import (
	"math"

	"github.com/TomTonic/rngenie"
)

// Normal is the normal distribution N(mean, stdDev²), sampled with the trigonometric
// Box-Muller transform. Every transform yields two independent variates; the second is
// cached on the instance and returned by the next Sample without drawing from the source.
//
// The cache makes Normal stateful: do not share one instance between goroutines, and do
// not share one instance between sources whose sequences must stay reproducible on their own.
type Normal struct {
	mean, stdDev float64
	spare        float64
	hasSpare     bool
}

// NewNormal returns ErrInvalidParameter unless mean is finite and stdDev is finite and > 0.
func NewNormal(mean, stdDev float64) (*Normal, error) {
	if !isFinite(stdDev) || !(stdDev > 0) {
		return nil, invalid("normal stdDev %v must be finite and > 0", stdDev)
	}
	if !isFinite(mean) {
		return nil, invalid("normal mean %v must be finite", mean)
	}
	return &Normal{mean: mean, stdDev: stdDev}, nil
}

// NewStandardNormal returns N(0, 1).
func NewStandardNormal() *Normal {
	return &Normal{mean: 0, stdDev: 1}
}

func (d *Normal) Mean() float64   { return d.mean }
func (d *Normal) StdDev() float64 { return d.stdDev }

func (d *Normal) ExpectedMean() float64     { return d.mean }
func (d *Normal) ExpectedVariance() float64 { return d.stdDev * d.stdDev }

// HasSpare reports whether the next Sample will be served from the cache.
func (d *Normal) HasSpare() bool { return d.hasSpare }

// Reset drops a cached variate, for example after restoring the source to an earlier state.
func (d *Normal) Reset() {
	d.hasSpare = false
	d.spare = 0
}

func (d *Normal) Sample(rng rngenie.Source) (float64, error) {
	if rng == nil {
		return 0, rngenie.ErrNilSource
	}
	return d.mean + d.stdDev*d.standard(rng), nil
}

// standard returns one N(0, 1) variate.
func (d *Normal) standard(rng rngenie.Source) float64 {
	if d.hasSpare {
		d.hasSpare = false
		return d.spare
	}

	u1 := unit(rng.Float64())
	for u1 <= 0 { // log(0) is -Inf
		u1 = unit(rng.Float64())
	}
	u2 := rng.Float64()

	r := math.Sqrt(-2.0 * math.Log(u1))
	sin, cos := math.Sincos(2.0 * math.Pi * u2)

	d.spare = r * sin
	d.hasSpare = true
	return r * cos
}

// SampleNormal draws once from N(mean, stdDev²). The second variate of the pair is discarded.
func SampleNormal(rng rngenie.Source, mean, stdDev float64) (float64, error) {
	d, err := NewNormal(mean, stdDev)
	if err != nil {
		return 0, err
	}
	return d.Sample(rng)
}
