package dist

import (
	"math"

	"github.com/TomTonic/rngenie"
)

// Triangular is the triangular distribution on [Min, Max) with its peak at Mode,
// sampled by inverse transform.
type Triangular struct {
	min, mode, max     float64
	width, left, right float64
	split              float64 // CDF at mode, (mode-min)/(max-min)
}

// NewTriangular returns ErrInvalidParameter unless all parameters and max-min are finite,
// max > min and min <= mode <= max.
func NewTriangular(min, mode, max float64) (*Triangular, error) {
	if !isFinite(min) || !isFinite(mode) || !isFinite(max) {
		return nil, invalid("triangular parameters (%v, %v, %v) must be finite", min, mode, max)
	}
	if !(max > min) {
		return nil, invalid("triangular max %v must be greater than min %v", max, min)
	}
	if !isFinite(max - min) {
		return nil, invalid("triangular width of [%v, %v] overflows", min, max)
	}
	if mode < min || mode > max {
		return nil, invalid("triangular mode %v must lie in [%v, %v]", mode, min, max)
	}
	d := &Triangular{
		min:   min,
		mode:  mode,
		max:   max,
		width: max - min,
		left:  mode - min,
		right: max - mode,
	}
	d.split = math.Min(math.Max(d.left/d.width, 0), 1)
	return d, nil
}

func (d *Triangular) Min() float64  { return d.min }
func (d *Triangular) Mode() float64 { return d.mode }
func (d *Triangular) Max() float64  { return d.max }

// ExpectedMean returns (min+mode+max)/3.
func (d *Triangular) ExpectedMean() float64 { return (d.min + d.mode + d.max) / 3 }

// ExpectedVariance returns (a²+b²+c²-ab-ac-bc)/18.
func (d *Triangular) ExpectedVariance() float64 {
	a, b, c := d.min, d.max, d.mode
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

// Sample returns a value in [Min, Max) for unit draws in [0, 1).
// Draws outside [0, 1) yield Min or Max instead of NaN.
func (d *Triangular) Sample(rng rngenie.Source) (float64, error) {
	if rng == nil {
		return 0, rngenie.ErrNilSource
	}
	u := rng.Float64()
	if u <= d.split {
		return d.min + math.Sqrt(nonNegative(u*d.width*d.left)), nil
	}
	return d.max - math.Sqrt(nonNegative((1-u)*d.width*d.right)), nil
}

// nonNegative maps negative and NaN radicands to 0.
func nonNegative(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// SampleTriangular draws once from Triangular(min, mode, max) without keeping the distribution.
func SampleTriangular(rng rngenie.Source, min, mode, max float64) (float64, error) {
	d, err := NewTriangular(min, mode, max)
	if err != nil {
		return 0, err
	}
	return d.Sample(rng)
}
