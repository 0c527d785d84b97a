package dist

import (
	"math"

	"github.com/TomTonic/rngenie"
)

// Uniform is the continuous uniform distribution on [Min, Max).
type Uniform struct {
	min, max float64
	width    float64
}

// NewUniform returns ErrInvalidParameter when max <= min or a bound or the width is not finite.
func NewUniform(min, max float64) (*Uniform, error) {
	if !isFinite(min) || !isFinite(max) {
		return nil, invalid("uniform bounds [%v, %v) must be finite", min, max)
	}
	if !(max > min) {
		return nil, invalid("uniform max %v must be greater than min %v", max, min)
	}
	if !isFinite(max - min) {
		return nil, invalid("uniform width of [%v, %v) overflows", min, max)
	}
	return &Uniform{min: min, max: max, width: max - min}, nil
}

func (d *Uniform) Min() float64 { return d.min }
func (d *Uniform) Max() float64 { return d.max }

// ExpectedMean returns (min+max)/2.
func (d *Uniform) ExpectedMean() float64 { return (d.min + d.max) / 2 }

// ExpectedVariance returns (max-min)^2/12.
func (d *Uniform) ExpectedVariance() float64 { return d.width * d.width / 12 }

// Sample returns a value in [Min, Max). A unit draw outside [0, 1) is clamped first,
// so a misbehaving source cannot push the result out of range.
func (d *Uniform) Sample(rng rngenie.Source) (float64, error) {
	if rng == nil {
		return 0, rngenie.ErrNilSource
	}
	u := unit(rng.Float64())
	x := d.min + d.width*u
	if x >= d.max { // rounding of min + width*u for u just below 1
		x = math.Nextafter(d.max, d.min)
	}
	return x, nil
}

// SampleUniform draws once from Uniform(min, max) without keeping the distribution.
func SampleUniform(rng rngenie.Source, min, max float64) (float64, error) {
	d, err := NewUniform(min, max)
	if err != nil {
		return 0, err
	}
	return d.Sample(rng)
}
