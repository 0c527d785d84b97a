// Package dist transforms the uniform output of a rngenie.Source into other distributions.
//
// Uniform and Triangular are immutable after construction and may be shared.
// Normal caches the second Box-Muller variate on the instance, so each goroutine
// needs its own Normal as well as its own Source.
package dist

import (
	"errors"
	"fmt"
	"math"

	"github.com/TomTonic/rngenie"
)

// Distribution draws variates of type T from a Source.
type Distribution[T any] interface {
	// Sample returns rngenie.ErrNilSource when rng is nil.
	Sample(rng rngenie.Source) (T, error)
}

var ErrInvalidParameter = errors.New("invalid distribution parameter")

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidParameter)
}

// unit clamps an out-of-contract unit draw into [0, 1).
func unit(u float64) float64 {
	if u >= 1.0 {
		return math.Nextafter(1.0, 0.0)
	}
	if !(u >= 0.0) { // also catches NaN
		return 0.0
	}
	return u
}

var (
	_ Distribution[float64] = (*Uniform)(nil)
	_ Distribution[float64] = (*Triangular)(nil)
	_ Distribution[float64] = (*Normal)(nil)
)
