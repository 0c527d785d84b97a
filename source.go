package rngenie

import (
	"errors"
	"fmt"
	"math"
)

// Source is the capability every sampler, picker and shuffle in this module depends on.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// IntRange returns a uniformly distributed integer x with minInclusive <= x < maxExclusive.
	// It returns ErrEmptyRange when maxExclusive <= minInclusive.
	IntRange(minInclusive, maxExclusive int) (int, error)
	// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
	Float64() float64
	// Fill overwrites buf with random bytes.
	Fill(buf []byte)
	// StateHash returns a fingerprint of the internal state for debugging.
	// Sources without a stable state return 0.
	StateHash() uint64
}

var (
	ErrNilSource     = errors.New("random source must not be nil")
	ErrEmptyRange    = errors.New("maxExclusive must be greater than minInclusive")
	ErrRangeTooLarge = errors.New("range exceeds 2^32-1 values")
	ErrShortState    = errors.New("serialized state is too short")
	ErrCursorRange   = errors.New("cursor outside of sequence")
)

// span validates [minInclusive, maxExclusive) and returns its width as a uint32.
func span(minInclusive, maxExclusive int) (uint32, error) {
	if maxExclusive <= minInclusive {
		return 0, fmt.Errorf("[%d, %d): %w", minInclusive, maxExclusive, ErrEmptyRange)
	}
	width := uint64(maxExclusive) - uint64(minInclusive)
	if width > math.MaxUint32 {
		return 0, fmt.Errorf("[%d, %d): %w", minInclusive, maxExclusive, ErrRangeTooLarge)
	}
	return uint32(width), nil
}

var (
	_ Source = (*Pcg32)(nil)
	_ Source = (*CryptoSource)(nil)
	_ Source = (*SystemSource)(nil)
)
