// Package picker selects items uniformly or in proportion to their weights.
//
// Results are reproducible when driven by a deterministic source such as rngenie.Pcg32.
package picker

import (
	"errors"
	"fmt"
	"math"

	"github.com/TomTonic/rngenie"
)

var (
	ErrInvalidWeight = errors.New("weight must be a finite number > 0")
	ErrEmpty         = errors.New("no items to pick from")
	ErrNoValidWeight = errors.New("all weights are non-positive or not finite")
	// ErrTotalOverflow wraps ErrInvalidWeight: the weight is finite but the sum is not.
	ErrTotalOverflow = fmt.Errorf("total weight overflows: %w", ErrInvalidWeight)
)

// Entry is an item with its relative weight.
type Entry[T any] struct {
	Item   T
	Weight float64
}

// Weighted is a discrete distribution over a growable, insertion-ordered set of items.
// Weights need not be normalized. The zero value is an empty picker ready to use.
type Weighted[T any] struct {
	entries []Entry[T]
	total   float64 // sum of all entry weights
}

func New[T any]() *Weighted[T] {
	return &Weighted[T]{}
}

// Add appends item with the given weight and returns the picker for chaining.
// A weight that would make the total overflow is rejected and the picker is left unchanged.
func (w *Weighted[T]) Add(item T, weight float64) (*Weighted[T], error) {
	if !validWeight(weight) {
		return w, fmt.Errorf("add weight %v: %w", weight, ErrInvalidWeight)
	}
	if math.IsInf(w.total+weight, 1) {
		return w, fmt.Errorf("add weight %v to total %v: %w", weight, w.total, ErrTotalOverflow)
	}
	w.entries = append(w.entries, Entry[T]{Item: item, Weight: weight})
	w.total += weight
	return w, nil
}

// MustAdd is like Add but panics on an invalid weight. It is meant for weights
// written as literals.
func (w *Weighted[T]) MustAdd(item T, weight float64) *Weighted[T] {
	if _, err := w.Add(item, weight); err != nil {
		panic(err)
	}
	return w
}

// Clear removes all items.
func (w *Weighted[T]) Clear() {
	w.entries = nil
	w.total = 0
}

func (w *Weighted[T]) Len() int { return len(w.entries) }

func (w *Weighted[T]) TotalWeight() float64 { return w.total }

// One draws a single item; each item is chosen with probability weight/TotalWeight.
// When floating-point rounding lets the draw run past the accumulated weights,
// the last added item is returned.
func (w *Weighted[T]) One(rng rngenie.Source) (T, error) {
	var zero T
	if rng == nil {
		return zero, rngenie.ErrNilSource
	}
	if len(w.entries) == 0 {
		return zero, ErrEmpty
	}

	r := rng.Float64() * w.total
	acc := 0.0
	for _, e := range w.entries {
		acc += e.Weight
		if r < acc {
			return e.Item, nil
		}
	}
	return w.entries[len(w.entries)-1].Item, nil
}

func validWeight(weight float64) bool {
	return weight > 0 && !math.IsInf(weight, 0) // NaN fails weight > 0
}
