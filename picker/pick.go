package picker

import (
	"math"

	"github.com/TomTonic/rngenie"
	"github.com/samber/lo"
)

// PickOne selects one element of items uniformly.
func PickOne[T any](rng rngenie.Source, items []T) (T, error) {
	var zero T
	if rng == nil {
		return zero, rngenie.ErrNilSource
	}
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	i, err := rng.IntRange(0, len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// PickWeighted makes a one-off weighted selection without building a Weighted picker.
// Entries with non-positive or non-finite weights are ignored; ErrNoValidWeight is
// returned when none remain, ErrTotalOverflow when their sum is not finite.
func PickWeighted[T any](rng rngenie.Source, entries []Entry[T]) (T, error) {
	var zero T
	if rng == nil {
		return zero, rngenie.ErrNilSource
	}
	valid := lo.Filter(entries, func(e Entry[T], _ int) bool {
		return validWeight(e.Weight)
	})
	if len(valid) == 0 {
		return zero, ErrNoValidWeight
	}
	total := lo.SumBy(valid, func(e Entry[T]) float64 {
		return e.Weight
	})
	if math.IsInf(total, 1) {
		return zero, ErrTotalOverflow
	}

	r := rng.Float64() * total
	acc := 0.0
	for _, e := range valid {
		acc += e.Weight
		if r < acc {
			return e.Item, nil
		}
	}
	return valid[len(valid)-1].Item, nil
}
