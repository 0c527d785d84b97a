package rngenie

import "fmt"

// Shuffle permutes s in place with the Fisher-Yates algorithm, drawing from rng.
// For a deterministic rng the permutation is reproducible.
// Callers that track a draw cursor over s must move it back to the start afterwards,
// since every element, consumed or not, has been moved.
func Shuffle[T any](rng Source, s []T) error {
	return ShuffleFrom(rng, s, 0)
}

// ShuffleFrom permutes only the suffix s[cursor:], leaving s[:cursor] untouched.
// cursor must lie within [0, len(s)].
func ShuffleFrom[T any](rng Source, s []T, cursor int) error {
	if rng == nil {
		return ErrNilSource
	}
	if cursor < 0 || cursor > len(s) {
		return fmt.Errorf("cursor %d for length %d: %w", cursor, len(s), ErrCursorRange)
	}
	for i := len(s) - 1; i > cursor; i-- {
		j, err := rng.IntRange(cursor, i+1)
		if err != nil {
			return err
		}
		if j != i {
			s[i], s[j] = s[j], s[i]
		}
	}
	return nil
}
