// Package dice parses and rolls RPG dice notation of the form {count}d{sides}[+/-modifier],
// for example "1d20", "3d6+2" or "2d10-1".
package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/TomTonic/rngenie"
	"github.com/samber/lo"
)

// Limits of a single roll. Rolls are materialized, so Count bounds memory; Sides and
// Modifier keep Sides+1 and the total far from int overflow.
const (
	MaxCount    = 10_000
	MaxSides    = 1 << 20
	MaxModifier = 1 << 30
)

var (
	ErrBadNotation = errors.New("bad dice notation")
	ErrInvalidSpec = errors.New("invalid dice spec")
)

var notationRx = regexp.MustCompile(`^\s*(\d+)d(\d+)([+-]\d+)?\s*$`)

// Spec describes a roll of Count dice with Sides sides each, plus Modifier.
type Spec struct {
	Count    int
	Sides    int
	Modifier int
}

// Result holds the individual rolls in order and their sum including the modifier.
type Result struct {
	Total    int
	Rolls    []int
	Modifier int
}

func Parse(s string) (Spec, error) {
	m := notationRx.FindStringSubmatch(s)
	if m == nil {
		return Spec{}, fmt.Errorf("%q: %w", s, ErrBadNotation)
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return Spec{}, fmt.Errorf("%q: count: %w", s, ErrBadNotation)
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Spec{}, fmt.Errorf("%q: sides: %w", s, ErrBadNotation)
	}
	modifier := 0
	if m[3] != "" {
		if modifier, err = strconv.Atoi(m[3]); err != nil {
			return Spec{}, fmt.Errorf("%q: modifier: %w", s, ErrBadNotation)
		}
	}
	spec := Spec{Count: count, Sides: sides, Modifier: modifier}
	if err := spec.Validate(); err != nil {
		return Spec{}, fmt.Errorf("%q: %w", s, err)
	}
	return spec, nil
}

// Validate checks 1 <= Count <= MaxCount, 2 <= Sides <= MaxSides and |Modifier| <= MaxModifier.
func (s Spec) Validate() error {
	if s.Count < 1 || s.Count > MaxCount {
		return fmt.Errorf("count %d not in [1, %d]: %w", s.Count, MaxCount, ErrInvalidSpec)
	}
	if s.Sides < 2 || s.Sides > MaxSides {
		return fmt.Errorf("sides %d not in [2, %d]: %w", s.Sides, MaxSides, ErrInvalidSpec)
	}
	if s.Modifier < -MaxModifier || s.Modifier > MaxModifier {
		return fmt.Errorf("modifier %d exceeds ±%d: %w", s.Modifier, MaxModifier, ErrInvalidSpec)
	}
	return nil
}

// String renders the canonical notation, e.g. "3d6+2".
func (s Spec) String() string {
	switch {
	case s.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", s.Count, s.Sides, s.Modifier)
	case s.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", s.Count, s.Sides, s.Modifier)
	}
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// Roll rolls every die with rng.IntRange(1, Sides+1), in order.
func (s Spec) Roll(rng rngenie.Source) (Result, error) {
	if rng == nil {
		return Result{}, rngenie.ErrNilSource
	}
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	rolls := make([]int, s.Count)
	for i := range rolls {
		v, err := rng.IntRange(1, s.Sides+1)
		if err != nil {
			return Result{}, err
		}
		rolls[i] = v
	}
	return Result{
		Total:    lo.Sum(rolls) + s.Modifier,
		Rolls:    rolls,
		Modifier: s.Modifier,
	}, nil
}

// Roll parses notation and rolls it with rng.
func Roll(notation string, rng rngenie.Source) (Result, error) {
	spec, err := Parse(notation)
	if err != nil {
		return Result{}, err
	}
	return spec.Roll(rng)
}
