package rngenie

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lowest always picks the lowest index it is offered.
type lowest struct{}

func (lowest) IntRange(minInclusive, maxExclusive int) (int, error) {
	if maxExclusive <= minInclusive {
		return 0, ErrEmptyRange
	}
	return minInclusive, nil
}
func (lowest) Float64() float64  { return 0 }
func (lowest) Fill([]byte)       {}
func (lowest) StateHash() uint64 { return 0 }

var errBroken = errors.New("broken source")

type broken struct{ lowest }

func (broken) IntRange(int, int) (int, error) { return 0, errBroken }

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := NewPcg32(17)
	for _, n := range []int{0, 1, 2, 10, 52, 1000} {
		s := sequence(n)
		require.NoError(t, Shuffle(rng, s))
		sorted := slices.Clone(s)
		slices.Sort(sorted)
		assert.Equal(t, sequence(n), sorted, "length %d", n)
	}
}

func TestShuffleIsReproducible(t *testing.T) {
	a, b := sequence(100), sequence(100)
	require.NoError(t, Shuffle(NewPcg32(8), a))
	require.NoError(t, Shuffle(NewPcg32(8), b))
	assert.Equal(t, a, b)
	assert.NotEqual(t, sequence(100), a)
}

func TestShuffleWithScriptedSource(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	require.NoError(t, Shuffle(lowest{}, s))
	assert.Equal(t, []string{"b", "c", "d", "a"}, s)
}

func TestShuffleFromKeepsPrefix(t *testing.T) {
	rng := NewPcg32(3)
	for cursor := 0; cursor <= 10; cursor++ {
		s := sequence(10)
		require.NoError(t, ShuffleFrom(rng, s, cursor))
		assert.Equal(t, sequence(cursor), s[:cursor], "cursor %d", cursor)
		suffix := slices.Clone(s[cursor:])
		slices.Sort(suffix)
		assert.Equal(t, sequence(10)[cursor:], suffix, "cursor %d", cursor)
	}
}

func TestShuffleErrors(t *testing.T) {
	s := sequence(5)
	assert.ErrorIs(t, Shuffle[int](nil, s), ErrNilSource)
	assert.ErrorIs(t, ShuffleFrom(NewPcg32(1), s, -1), ErrCursorRange)
	assert.ErrorIs(t, ShuffleFrom(NewPcg32(1), s, 6), ErrCursorRange)
	assert.Equal(t, sequence(5), s)

	assert.ErrorIs(t, Shuffle(broken{}, s), errBroken)
	assert.NoError(t, Shuffle(broken{}, s[:1]), "nothing to draw for a single element")
}

// TestShuffleUniformity checks that all 24 orderings of four elements are equally likely.
// Note: this is a probabilistic test, occasional failures may occur by chance.
func TestShuffleUniformity(t *testing.T) {
	const samples = 240_000
	const alpha = 0.001
	rng := NewPcg32(2718)
	index := map[string]int{}
	counts := make([]int, 24)
	for range samples {
		s := sequence(4)
		require.NoError(t, Shuffle(rng, s))
		key := fmt.Sprint(s)
		if _, ok := index[key]; !ok {
			index[key] = len(index)
		}
		counts[index[key]]++
	}
	require.Len(t, index, 24)
	x2 := chiSquare(counts, samples/24.0)
	p := chiSquarePValue(x2, 23)
	if p < alpha {
		t.Fatalf("χ² test result → H0 rejected (orderings not uniform at α=%.3f): χ²=%.3f p=%.3f", alpha, x2, p)
	}
}
