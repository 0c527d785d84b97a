// Package stats holds the small set of summary statistics used to check and report
// sampler output. It is not a statistics framework.
package stats

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Median returns the middle value of data, or the mean of the two middle values for an
// even count. It sorts a copy, data is left as is. Empty data yields 0.
func Median(data []float64) float64 {
	l := len(data)
	if l == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(data))
	if l%2 == 0 {
		return (sorted[l/2-1] + sorted[l/2]) / 2
	}
	return sorted[l/2]
}

// Statistics returns the population mean, variance and standard deviation of data.
// For empty data it returns (0, -1, -1).
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}
	var s Summary
	for _, x := range data {
		s.Add(x)
	}
	variance = s.m2 / float64(s.N)
	return s.mean, variance, math.Sqrt(variance)
}

// Summary accumulates count, mean and variance of a stream of values without storing them
// (Welford's online algorithm).
type Summary struct {
	N        int
	mean, m2 float64
	Min, Max float64
}

func (s *Summary) Add(x float64) {
	s.N++
	if s.N == 1 {
		s.Min, s.Max = x, x
	} else {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	delta := x - s.mean
	s.mean += delta / float64(s.N)
	s.m2 += delta * (x - s.mean)
}

func (s *Summary) Mean() float64 { return s.mean }

// Variance is the unbiased sample variance, 0 for fewer than two values.
func (s *Summary) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	return s.m2 / float64(s.N-1)
}

func (s *Summary) StdDev() float64 { return math.Sqrt(s.Variance()) }

func FloatsEqualWithTolerance(f1, f2, tolerancePercentage float64) bool {
	absTol1 := math.Abs(f1 * tolerancePercentage / 100)
	if f1-absTol1 <= f2 && f1+absTol1 >= f2 {
		return true
	}
	absTol2 := math.Abs(f2 * tolerancePercentage / 100)
	if f2-absTol2 <= f1 && f2+absTol2 >= f1 {
		return true
	}
	return false
}

// Partition rearranges xs around a pivot and returns its final index
func partition(xs []float64, low, high uint64) uint64 {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// Quickselect finds the k-th smallest element (0-based index) in expected O(n) time.
// Pivots come from the math/rand/v2 global generator; the result does not depend on them.
// see https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k uint64) float64 {
	low, high := uint64(0), uint64(len(xs)-1)
	for low <= high {
		pivotIndex := rand.Uint64N(high-low+1) + low
		xs[pivotIndex], xs[high] = xs[high], xs[pivotIndex] // move pivot to end
		p := partition(xs, low, high)
		if p == k {
			return xs[p]
		} else if p < k {
			low = p + 1
		} else {
			high = p - 1
		}
	}
	return xs[k] // fallback
}

// QuickMedian returns the median in expected O(n) time.
// In case of an odd number of elements, it returns the middle one.
// In case of an even number of elements, it returns the higher of the two middle ones.
// For empty input it returns NaN.
// Note: This function modifies the input slice. To avoid this, pass a copy of the slice.
func QuickMedian(xs []float64) float64 {
	n := uint64(len(xs))
	if n == 0 {
		return math.NaN()
	}
	return quickselect(xs, n/2)
}
