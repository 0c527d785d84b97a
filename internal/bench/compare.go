// Package bench measures per-call runtimes and estimates, by bootstrap resampling,
// how confident one can be that one random source is faster than another.
package bench

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"slices"

	"github.com/TomTonic/rngenie"
	"github.com/TomTonic/rngenie/internal/stats"
)

const MinimumDataPoints = 11

var ErrTooFewDataPoints = fmt.Errorf("need at least %d runtimes for each sample", MinimumDataPoints)

// Result is the confidence that sample A is faster than sample B by at least RelativeSpeedup.
type Result struct {
	RelativeSpeedup float64
	Confidence      float64
}

// Measure runs fn innerLoops times per repeat and returns, per repeat, the average
// nanoseconds per call. A GC runs before every repeat to keep collections out of the timing.
func Measure(repeats, innerLoops int, fn func()) []float64 {
	times := make([]float64, 0, repeats)
	for range repeats {
		runtime.GC()
		t1 := SampleTime()
		for range innerLoops {
			fn()
		}
		t2 := SampleTime()
		times = append(times, float64(DiffTimeStamps(t1, t2))/float64(innerLoops))
	}
	return times
}

// CompareRuntimes computes the confidence that sampleA is faster than sampleB by at least
// each of the given relative speedups (0.1 = 10% less time). reps bootstrap replicates are
// drawn from a Pcg32 seeded with seed, so the same inputs always give the same confidences.
// The results are sorted by speedup; with no speedups given, 0 is tested.
func CompareRuntimes(sampleA, sampleB []float64, relativeSpeedupsToTest []float64, reps uint64, seed uint64) ([]Result, error) {
	if len(sampleA) < MinimumDataPoints || len(sampleB) < MinimumDataPoints {
		return nil, fmt.Errorf("compare %d vs %d runtimes: %w", len(sampleA), len(sampleB), ErrTooFewDataPoints)
	}
	speedups := slices.Clone(relativeSpeedupsToTest)
	if len(speedups) == 0 {
		speedups = []float64{0.0}
	}
	slices.Sort(speedups)

	conf := BootstrapConfidence(sampleA, sampleB, speedups, reps, rngenie.NewPcg32(seed))

	result := make([]Result, 0, len(speedups))
	for _, s := range speedups {
		result = append(result, Result{RelativeSpeedup: s, Confidence: conf[s]})
	}
	return result, nil
}

// bootstrapSample draws len(xs) elements of xs with replacement.
func bootstrapSample(xs []float64, rng rngenie.Source) []float64 {
	n := len(xs)
	sample := make([]float64, n)
	for i := range n {
		j, err := rng.IntRange(0, n)
		if err != nil {
			panic(err) // n > 0 inside the loop
		}
		sample[i] = xs[j]
	}
	return sample
}

// BootstrapConfidence estimates, for every threshold t, the fraction of reps bootstrap
// replicates in which delta = 1 - median(A*)/median(B*) >= t.
//
// Replicate r resamples both A and B from rng.NewStreamFromSeed(r), so replicates are
// independent of each other and of the order in which they are computed.
//
// Numerical edge cases:
//   - reps == 0 maps every threshold to NaN.
//   - a NaN median yields delta = NaN, which meets no threshold.
//   - equal medians (including both zero or equal infinities) yield delta = 0.
//   - a median(B*) closer to zero than max(|median(B*)|*1e-12, SmallestNonzeroFloat64) is
//     replaced by that epsilon, keeping delta finite.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, rng *rngenie.Pcg32) map[float64]float64 {
	confidenceForThreshold := make(map[float64]float64, len(thresholds))

	if reps == 0 {
		for _, threshold := range thresholds {
			confidenceForThreshold[threshold] = math.NaN()
		}
		return confidenceForThreshold
	}

	counts := make(map[float64]uint64, len(thresholds))

	for r := range reps {
		replicate := rng.NewStreamFromSeed(r)
		medA := stats.QuickMedian(bootstrapSample(A, replicate))
		medB := stats.QuickMedian(bootstrapSample(B, replicate))

		delta := relativeDelta(medA, medB)
		for _, threshold := range thresholds {
			if delta >= threshold {
				counts[threshold]++
			}
		}
	}

	for _, threshold := range thresholds {
		confidenceForThreshold[threshold] = float64(counts[threshold]) / float64(reps)
	}
	return confidenceForThreshold
}

func relativeDelta(medA, medB float64) float64 {
	if math.IsNaN(medA) || math.IsNaN(medB) {
		return math.NaN()
	}
	if medA == medB {
		return 0.0
	}
	eps := math.Max(math.Abs(medB)*1e-12, math.SmallestNonzeroFloat64)
	denom := medB
	if math.Abs(medB) < eps {
		denom = eps
	}
	return 1.0 - medA/denom
}

// TimesFasterToSpeedup converts "x times faster" into the relative speedup CompareRuntimes
// expects: 1 - 1/x. Non-positive or NaN input yields NaN.
func TimesFasterToSpeedup(timesFaster float64) float64 {
	if !(timesFaster > 0) {
		return math.NaN()
	}
	return 1.0 - 1.0/timesFaster
}

var errEmpty = errors.New("empty runtime sample")

// MedianNanos returns the median of a runtime sample without modifying it.
// For an even count it is the mean of the two middle runtimes.
func MedianNanos(times []float64) (float64, error) {
	if len(times) == 0 {
		return 0, errEmpty
	}
	return stats.Median(times), nil
}

// Spread is the population mean and standard deviation of a runtime sample in nanoseconds.
type Spread struct {
	Mean, StdDev float64
}

func SpreadNanos(times []float64) (Spread, error) {
	if len(times) == 0 {
		return Spread{}, errEmpty
	}
	mean, _, stddev := stats.Statistics(times)
	return Spread{Mean: mean, StdDev: stddev}, nil
}
