package bench

import (
	"math"
	"sync"
)

const iterationsForCalibration = 1_000_000

var (
	precisionOnce sync.Once
	// precision of SampleTime on the runtime system in nanoseconds, -1 until calibrated
	precision = int64(-1)
)

// Precision returns the resolution of SampleTime on the runtime system in nanoseconds,
// calibrating it on first use. Typically 100ns on Windows and 20ns to 100ns elsewhere.
func Precision() int64 {
	precisionOnce.Do(func() {
		if precision == -1 {
			precision = calcMinTimeSample()
		}
	})
	return precision
}

func calcMinTimeSample() int64 {
	minDiff := int64(math.MaxInt64)
	for range iterationsForCalibration {
		t1 := SampleTime()
		t2 := SampleTime()
		diff := DiffTimeStamps(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}
