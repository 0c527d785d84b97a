package bench

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TomTonic/rngenie/internal/stats"
)

func TestSampleTime(t *testing.T) {
	voidvar := int64(17)
	t1 := SampleTime()
	_ = SampleTime()
	t1a := time.Now()
	time.Sleep(1*time.Second + 30*time.Millisecond)
	t2 := SampleTime() // one sleep, one SampleTime() call, and one time.Now() call in between the two SampleTime() calls
	voidvar ^= int64(time.Now().UnixNano())
	t2a := time.Now()

	diff := DiffTimeStamps(t1, t2)
	diffa := t2a.Sub(t1a)
	aboutEqual := stats.FloatsEqualWithTolerance(float64(diff), float64(diffa), 0.1) // both in nanoseconds, at most 0.1% apart
	assert.True(t, aboutEqual, "values diverge to much: %v vs. %v (ignore:%d)", time.Duration(diff), diffa, voidvar)
	assert.Negative(t, DiffTimeStamps(t2, t1))
}

func TestCalcMinTimeSample(t *testing.T) {
	minDiff := calcMinTimeSample()
	t.Logf("calcMinTimeSample result: %d ns", minDiff)
	assert.True(t, minDiff >= 1, "calcMinTimeSample returned too small value")
	assert.True(t, minDiff < 1_000_000, "calcMinTimeSample returned too large value")
	if runtime.GOOS == "windows" {
		assert.True(t, minDiff == 100, "calcMinTimeSample should return 100 on Windows")
	}
}

func TestPrecisionIsCached(t *testing.T) {
	p1 := Precision()
	p2 := Precision()
	assert.Equal(t, p1, p2, "Precision should return a cached value on subsequent calls")
	assert.Positive(t, p1)
}

func TestMeasure(t *testing.T) {
	calls := 0
	times := Measure(MinimumDataPoints, 1000, func() { calls++ })
	assert.Len(t, times, MinimumDataPoints)
	assert.Equal(t, MinimumDataPoints*1000, calls)
	for _, ns := range times {
		assert.GreaterOrEqual(t, ns, 0.0)
	}
}
