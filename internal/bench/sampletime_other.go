//go:build !windows

package bench

import "time"

// TimeStamp is a relative timestamp with the highest precision available on the runtime system.
// TimeStamps are only comparable within one run of a program on one machine.
type TimeStamp = time.Time

// SampleTime returns the current TimeStamp. time.Now carries a monotonic reading.
func SampleTime() TimeStamp {
	return time.Now()
}

// DiffTimeStamps returns the nanoseconds from earlier to later, negative if later is earlier.
func DiffTimeStamps(earlier, later TimeStamp) int64 {
	return later.Sub(earlier).Nanoseconds()
}
