//go:build windows

package bench

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// TimeStamp is a relative timestamp with the highest precision available on the runtime system.
// TimeStamps are only comparable within one run of a program on one machine.
type TimeStamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// SampleTime returns the current performance counter value.
func SampleTime() TimeStamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// DiffTimeStamps returns the nanoseconds from earlier to later, negative if later is earlier.
func DiffTimeStamps(earlier, later TimeStamp) int64 {
	result := later - earlier
	result *= int64(1_000_000_000) // ns per sec
	result /= qpcFrequency
	return result
}
