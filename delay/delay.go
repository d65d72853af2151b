// Package delay is a calibrated busy-wait. It is deliberately approximate:
// wall time = iterations * CyclesPerIteration / core clock. Callers that
// need accurate timing belong on a hardware timer peripheral, not here.
package delay

import (
	"sync/atomic"
	"time"
)

// CyclesPerIteration is the measured cost of one Spin iteration on the
// Cortex-M0+ builds this calibration was taken from.
const CyclesPerIteration = 5

// BootClockHz is the RP2040 core clock at cold boot, before any clock
// setup: the 12 MHz crystal path.
const BootClockHz = 12_000_000

// sink gives the loop body an observable side effect so the optimizer
// cannot elide the loop. The MCU equivalent is a volatile store.
var sink uint32

// Spin blocks for the given iteration count. No cancellation: this models
// a bare-metal environment with no facility to interrupt a busy loop.
func Spin(iterations uint32) {
	for i := uint32(0); i < iterations; i++ {
		atomic.StoreUint32(&sink, i)
	}
}

// Wall converts an iteration count to approximate wall time at the given
// core clock.
func Wall(iterations uint32, coreClockHz uint32) time.Duration {
	if coreClockHz == 0 {
		coreClockHz = BootClockHz
	}
	ns := uint64(iterations) * CyclesPerIteration * 1_000_000_000 / uint64(coreClockHz)
	return time.Duration(ns)
}

// Iterations converts a wanted wall time to a Spin count at the given core
// clock. The result rounds down; sub-iteration requests spin zero times.
func Iterations(d time.Duration, coreClockHz uint32) uint32 {
	if d <= 0 {
		return 0
	}
	if coreClockHz == 0 {
		coreClockHz = BootClockHz
	}
	return uint32(uint64(d.Nanoseconds()) * uint64(coreClockHz) / (CyclesPerIteration * 1_000_000_000))
}
