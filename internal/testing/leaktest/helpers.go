// Package leaktest catches goroutines left running by background services
// (schedulers, pollers, tick loops) after a test stops them.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const settleDelay = 20 * time.Millisecond

// GoroutineChecker records the goroutine count at creation and compares it later
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// after a grace period.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(500 * time.Millisecond)
	for {
		runtime.Gosched()
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
				g.before, runtime.NumGoroutine(), leaked, tolerance)
			return
		}
		time.Sleep(settleDelay)
	}
}

// CheckNoGoroutineLeak runs fn and verifies it left no goroutines behind
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
