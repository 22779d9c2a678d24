// Package leaktest checks tests for goroutines left running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
)

// GoroutineChecker compares the goroutine count before and after a test body
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines were left behind
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(4 * drainDelay)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(settleDelay)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves any goroutine running
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
