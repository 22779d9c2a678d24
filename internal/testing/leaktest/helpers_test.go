package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithinTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	time.Sleep(20 * time.Millisecond)

	checker.Check(1)
	close(done)
}

func TestCheckNoGoroutineLeak_JoinedWorkers(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}
