package leaktest

import (
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	time.Sleep(20 * time.Millisecond)

	checker.Check(2)
	close(done)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		go func() {
			time.Sleep(50 * time.Millisecond)
		}()
	})
}

type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper()               {}
func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the settle timeout")
	}
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(0)
	if !rec.failed {
		t.Error("expected leak to be reported")
	}
}
