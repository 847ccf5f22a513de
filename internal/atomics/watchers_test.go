package atomics

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWaitUntilZero(t *testing.T) {
	t.Run("starts at zero", func(t *testing.T) {
		var counter atomic.Uint64

		reached, last := WaitUntilZero(&counter, 300*time.Millisecond)
		if !reached {
			t.Fatalf("expected zero to be reached, last observed %d", last)
		}
		if last != 0 {
			t.Fatalf("expected last observed value 0, got %d", last)
		}
	})

	t.Run("drains concurrently", func(t *testing.T) {
		var counter atomic.Uint64
		counter.Store(8)

		go func() {
			for counter.Load() > 0 {
				counter.Add(^uint64(0)) // decrement
				time.Sleep(20 * time.Millisecond)
			}
		}()

		reached, last := WaitUntilZero(&counter, 3*time.Second)
		if !reached {
			t.Fatalf("expected zero to be reached, last observed %d", last)
		}
	})

	t.Run("times out on stuck counter", func(t *testing.T) {
		var counter atomic.Uint64
		counter.Store(7)

		start := time.Now()
		reached, last := WaitUntilZero(&counter, 250*time.Millisecond)
		if reached {
			t.Fatalf("expected timeout, got success")
		}
		if last != 7 {
			t.Fatalf("expected last observed value 7, got %d", last)
		}
		if time.Since(start) < 250*time.Millisecond {
			t.Fatalf("returned before the timeout elapsed")
		}
	})
}
