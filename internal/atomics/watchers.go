package atomics

import (
	"sync/atomic"
	"time"
)

// Polls the counter until it holds zero across a few consecutive reads
// or the timeout elapses. A single zero read is not trusted, producers
// may still be mid-increment. Returns the last observed value.
func WaitUntilZero(value *atomic.Uint64, timeout time.Duration) (reachedZero bool, lastValue uint64) {
	const settleReads = 3
	const maxBackoff = time.Second

	backoff := 50 * time.Millisecond
	deadline := time.Now().Add(timeout)

	streak := 0
	for {
		lastValue = value.Load()
		if lastValue == 0 {
			streak++
			if streak >= settleReads {
				reachedZero = true
				return
			}
		} else {
			streak = 0
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}

		sleep := backoff
		if sleep > remaining {
			sleep = remaining
		}
		time.Sleep(sleep)

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}
