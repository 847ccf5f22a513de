// Shared helpers for contended atomic counters
package atomics

import (
	"sync/atomic"
	"time"
)

// Decrements the counter by value using CAS, clamping at zero.
// Gives up after maxRetries contended swaps, sleeping with doubling
// backoff between attempts.
func Subtract(source *atomic.Uint64, value uint64, maxRetries int) (success bool) {
	backoff := 10 * time.Microsecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		current := source.Load()
		if current == 0 {
			success = true
			return
		}

		next := uint64(0)
		if current > value {
			next = current - value
		}

		if source.CompareAndSwap(current, next) {
			success = true
			return
		}

		// Lost the swap to another writer
		time.Sleep(backoff)
		backoff *= 2
	}
	return
}
