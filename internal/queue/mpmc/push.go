package mpmc

import (
	"context"
	"runtime"
	"time"
)

// Poll wrapper around Push, blocks until the element is accepted or
// the context is canceled. Size feeds the queued-bytes metric.
func (q *Queue[T]) PushBlocking(ctx context.Context, value T, size int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if q.Push(value) {
			q.ActiveWrite.Load().Metrics.Bytes.Add(uint64(size))
			return
		}

		time.Sleep(10 * time.Millisecond)
	}
}

// Attempts to enqueue without blocking, false means the ring is full
func (q *Queue[T]) Push(value T) (success bool) {
	ring := q.ActiveWrite.Load()
	for ring.draining.Load() {
		// Producers have moved to a replacement ring, reload
		runtime.Gosched()
		ring = q.ActiveWrite.Load()
	}

	ring.Metrics.PushAttempts.Add(1)

	for {
		pos := ring.tail.Load()
		s := &ring.slots[pos&ring.mask.Load()]
		seq := s.seq.Load()

		switch {
		case seq == pos:
			if !ring.tail.CompareAndSwap(pos, pos+1) {
				ring.Metrics.PushCASRetries.Add(1)
				continue
			}
			ring.Metrics.PushSuccess.Add(1)

			s.data = value
			s.seq.Store(pos + 1)
			ring.Metrics.Depth.Add(1)

			// Non-blocking consumer wakeup
			select {
			case ring.notEmpty <- struct{}{}:
			default:
			}

			success = true
			return

		case seq < pos:
			ring.Metrics.PushFull.Add(1)
			return

		default:
			// Slot claimed but not yet published by another producer
			ring.Metrics.PushSeqAhead.Add(1)
			runtime.Gosched()
		}
	}
}
