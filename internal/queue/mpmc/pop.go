package mpmc

import (
	"context"
	"time"
	"udpsyslog/internal/atomics"
	"udpsyslog/internal/global"
	"udpsyslog/internal/logctx"
)

// Dequeues one element, blocking until data arrives or the context is
// canceled. False only on cancellation.
func (q *Queue[T]) Pop(ctx context.Context) (out T, success bool) {
	for {
		ring := q.ActiveRead.Load()
		ring.Metrics.PopAttempts.Add(1)

		pos := ring.head.Load()
		s := &ring.slots[pos&ring.mask.Load()]
		seq := s.seq.Load()

		switch {
		case seq == pos+1:
			if !ring.head.CompareAndSwap(pos, pos+1) {
				ring.Metrics.PopCASRetries.Add(1)
				continue
			}

			out = s.data
			s.seq.Store(pos + ring.mask.Load() + 1)

			ring.Metrics.PopSuccess.Add(1)
			ok := atomics.Subtract(&ring.Metrics.Depth, 1, 4)
			if !ok {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
					"failed to decrement queue depth metric after successful pop\n")
			}

			// Last element left a draining ring, wake a consumer to
			// flip the read pointer
			if ring.draining.Load() && ring.head.Load() == ring.tail.Load() {
				signal := q.migrateCh.Load().(chan struct{})
				select {
				case signal <- struct{}{}:
				default:
				}
			}

			success = true
			return

		case seq < pos+1:
			// Ring empty, wait for a producer or a migration flip
			ring.Metrics.PopEmpty.Add(1)

			// A fully drained ring mid-migration never gets
			// signaled again, flip to the replacement immediately
			if ring.draining.Load() && ring.head.Load() == ring.tail.Load() {
				q.ActiveRead.Store(q.ActiveWrite.Load())
				continue
			}

			signal := q.migrateCh.Load().(chan struct{})
			select {
			case <-ctx.Done():
				return
			case <-ring.notEmpty:
				ring.Metrics.PopWaitSignals.Add(1)
			case <-signal:
				q.ActiveRead.Store(q.ActiveWrite.Load())
			case <-time.After(100 * time.Millisecond):
				// Reload pointers, writes may have moved to a
				// replacement ring while this consumer was parked
			}

		default:
			// Another consumer is mid-claim on this slot
			ring.Metrics.PopSeqBehind.Add(1)
		}
	}
}
