package mpmc

import "sync/atomic"

type MetricStorage struct {
	Depth atomic.Uint64 // Current items in queue
	Bytes atomic.Uint64 // Current byte size in queue (just data)

	PushAttempts   atomic.Uint64 // every Push call
	PushSuccess    atomic.Uint64 // CAS success
	PushCASRetries atomic.Uint64 // CAS failed (seq==pos but CAS failed)
	PushFull       atomic.Uint64 // push rejected, queue at capacity
	PushSeqAhead   atomic.Uint64 // producer raced ahead of slot sequence

	PopAttempts    atomic.Uint64 // every Pop call
	PopSuccess     atomic.Uint64 // CAS success
	PopCASRetries  atomic.Uint64 // CAS failed
	PopEmpty       atomic.Uint64 // pop found queue empty
	PopWaitSignals atomic.Uint64 // pops woken by the notEmpty channel
	PopSeqBehind   atomic.Uint64 // consumer raced behind slot sequence
}

// Point-in-time copy of queue counters
type MetricSnapshot struct {
	Depth          uint64
	Bytes          uint64
	PushAttempts   uint64
	PushSuccess    uint64
	PushFull       uint64
	PopAttempts    uint64
	PopSuccess     uint64
	PopWaitSignals uint64
}

// Aggregates counters across the read/write queue views (they differ mid-migration)
func (container *Queue[T]) Snapshot() (snap MetricSnapshot) {
	queues := []*QueueInst[T]{container.ActiveWrite.Load()}
	readQueue := container.ActiveRead.Load()
	// If different, include read queue for aggregation
	if readQueue != queues[0] {
		queues = append(queues, readQueue)
	}

	for _, q := range queues {
		snap.Depth += q.Metrics.Depth.Load()
		snap.Bytes += q.Metrics.Bytes.Load()
		snap.PushAttempts += q.Metrics.PushAttempts.Load()
		snap.PushSuccess += q.Metrics.PushSuccess.Load()
		snap.PushFull += q.Metrics.PushFull.Load()
		snap.PopAttempts += q.Metrics.PopAttempts.Load()
		snap.PopSuccess += q.Metrics.PopSuccess.Load()
		snap.PopWaitSignals += q.Metrics.PopWaitSignals.Load()
	}
	return
}
