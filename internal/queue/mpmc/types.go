package mpmc

import "sync/atomic"

type slot[T any] struct {
	seq  atomic.Uint64
	data T
}

// One fixed-capacity ring. Producers claim tail positions, consumers
// claim head positions, per-slot sequence numbers arbitrate both.
type QueueInst[T any] struct {
	Namespace []string
	Size      int
	Metrics   *MetricStorage

	slots    []slot[T]
	mask     atomic.Uint64
	head     atomic.Uint64
	tail     atomic.Uint64
	notEmpty chan struct{}
	draining atomic.Bool // set during migration, producers must reload
}

// Split read/write views over ring instances. Both pointers reference
// the same ring except mid-migration, when writes land on the
// replacement while reads finish draining the old one.
type Queue[T any] struct {
	ActiveWrite atomic.Pointer[QueueInst[T]]
	ActiveRead  atomic.Pointer[QueueInst[T]]

	migrateCh   atomic.Value // chan struct{}, wakes a consumer to flip the read pointer
	minimumSize int          // lower capacity bound for scaling
	maximumSize int          // upper capacity bound for scaling
}
