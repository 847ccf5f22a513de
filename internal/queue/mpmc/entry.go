// Lock-free multi-producer multi-consumer ring queue.
// Capacity is always a power of two and can change live, a replacement
// ring is swapped in for writers while readers drain the old one.
package mpmc

import (
	"fmt"
	"udpsyslog/internal/global"
)

func New[T any](namespace []string, initialCapacity uint64, minCapacity, maxCapacity int) (new *Queue[T], err error) {
	ring, err := newQueueInst[T](namespace, initialCapacity)
	if err != nil {
		return
	}

	new = &Queue[T]{
		minimumSize: minCapacity,
		maximumSize: maxCapacity,
	}
	new.ActiveRead.Store(ring)
	new.ActiveWrite.Store(ring)
	new.migrateCh.Store(make(chan struct{}, 1))
	return
}

func newQueueInst[T any](namespace []string, capacity uint64) (ring *QueueInst[T], err error) {
	if capacity < 2 {
		err = fmt.Errorf("capacity must be greater than or equal to 2")
		return
	}
	if capacity&(capacity-1) != 0 {
		err = fmt.Errorf("capacity must be a power of two")
		return
	}

	slots := make([]slot[T], capacity)
	for i := range slots {
		slots[i].seq.Store(uint64(i))
	}

	ns := make([]string, 0, len(namespace)+1)
	ns = append(ns, namespace...)
	ns = append(ns, global.NSQueue)

	ring = &QueueInst[T]{
		Namespace: ns,
		Size:      int(capacity),
		Metrics:   &MetricStorage{},
		slots:     slots,
		notEmpty:  make(chan struct{}, 1),
	}
	ring.mask.Store(capacity - 1)
	return
}

// Allocates a replacement ring and redirects producers to it.
// Consumers complete the migration once the old ring is empty.
func (q *Queue[T]) mutateSize(newCapacity uint64) (err error) {
	// One migration at a time
	if q.ActiveRead.Load() != q.ActiveWrite.Load() {
		return
	}

	old := q.ActiveWrite.Load()

	// newQueueInst re-appends the queue namespace component
	ns := old.Namespace[:len(old.Namespace)-1]

	ring, err := newQueueInst[T](ns, newCapacity)
	if err != nil {
		return
	}

	q.migrateCh.Store(make(chan struct{}, 1))
	old.draining.Store(true)
	q.ActiveWrite.Store(ring)
	return
}
