package mpmc

import (
	"context"
	"udpsyslog/internal/global"
	"udpsyslog/internal/logctx"

	"github.com/pbnjay/memory"
)

// Occupancy watermarks driving capacity changes, in percent
const (
	growWatermark   = 90
	shrinkWatermark = 2
)

// Reconsiders queue capacity based on current occupancy.
// Growth doubles capacity and is skipped when the estimated new
// footprint would not fit in free system memory, shrink halves it.
// Both directions respect the configured min/max bounds.
func (container *Queue[T]) ScaleCapacity(ctx context.Context) {
	queue := container.ActiveWrite.Load()
	capacity := queue.Size
	occupancy := float64(queue.Metrics.Depth.Load()) / float64(capacity) * 100

	var target int
	switch {
	case occupancy >= growWatermark:
		target = nextPowerOfTwo(capacity + 1)
	case occupancy <= shrinkWatermark:
		target = prevPowerOfTwo(capacity)
	default:
		return
	}

	if target < container.minimumSize || target > container.maximumSize {
		return
	}

	if target > capacity {
		// Estimate the grown queue footprint from current queued bytes
		queuedBytes := queue.Metrics.Bytes.Load()
		bytesPerSlot := queuedBytes / uint64(capacity)
		projected := uint64(target) * bytesPerSlot

		freeMem := memory.FreeMemory()
		if freeMem > 0 && projected > freeMem {
			return
		}
	}

	err := container.mutateSize(uint64(target))
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
			"Failed to scale queue capacity: %v\n", err)
		return
	}
	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
		"Scaled queue from %d to %d capacity\n", capacity, target)
}

func nextPowerOfTwo(start int) (next int) {
	if start <= 1 {
		next = 1
		return
	}
	start--
	start |= start >> 1
	start |= start >> 2
	start |= start >> 4
	start |= start >> 8
	start |= start >> 16
	start |= start >> 32
	next = start + 1
	return
}

func prevPowerOfTwo(start int) (prev int) {
	if start == 0 {
		return
	}
	prev = nextPowerOfTwo(start) >> 1
	return
}
