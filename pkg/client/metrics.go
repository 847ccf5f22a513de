package client

import "sync/atomic"

type MetricStorage struct {
	TotalPackets       atomic.Uint64
	SumPacketBytes     atomic.Uint64
	MaxPacketBytes     atomic.Uint64
	DroppedWrites      atomic.Uint64 // socket write failures, swallowed
	DroppedSubmissions atomic.Uint64 // inbox full or sender stopping
}

// Point-in-time copy of sender counters
type MetricSnapshot struct {
	TotalPackets       uint64
	SumPacketBytes     uint64
	MaxPacketBytes     uint64
	DroppedWrites      uint64
	DroppedSubmissions uint64
}

func (sender *Sender) MetricsSnapshot() (snap MetricSnapshot) {
	snap = MetricSnapshot{
		TotalPackets:       sender.Metrics.TotalPackets.Load(),
		SumPacketBytes:     sender.Metrics.SumPacketBytes.Load(),
		MaxPacketBytes:     sender.Metrics.MaxPacketBytes.Load(),
		DroppedWrites:      sender.Metrics.DroppedWrites.Load(),
		DroppedSubmissions: sender.Metrics.DroppedSubmissions.Load(),
	}
	return
}

// Submissions lost because no sender was registered at the time
func DroppedWithoutSender() (count uint64) {
	count = droppedNoSender.Load()
	return
}
