// Serving loop for the sender worker, the only goroutine that ever
// touches the UDP socket
package client

import (
	"context"
	"runtime/debug"
	"time"
	"udpsyslog/internal/atomics"
	"udpsyslog/internal/global"
	"udpsyslog/internal/logctx"
	"udpsyslog/pkg/protocol"
)

// Drains the inbox one request at a time until a stop request arrives
// or the context is canceled. Per-caller submission order is preserved
// because requests are processed strictly one at a time.
func (sender *Sender) run(ctx context.Context) {
	defer close(sender.stopped)

	for {
		select {
		case <-ctx.Done():
			sender.conn.Close()
			return
		default:
		}

		exit := func() (exit bool) {
			// Record panics and continue working
			defer func() {
				if fatalError := recover(); fatalError != nil {
					stack := debug.Stack()
					logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
						"panic in sender worker thread: %v\n%s", fatalError, stack)
				}
			}()

			req, ok := sender.inbox.Pop(ctx)
			if !ok {
				// Context canceled before a stop request arrived
				sender.conn.Close()
				exit = true
				return
			}

			switch req.kind {
			case sendRequest:
				// Subtract data size from sum
				atomics.Subtract(&sender.inbox.ActiveRead.Load().Metrics.Bytes,
					uint64(len(req.message)+len(req.body)), 4)
				sender.transmit(ctx, req)
			case stopRequest:
				// Socket released before the acknowledgment, the stop
				// caller may reuse the registration immediately after
				sender.conn.Close()
				close(req.ack)
				exit = true
			default:
				// Unknown request shapes are ignored, the loop continues
				logctx.LogEvent(ctx, global.VerbosityDebug, global.WarnLog,
					"Ignoring unknown request kind %d\n", req.kind)
			}
			return
		}()
		if exit {
			return
		}
	}
}

// Encodes one request and issues a fire-and-forget UDP write.
// Write failures are swallowed, only counted, a dropped packet must
// never destabilize the caller.
func (sender *Sender) transmit(ctx context.Context, req request) {
	priority := req.severity
	if req.hasFacility {
		priority = protocol.Priority(req.facility, req.severity)
	}

	var packet []byte
	if req.rawBody {
		packet = protocol.BuildRawPacket(priority, req.tag, req.body)
	} else {
		packet = protocol.BuildPacket(priority, req.tag, req.message)
	}

	_, err := sender.conn.WriteTo(packet, sender.dest)
	if err != nil {
		sender.Metrics.DroppedWrites.Add(1)
		logctx.LogEvent(ctx, global.VerbosityData, global.WarnLog,
			"Failed to send packet: %v\n", err)
		return
	}

	pktLengthB := uint64(len(packet))
	sender.Metrics.SumPacketBytes.Add(pktLengthB)

	maxSeenPktBytes := sender.Metrics.MaxPacketBytes.Load()
	if pktLengthB > maxSeenPktBytes {
		sender.Metrics.MaxPacketBytes.CompareAndSwap(maxSeenPktBytes, pktLengthB)
	}

	sender.Metrics.TotalPackets.Add(1)

	logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
		"Sent packet (size %d) to %s\n", len(packet), sender.dest)
}

// Periodically rescales the inbox within its configured bounds
func (sender *Sender) scale(ctx context.Context) {
	ticker := time.NewTicker(sender.cfg.ScaleCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sender.inbox.ScaleCapacity(ctx)
		}
	}
}
