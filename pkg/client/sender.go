// Fire-and-forget UDP syslog client. One worker goroutine owns the
// socket and drains an inbox queue, callers never block on the network.
package client

import (
	"context"
	"fmt"
	"time"
	"udpsyslog/internal/atomics"
	"udpsyslog/internal/global"
	"udpsyslog/internal/logctx"
	"udpsyslog/internal/network"
	"udpsyslog/internal/queue/mpmc"
)

// Starts the process-wide sender or returns the already running one.
// Host resolution and socket open failures are fatal to the start, a
// second socket is never opened while a sender is registered.
func Start(ctx context.Context, opts Options) (sender *Sender, err error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if registry.active != nil {
		sender = registry.active
		return
	}

	// Add log context
	ctx = logctx.AppendCtxTag(ctx, global.NSClient)

	err = opts.setDefaults()
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrHostResolution, err)
		return
	}

	destAddr, err := network.ResolveDestination(opts.Host, opts.Port)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrHostResolution, err)
		return
	}

	conn, err := network.OpenEphemeralUDP(opts.SendBufferBytes)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrSocketOpen, err)
		return
	}

	inbox, err := mpmc.New[request](logctx.GetTagList(ctx), uint64(opts.InboxSize), opts.MinQueueSize, opts.MaxQueueSize)
	if err != nil {
		conn.Close()
		err = fmt.Errorf("failed to create inbox queue: %v", err)
		return
	}

	workerCtx, cancel := context.WithCancel(context.Background())
	workerCtx = logctx.WithLogger(workerCtx, logctx.GetLogger(ctx))
	workerCtx = logctx.OverwriteCtxTag(workerCtx, logctx.GetTagList(ctx))

	sender = &Sender{
		cfg:     opts,
		conn:    conn,
		dest:    destAddr,
		inbox:   inbox,
		Metrics: &MetricStorage{},
		ctx:     workerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}

	sender.wg.Add(1)
	go func() {
		defer sender.wg.Done()
		runCtx := logctx.AppendCtxTag(workerCtx, global.NSWorker)
		sender.run(runCtx)
	}()

	sender.wg.Add(1)
	go func() {
		defer sender.wg.Done()
		scaleCtx := logctx.AppendCtxTag(workerCtx, global.NSScaler)
		sender.scale(scaleCtx)
	}()

	registry.active = sender

	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"Sender started for destination %s\n", destAddr)
	return
}

// Submits a textual message with facility 0 (kern) folded priority.
// Returns immediately, delivery is best-effort with no signal back.
func (sender *Sender) Send(tag string, severity int, message string) {
	sender.submit(request{
		kind:     sendRequest,
		tag:      tag,
		severity: severity,
		message:  message,
	})
}

// Submits a textual message with an explicit facility
func (sender *Sender) SendFacility(facility int, tag string, severity int, message string) {
	sender.submit(request{
		kind:        sendRequest,
		facility:    facility,
		hasFacility: true,
		tag:         tag,
		severity:    severity,
		message:     message,
	})
}

// Submits a raw byte body, passed through the frame unmodified
func (sender *Sender) SendRaw(tag string, severity int, body []byte) {
	sender.submit(request{
		kind:     sendRequest,
		tag:      tag,
		severity: severity,
		body:     body,
		rawBody:  true,
	})
}

// Submits a raw byte body with an explicit facility
func (sender *Sender) SendRawFacility(facility int, tag string, severity int, body []byte) {
	sender.submit(request{
		kind:        sendRequest,
		facility:    facility,
		hasFacility: true,
		tag:         tag,
		severity:    severity,
		body:        body,
		rawBody:     true,
	})
}

// Hands a request to the inbox. A full inbox drops the request, the
// caller is never blocked or failed by the logging path.
func (sender *Sender) submit(req request) {
	select {
	case <-sender.stopped:
		sender.Metrics.DroppedSubmissions.Add(1)
		return
	default:
	}

	if !sender.inbox.Push(req) {
		sender.Metrics.DroppedSubmissions.Add(1)
		return
	}

	// Track queued payload bytes for memory-aware inbox scaling
	sender.inbox.ActiveWrite.Load().Metrics.Bytes.Add(uint64(len(req.message) + len(req.body)))
}

// Blocks until the inbox has emptied or the timeout elapses.
// Best-effort, an empty inbox means queued messages reached the worker,
// not that every datagram left the host.
func (sender *Sender) Drain(timeout time.Duration) (drained bool) {
	drained, _ = atomics.WaitUntilZero(&sender.inbox.ActiveRead.Load().Metrics.Depth, timeout)
	return
}

// Sends a stop request behind any queued messages and blocks until the
// worker has released the socket. Bounded by the stop acknowledgment
// timeout to avoid indefinite blocking on a stuck worker.
func (sender *Sender) Stop() (err error) {
	if !sender.stopping.CompareAndSwap(false, true) {
		// Another stop is in flight, wait for the worker to finish
		select {
		case <-sender.stopped:
		case <-time.After(global.StopAckTimeout):
			err = ErrStopTimeout
		}
		return
	}

	ack := make(chan struct{})
	sender.inbox.PushBlocking(sender.ctx, request{kind: stopRequest, ack: ack}, 0)

	select {
	case <-ack:
	case <-time.After(global.StopAckTimeout):
		// Worker never acknowledged, tear down without waiting on it
		err = ErrStopTimeout
		sender.cancel()
		deregister(sender)
		return
	}

	sender.cancel()
	sender.wg.Wait()
	deregister(sender)
	return
}

// Package-level counterparts operating on the registered sender.
// With no sender running the request is silently lost.

func Send(tag string, severity int, message string) {
	sender := Active()
	if sender == nil {
		droppedNoSender.Add(1)
		return
	}
	sender.Send(tag, severity, message)
}

func SendFacility(facility int, tag string, severity int, message string) {
	sender := Active()
	if sender == nil {
		droppedNoSender.Add(1)
		return
	}
	sender.SendFacility(facility, tag, severity, message)
}

// Stops the registered sender, no-op error free when none is running
func Stop() (err error) {
	sender := Active()
	if sender == nil {
		return
	}
	err = sender.Stop()
	return
}
