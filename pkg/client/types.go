package client

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"udpsyslog/internal/queue/mpmc"
)

type requestKind int

const (
	sendRequest requestKind = iota
	stopRequest
)

// One inbox entry. Send requests carry either a textual or a raw body,
// stop requests carry the acknowledgment channel.
type request struct {
	kind        requestKind
	facility    int
	hasFacility bool
	tag         string
	severity    int
	message     string
	body        []byte
	rawBody     bool
	ack         chan struct{}
}

// Single-instance worker owning one outbound UDP socket.
// All sends are serialized through the worker goroutine, the socket is
// never touched by any other goroutine.
type Sender struct {
	cfg     Options
	conn    net.PacketConn
	dest    *net.UDPAddr
	inbox   *mpmc.Queue[request]
	Metrics *MetricStorage

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopping atomic.Bool   // gates duplicate stop requests
	stopped  chan struct{} // closed once the worker has released the socket
}
