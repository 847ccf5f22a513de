package network

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// Creates new local unconnected UDP socket on an ephemeral port.
// The socket is not bound to any destination, writes carry their own address.
func OpenEphemeralUDP(sendBufferBytes int) (conn net.PacketConn, err error) {
	// Using x/sys/unix package for more up-to-date syscall numbers
	cfg := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var err error
			c.Control(func(fd uintptr) {
				// Request a larger send buffer, kernel clamps to its own maximum
				err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUF, sendBufferBytes)
			})
			return err
		},
	}

	conn, err = cfg.ListenPacket(context.Background(), "udp", ":0")
	if err != nil {
		err = fmt.Errorf("failed to listen on new ephemeral connection: %v", err)
		return
	}
	return
}
