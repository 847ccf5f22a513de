package network

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"udpsyslog/internal/global"
)

// Resolves a textual host and port into a UDP destination address
func ResolveDestination(host string, port int) (addr *net.UDPAddr, err error) {
	addr, err = net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		err = fmt.Errorf("failed to resolve destination: %v", err)
		return
	}
	return
}

// Determines the default destination port.
// Environment override wins, otherwise the standard syslog port.
func DefaultPort() (port int, err error) {
	portStr := os.Getenv(global.EnvNamePort)
	if portStr == "" {
		port = global.DefaultSyslogPort
		return
	}

	port, err = strconv.Atoi(portStr)
	if err != nil {
		err = fmt.Errorf("invalid %s value '%s': %v", global.EnvNamePort, portStr, err)
		return
	}
	return
}
