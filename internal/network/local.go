package network

import (
	"fmt"
	"os"
	"udpsyslog/internal/global"
)

// Determines the default destination host.
// Environment override wins, otherwise the local machine hostname.
func DefaultHost() (host string, err error) {
	host = os.Getenv(global.EnvNameHost)
	if host != "" {
		return
	}

	host, err = os.Hostname()
	if err != nil {
		err = fmt.Errorf("failed to determine local hostname: %v", err)
		return
	}
	return
}
