package client

import (
	"time"
	"udpsyslog/internal/global"
	"udpsyslog/internal/network"
)

// Destination and queue tuning for a sender.
// Zero values resolve to environment overrides and built-in defaults.
type Options struct {
	Host string // destination host, textual names are resolved at start
	Port int    // destination port

	InboxSize    int // initial inbox capacity, must be a power of two
	MinQueueSize int // lower inbox capacity bound for scaling
	MaxQueueSize int // upper inbox capacity bound for scaling

	ScaleCheckInterval time.Duration // how often inbox capacity is reconsidered
	SendBufferBytes    int           // requested socket send buffer size
}

// Sets defaults for any missing values.
// Host falls back to the environment then the local machine hostname,
// port falls back to the environment then the standard syslog port.
func (opts *Options) setDefaults() (err error) {
	if opts.Host == "" {
		opts.Host, err = network.DefaultHost()
		if err != nil {
			return
		}
	}
	if opts.Port == 0 {
		opts.Port, err = network.DefaultPort()
		if err != nil {
			return
		}
	}

	if opts.InboxSize == 0 {
		opts.InboxSize = global.DefaultInboxSize
	}
	if opts.MinQueueSize == 0 {
		opts.MinQueueSize = global.DefaultMinQueueSize
	}
	if opts.MaxQueueSize == 0 {
		opts.MaxQueueSize = global.DefaultMaxQueueSize
	}

	if opts.ScaleCheckInterval == 0 {
		opts.ScaleCheckInterval = global.DefaultScaleCheckInterval
	}
	if opts.SendBufferBytes == 0 {
		opts.SendBufferBytes = global.DefaultSendBufferBytes
	}
	return
}
