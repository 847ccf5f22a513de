package client

import "errors"

// Startup and shutdown failures.
// Steady-state write failures are never surfaced, only counted.
var (
	ErrHostResolution = errors.New("destination host resolution failed")
	ErrSocketOpen     = errors.New("udp socket open failed")
	ErrStopTimeout    = errors.New("sender did not acknowledge stop in time")
)
