package client

import (
	"sync"
	"sync/atomic"
)

// Process-wide registration of the single running sender.
// Insert-if-absent under the mutex keeps Start idempotent under
// concurrent start attempts, losers receive the winner's handle.
var registry struct {
	mu     sync.Mutex
	active *Sender
}

// Submissions made while no sender is registered (silently lost)
var droppedNoSender atomic.Uint64

// Returns the currently registered sender or nil
func Active() (sender *Sender) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	sender = registry.active
	return
}

// Removes the sender from the registry if it is the registered one
func deregister(sender *Sender) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.active == sender {
		registry.active = nil
	}
}
