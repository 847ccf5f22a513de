// Buffered logger carried through context.Context. Emitters append
// events, a watcher goroutine drains them to an output writer.
package logctx

import (
	"sync"
	"time"
)

type Event struct {
	Timestamp time.Time
	Severity  string
	Tags      []string
	Message   string
}

type Logger struct {
	ID         string
	CreatedAt  time.Time
	PrintLevel int // verbosity ceiling for recorded events
	Done       <-chan struct{}

	mutex sync.Mutex // protects queue and PrintLevel
	cond  *sync.Cond // signals the watcher on new events
	queue []Event
	wg    *sync.WaitGroup // holds program exit until watchers finish
}
