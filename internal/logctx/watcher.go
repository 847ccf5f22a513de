package logctx

import (
	"fmt"
	"io"
)

// Spawns a goroutine draining queued events to the output writer.
// Runs until the logger's Done channel closes and the queue is empty.
func StartWatcher(logger *Logger, output io.Writer) {
	logger.wg.Add(1)

	go func() {
		defer logger.wg.Done()

		for {
			event, ok := logger.nextEvent()
			if !ok {
				return
			}
			// Emitters control newlines
			fmt.Fprint(output, event.Format())
		}
	}()
}

// Blocks until an event is available or shutdown completes with an
// empty queue
func (logger *Logger) nextEvent() (event Event, ok bool) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	for len(logger.queue) == 0 {
		select {
		case <-logger.Done:
			return
		default:
		}
		logger.cond.Wait()
	}

	event = logger.queue[0]
	logger.queue = logger.queue[1:]
	ok = true
	return
}
