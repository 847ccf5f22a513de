package logctx

import (
	"time"
	"udpsyslog/internal/global"
)

// Appends the event if its verbosity clears the logger's ceiling.
// Error severity is always recorded regardless of level.
func (logger *Logger) log(eventLevel int, eventSeverity string, tags []string, fullMessage string) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	if eventSeverity != global.ErrorLog && eventLevel > logger.PrintLevel {
		return
	}

	logger.queue = append(logger.queue, Event{
		Timestamp: time.Now(),
		Tags:      tags,
		Severity:  eventSeverity,
		Message:   fullMessage,
	})
	logger.cond.Signal()
}
