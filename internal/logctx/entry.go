package logctx

import (
	"context"
	"fmt"
	"sync"
	"time"
	"udpsyslog/internal/global"
)

func NewLogger(id string, logLevel int, done <-chan struct{}) (logger *Logger) {
	logger = &Logger{
		ID:         id,
		CreatedAt:  time.Now(),
		PrintLevel: logLevel,
		Done:       done,
		queue:      make([]Event, 0),
		wg:         &sync.WaitGroup{},
	}
	logger.cond = sync.NewCond(&logger.mutex)
	return
}

// Embeds the logger in a child context
func WithLogger(ctx context.Context, logger *Logger) (ctxLogger context.Context) {
	ctxLogger = context.WithValue(ctx, global.LoggerKey, logger)
	return
}

// Retrieves the context's logger, nil when none was embedded
func GetLogger(ctx context.Context) (logger *Logger) {
	logger, _ = ctx.Value(global.LoggerKey).(*Logger)
	return
}

// Adjusts the verbosity ceiling of the context's logger, if any
func SetLogLevel(ctx context.Context, newLevel int) {
	logger := GetLogger(ctx)
	if logger == nil {
		return
	}
	logger.mutex.Lock()
	logger.PrintLevel = newLevel
	logger.mutex.Unlock()
}

// Blocks until all watchers have finished draining
func (logger *Logger) Wait() {
	logger.wg.Wait()
}

// Wakes any watcher blocked on the condition variable
func (logger *Logger) Wake() {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()
	logger.cond.Broadcast()
}

// Records one event against the context's logger.
// A context without a logger silently discards the event.
func LogEvent(ctx context.Context, eventLevel int, severity string, message string, vars ...any) {
	logger := GetLogger(ctx)
	if logger == nil {
		return
	}

	// Only run the formatter when there is something to substitute,
	// plain messages may carry literal percent signs
	if len(vars) > 0 {
		message = fmt.Sprintf(message, vars...)
	}

	logger.log(eventLevel, severity, GetTagList(ctx), message)
}
