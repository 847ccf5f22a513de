package logctx

import (
	"strings"
	"time"
)

// Fixed-width timestamp, fractional seconds never collapse
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Renders the event as "[timestamp] [tag/tag] [severity] message",
// omitting absent parts. No trailing newline, emitters control that.
func (event Event) Format() (text string) {
	var b strings.Builder

	if !event.Timestamp.IsZero() {
		b.WriteString("[" + padTimestamp(event.Timestamp) + "]")
	}
	if len(event.Tags) > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("[" + strings.Join(event.Tags, "/") + "]")
	}
	if event.Severity != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("[" + event.Severity + "]")
	}
	if event.Message != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(event.Message)
	}

	text = b.String()
	return
}

func padTimestamp(timestamp time.Time) (formatted string) {
	formatted = timestamp.Format(timestampLayout)
	return
}
