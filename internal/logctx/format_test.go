package logctx

import (
	"fmt"
	"testing"
	"time"
)

func TestEventFormat(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	tests := []struct {
		name   string
		event  Event
		expect string
	}{
		{
			name: "all fields",
			event: Event{
				Timestamp: ts,
				Severity:  "Info",
				Tags:      []string{"Client", "Worker"},
				Message:   "sent packet\n",
			},
			expect: fmt.Sprintf("[%s] [Client/Worker] [Info] sent packet\n", padTimestamp(ts)),
		},
		{
			name: "no message",
			event: Event{
				Timestamp: ts,
				Severity:  "Info",
				Tags:      []string{"Client"},
			},
			expect: fmt.Sprintf("[%s] [Client] [Info]", padTimestamp(ts)),
		},
		{
			name: "no tags",
			event: Event{
				Timestamp: ts,
				Severity:  "Warn",
				Message:   "socket write failed",
			},
			expect: fmt.Sprintf("[%s] [Warn] socket write failed", padTimestamp(ts)),
		},
		{
			name:   "message only",
			event:  Event{Message: "bare message"},
			expect: "bare message",
		},
		{
			name:   "zero value",
			event:  Event{},
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.Format()
			if got != tt.expect {
				t.Errorf("\ngot  %q\nwant %q", got, tt.expect)
			}
		})
	}
}

func TestPadTimestampFixedWidth(t *testing.T) {
	// Fractional seconds must never collapse regardless of trailing zeros
	a := time.Date(2026, 3, 14, 9, 26, 53, 500000000, time.UTC)
	b := time.Date(2026, 3, 14, 9, 26, 53, 123456789, time.UTC)

	if len(padTimestamp(a)) != len(padTimestamp(b)) {
		t.Fatalf("expected equal widths, got %q and %q", padTimestamp(a), padTimestamp(b))
	}
}
