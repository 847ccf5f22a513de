package mpmc

import (
	"context"
	"testing"
	"time"
	"udpsyslog/internal/global"
)

// Helper
func intPtr[T any](v T) *T { return &v }

func TestQueue_PushPopScenarios(t *testing.T) {
	type op struct {
		push *int // nil means pop
		want *int // nil means no expected output
	}

	tests := []struct {
		name     string
		capacity uint64
		ops      []op
	}{
		{
			name:     "SinglePushPop",
			capacity: 32,
			ops: []op{
				{push: intPtr(10)},
				{want: intPtr(10)},
			},
		},
		{
			name:     "SimpleWrap",
			capacity: 4,
			ops: []op{
				{push: intPtr(1)},
				{push: intPtr(2)},
				{push: intPtr(3)},
				{push: intPtr(4)},
				{want: intPtr(1)},
				{want: intPtr(2)},
			},
		},
		{
			name:     "DeepWrap",
			capacity: 4,
			ops: []op{
				{push: intPtr(0)},
				{push: intPtr(1)},
				{push: intPtr(2)},
				{push: intPtr(3)},
				{want: intPtr(0)},
				{want: intPtr(1)},
				{push: intPtr(100)}, // wrap happens here
				{push: intPtr(200)},
				{want: intPtr(2)},
				{want: intPtr(3)},
				{want: intPtr(100)},
				{want: intPtr(200)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := New[int]([]string{global.NSTest}, tt.capacity, 2, global.DefaultMaxQueueSize)
			if err != nil {
				t.Fatalf("expected no error in creating queue, but got '%v'", err)
			}

			for i, op := range tt.ops {
				if op.push != nil {
					if !q.Push(*op.push) {
						t.Fatalf("op %d: push(%d) failed", i, *op.push)
					}
				} else if op.want != nil {
					got, ok := q.Pop(context.Background())
					if !ok {
						t.Fatalf("op %d: pop failed", i)
					}
					if got != *op.want {
						t.Fatalf("op %d: expected %d, got %d", i, *op.want, got)
					}
				}
			}
		})
	}
}

func TestQueue_InvalidCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity uint64
	}{
		{
			name:     "not a power of two",
			capacity: 3,
		},
		{
			name:     "below minimum",
			capacity: 1,
		},
		{
			name:     "zero",
			capacity: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[int]([]string{global.NSTest}, tt.capacity, 2, global.DefaultMaxQueueSize)
			if err == nil {
				t.Fatalf("expected error for capacity %d", tt.capacity)
			}
		})
	}
}

func TestQueue_PushFull(t *testing.T) {
	q, err := New[int]([]string{global.NSTest}, 2, 2, 2)
	if err != nil {
		t.Fatalf("expected no error in creating queue, but got '%v'", err)
	}

	if !q.Push(1) {
		t.Fatalf("expected first push to succeed")
	}
	if !q.Push(2) {
		t.Fatalf("expected second push to succeed")
	}

	// Queue at capacity, push must reject instead of blocking
	if q.Push(3) {
		t.Fatalf("expected push on full queue to fail")
	}

	if q.ActiveWrite.Load().Metrics.PushFull.Load() == 0 {
		t.Fatalf("expected rejected push to be counted")
	}
}

func TestQueue_PopBlocksUntilPushOrCancel(t *testing.T) {
	q, err := New[int]([]string{global.NSTest}, 8, 2, global.DefaultMaxQueueSize)
	if err != nil {
		t.Fatalf("expected no error in creating queue, but got '%v'", err)
	}

	// Pop unblocks when a value arrives
	go func() {
		time.Sleep(50 * time.Millisecond)
		q.Push(42)
	}()

	got, ok := q.Pop(context.Background())
	if !ok {
		t.Fatalf("expected pop to succeed after delayed push")
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	// Pop unblocks when the context is canceled
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, ok = q.Pop(ctx)
	if ok {
		t.Fatalf("expected pop to fail after context cancel")
	}
}

func TestQueue_DepthMetric(t *testing.T) {
	q, err := New[int]([]string{global.NSTest}, 8, 2, global.DefaultMaxQueueSize)
	if err != nil {
		t.Fatalf("expected no error in creating queue, but got '%v'", err)
	}

	for i := 0; i < 5; i++ {
		q.Push(i)
	}

	if depth := q.ActiveWrite.Load().Metrics.Depth.Load(); depth != 5 {
		t.Fatalf("expected depth 5 after pushes, got %d", depth)
	}

	for i := 0; i < 5; i++ {
		q.Pop(context.Background())
	}

	if depth := q.ActiveWrite.Load().Metrics.Depth.Load(); depth != 0 {
		t.Fatalf("expected depth 0 after pops, got %d", depth)
	}

	snap := q.Snapshot()
	if snap.PushSuccess != 5 || snap.PopSuccess != 5 {
		t.Fatalf("expected 5 push and 5 pop successes, got %d/%d", snap.PushSuccess, snap.PopSuccess)
	}
}
