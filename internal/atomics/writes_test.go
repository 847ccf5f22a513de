package atomics

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSubtract(t *testing.T) {
	tests := []struct {
		name      string
		initial   uint64
		subtract  uint64
		wantFinal uint64
	}{
		{"already zero", 0, 5, 0},
		{"partial subtraction", 10, 3, 7},
		{"exact subtraction", 4, 4, 0},
		{"oversubtraction clamps at zero", 5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counter atomic.Uint64
			counter.Store(tt.initial)

			if !Subtract(&counter, tt.subtract, 3) {
				t.Fatalf("expected subtraction to succeed")
			}
			if got := counter.Load(); got != tt.wantFinal {
				t.Fatalf("expected final value %d, got %d", tt.wantFinal, got)
			}
		})
	}
}

func TestSubtractContended(t *testing.T) {
	var counter atomic.Uint64
	counter.Store(1000)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				// Generous retry budget, every decrement must land
				if !Subtract(&counter, 1, 100) {
					t.Errorf("subtraction gave up under contention")
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := counter.Load(); got != 0 {
		t.Fatalf("expected counter drained to 0, got %d", got)
	}
}
