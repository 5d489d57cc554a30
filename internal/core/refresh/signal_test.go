package refresh

import (
	"sync"
	"testing"
)

func TestSignalAdvance(t *testing.T) {
	var s Signal

	if got := s.Value(); got != 0 {
		t.Errorf("new signal Value() = %d, want 0", got)
	}

	if got := s.Advance(); got != 1 {
		t.Errorf("Advance() = %d, want 1", got)
	}
	if got := s.Advance(); got != 2 {
		t.Errorf("Advance() = %d, want 2", got)
	}
	if got := s.Value(); got != 2 {
		t.Errorf("Value() = %d, want 2", got)
	}
}

func TestSignalMonotonic(t *testing.T) {
	var s Signal

	prev := s.Value()
	for i := 0; i < 100; i++ {
		next := s.Advance()
		if next <= prev {
			t.Fatalf("Advance() = %d after %d, not monotonic", next, prev)
		}
		prev = next
	}
}

func TestSignalConcurrentAdvance(t *testing.T) {
	var s Signal
	var wg sync.WaitGroup

	// Overlapping editor submissions all land on the same counter; the
	// exact final value only needs to reflect every increment.
	const goroutines = 8
	const perGoroutine = 50
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				s.Advance()
			}
		}()
	}
	wg.Wait()

	if got := s.Value(); got != goroutines*perGoroutine {
		t.Errorf("Value() = %d, want %d", got, goroutines*perGoroutine)
	}
}
