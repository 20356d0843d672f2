package ident

import (
	"testing"
	"time"
)

func receiveID(t *testing.T, ch <-chan int64) int64 {
	t.Helper()
	select {
	case id, ok := <-ch:
		if !ok {
			t.Fatal("generator channel closed unexpectedly")
		}
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for id")
	}
	return 0
}

func TestGeneratorDeliversOneIDPerRequest(t *testing.T) {
	gen := NewGenerator(4)
	gen.Start()
	defer gen.Stop()

	gen.Request()
	first := receiveID(t, gen.C())

	gen.Request()
	gen.Request()
	second := receiveID(t, gen.C())
	third := receiveID(t, gen.C())

	if first == second && second == third {
		t.Fatalf("expected distinct ids, got %d three times", first)
	}

	select {
	case id := <-gen.C():
		t.Fatalf("unexpected extra id without a request: %d", id)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGeneratorStopClosesChannel(t *testing.T) {
	gen := NewGenerator(1)
	gen.Start()
	gen.Stop()

	select {
	case _, ok := <-gen.C():
		if ok {
			t.Fatal("expected closed channel after stop")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after stop")
	}

	// Request after stop must not panic or deliver.
	gen.Request()
}

func TestGeneratorStartIsIdempotent(t *testing.T) {
	gen := NewGenerator(1)
	gen.Start()
	gen.Start()
	defer gen.Stop()

	gen.Request()
	receiveID(t, gen.C())
}

func TestNextIDSpread(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 128; i++ {
		seen[NextID()] = true
	}
	// 128 draws from a 2^64 space collide with vanishing probability.
	if len(seen) != 128 {
		t.Fatalf("expected 128 distinct ids, got %d", len(seen))
	}
}
