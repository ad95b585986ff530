package probe

import (
	"context"
	"testing"
)

func TestCachedProber(t *testing.T) {
	calls := map[string]int{}
	inner := ProberFunc(func(ctx context.Context, address string) bool {
		calls[address]++
		return address == "8.8.8.8"
	})
	prober := NewCachedProber(inner, 16, 0)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if !prober.Probe(ctx, "8.8.8.8") {
			t.Error("8.8.8.8 should be reachable")
		}
		if prober.Probe(ctx, "10.0.0.1") {
			t.Error("10.0.0.1 should be unreachable")
		}
	}

	if calls["8.8.8.8"] != 1 || calls["10.0.0.1"] != 1 {
		t.Errorf("expected one probe per address, got %v", calls)
	}
}

func TestCachedProberSkipsCancelled(t *testing.T) {
	calls := 0
	inner := ProberFunc(func(ctx context.Context, address string) bool {
		calls++
		return false
	})
	prober := NewCachedProber(inner, 16, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	prober.Probe(ctx, "8.8.8.8")
	prober.Probe(context.Background(), "8.8.8.8")

	if calls != 2 {
		t.Errorf("cancelled verdict was cached, inner probe ran %d times", calls)
	}
}
