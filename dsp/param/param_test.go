package param

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestFloat64RoundTrip(t *testing.T) {
	values := []float64{0, -18, 1e-300, math.MaxFloat64, -0.0001, math.Inf(-1)}

	var f Float64
	for _, v := range values {
		f.Store(v)
		if got := f.Load(); got != v {
			t.Fatalf("Load() = %v, want %v", got, v)
		}
	}
}

func TestFloat64StoreIfChanged(t *testing.T) {
	f := NewFloat64(1)

	tests := []struct {
		name    string
		value   float64
		changed bool
		want    float64
	}{
		{"same value", 1, false, 1},
		{"within eps", 1 + 5e-7, false, 1},
		{"beyond eps", 1.5, true, 1.5},
		{"back within eps of new value", 1.5 - 1e-7, false, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.StoreIfChanged(tt.value, 1e-6); got != tt.changed {
				t.Fatalf("StoreIfChanged(%v) = %v, want %v", tt.value, got, tt.changed)
			}
			if got := f.Load(); got != tt.want {
				t.Fatalf("Load() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntAndEnum(t *testing.T) {
	type mode int

	var i Int
	i.Store(7)
	if got := i.Load(); got != 7 {
		t.Fatalf("Int.Load() = %d, want 7", got)
	}

	var e Enum[mode]
	e.Store(mode(3))
	if got := e.Load(); got != 3 {
		t.Fatalf("Enum.Load() = %d, want 3", got)
	}
}

func TestNewFlagStartsRaised(t *testing.T) {
	f := NewFlag()
	if !f.Pending() {
		t.Fatal("new flag should be pending")
	}
	if !f.Claim() {
		t.Fatal("first claim should succeed")
	}
	if f.Claim() {
		t.Fatal("second claim without raise should fail")
	}
	if f.Pending() {
		t.Fatal("flag should be clear after claim")
	}
}

func TestPullRebuildsOnce(t *testing.T) {
	f := NewFlag()
	calls := 0
	rebuild := func() { calls++ }

	if !Pull(f, rebuild) {
		t.Fatal("first pull should rebuild")
	}
	if Pull(f, rebuild) {
		t.Fatal("second pull should report unchanged")
	}

	for range 10 {
		f.Raise()
	}

	if !Pull(f, rebuild) {
		t.Fatal("pull after raises should rebuild")
	}
	if calls != 2 {
		t.Fatalf("rebuild calls = %d, want 2", calls)
	}
}

// TestFlagNeverLosesUpdate races a writer against a consumer and checks that
// the final value always reaches the consumer through a later pull.
func TestFlagNeverLosesUpdate(t *testing.T) {
	const writes = 20000

	var (
		value Float64
		done  atomic.Bool
	)

	flag := NewFlag()
	seen := 0.0

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		for i := 1; i <= writes; i++ {
			value.Store(float64(i))
			flag.Raise()
		}
		done.Store(true)
		return nil
	})
	g.Go(func() error {
		for ctx.Err() == nil {
			finished := done.Load()
			Pull(flag, func() { seen = value.Load() })
			if finished && !flag.Pending() {
				return nil
			}
		}
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		t.Fatalf("errgroup: %v", err)
	}
	if seen != writes {
		t.Fatalf("consumer saw %v, want %v", seen, float64(writes))
	}
}
