package testutil

import "testing"

func TestGrid(t *testing.T) {
	g := Grid(-60, 0, 0.5)
	if len(g) != 121 {
		t.Fatalf("len = %d, want 121", len(g))
	}
	if g[0] != -60 || g[len(g)-1] != 0 {
		t.Fatalf("endpoints = %v, %v", g[0], g[len(g)-1])
	}
	RequireNonDecreasing(t, g, 0)

	if Grid(0, -1, 1) != nil || Grid(0, 1, 0) != nil {
		t.Fatal("expected nil for empty grids")
	}
}

func TestDeterministicUniform(t *testing.T) {
	a := DeterministicUniform(42, -3, 5, 256)
	b := DeterministicUniform(42, -3, 5, 256)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -3 || a[i] >= 5 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}

	c := DeterministicUniform(43, -3, 5, 256)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(10, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}

	for i, v := range Impulse(4, 9) {
		if v != 0 {
			t.Fatalf("out-of-range impulse set index %d", i)
		}
	}
}
