package core

import "testing"

func TestLinearizeRoundTrip(t *testing.T) {
	for _, side := range []int{1, 3, 7} {
		g := NewGrid3(side)
		seen := make(map[int]bool, g.Len())
		for x := 0; x < side; x++ {
			for y := 0; y < side; y++ {
				for z := 0; z < side; z++ {
					i := g.Linearize(x, y, z)
					if !g.Contains(i) {
						t.Fatalf("L=%d: index %d for (%d,%d,%d) out of range", side, i, x, y, z)
					}
					if seen[i] {
						t.Fatalf("L=%d: index %d produced twice", side, i)
					}
					seen[i] = true
					if got := g.Delinearize(i); got != (Coord{x, y, z}) {
						t.Fatalf("L=%d: Delinearize(%d)=%v, expected (%d,%d,%d)", side, i, got, x, y, z)
					}
				}
			}
		}
	}
}

func TestLinearizeRowMajorXSlowest(t *testing.T) {
	g := NewGrid3(7)
	if got := g.Linearize(1, 0, 0); got != 49 {
		t.Fatalf("expected x stride 49, got %d", got)
	}
	if got := g.Linearize(0, 1, 0); got != 7 {
		t.Fatalf("expected y stride 7, got %d", got)
	}
	if got := g.Linearize(0, 0, 1); got != 1 {
		t.Fatalf("expected z stride 1, got %d", got)
	}
}

func TestCenterIndex(t *testing.T) {
	g := NewGrid3(7)
	if got, want := g.CenterIndex(), g.Linearize(3, 3, 3); got != want {
		t.Fatalf("center index %d, expected %d", got, want)
	}
	if got := g.Centered(g.CenterIndex()); got != (Coord{}) {
		t.Fatalf("center should have centered coordinate zero, got %v", got)
	}
	if got := NewGrid3(1).CenterIndex(); got != 0 {
		t.Fatalf("single-cell grid center should be 0, got %d", got)
	}
}

func TestWrapNonNegative(t *testing.T) {
	cases := []struct{ c, n, want int }{
		{0, 7, 0},
		{6, 7, 6},
		{7, 7, 0},
		{-1, 7, 6},
		{-8, 7, 6},
		{15, 7, 1},
	}
	for _, tc := range cases {
		if got := Wrap(tc.c, tc.n); got != tc.want {
			t.Fatalf("Wrap(%d,%d)=%d, expected %d", tc.c, tc.n, got, tc.want)
		}
	}

	g := NewGrid3(5)
	if got := g.WrapCoord(Coord{X: 5, Y: -1, Z: 2}); got != (Coord{0, 4, 2}) {
		t.Fatalf("WrapCoord returned %v", got)
	}
}

func TestFromCentered(t *testing.T) {
	g := NewGrid3(7)
	i, ok := g.FromCentered(Coord{X: 1, Y: -3, Z: 3})
	if !ok {
		t.Fatal("expected in-range centered coordinate to resolve")
	}
	if got := g.Delinearize(i); got != (Coord{4, 0, 6}) {
		t.Fatalf("FromCentered resolved to %v", got)
	}
	if got := g.Centered(i); got != (Coord{1, -3, 3}) {
		t.Fatalf("Centered(%d)=%v", i, got)
	}
	if _, ok := g.FromCentered(Coord{X: 4}); ok {
		t.Fatal("expected out-of-range centered coordinate to be rejected")
	}
}

func TestNearest(t *testing.T) {
	g := NewGrid3(7)
	const spacing = 2.0

	if got := g.Nearest(Point{}, spacing); got != g.CenterIndex() {
		t.Fatalf("origin should pick center, got %d", got)
	}

	want, _ := g.FromCentered(Coord{X: 1, Y: 0, Z: -2})
	if got := g.Nearest(Point{X: 2.4, Y: 0.3, Z: -3.8}, spacing); got != want {
		t.Fatalf("Nearest picked %v, expected %v", g.Centered(got), g.Centered(want))
	}

	// Outside the lattice the closest boundary point wins.
	far, _ := g.FromCentered(Coord{X: 3, Y: 3, Z: 3})
	if got := g.Nearest(Point{X: 100, Y: 100, Z: 100}, spacing); got != far {
		t.Fatalf("far point picked %v", g.Centered(got))
	}

	// Equidistant between x=0 and x=1: lower index wins.
	lo, _ := g.FromCentered(Coord{X: 0})
	if got := g.Nearest(Point{X: 1}, spacing); got != lo {
		t.Fatalf("tie should resolve to lowest index, got %v", g.Centered(got))
	}
}

func TestPointScalesWithSpacing(t *testing.T) {
	g := NewGrid3(3)
	p := g.Point(g.Linearize(0, 2, 1), 0.5)
	if p != (Point{X: -0.5, Y: 0.5, Z: 0}) {
		t.Fatalf("unexpected point %v", p)
	}
}
