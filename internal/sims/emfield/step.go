package emfield

import "photon-ca/internal/core"

// Policy computes the next generation of a field. Implementations write the
// complete next state into next and must not modify cur.
type Policy interface {
	Name() string
	Step(cur, next *Field, g core.Grid3)
}

// PolicyFor returns the transition policy for a mode.
func PolicyFor(m Mode) Policy {
	if m == ModePropagate {
		return Propagate{}
	}
	return Toggle{}
}

// Toggle swaps the electric and magnetic layers without moving anything.
type Toggle struct{}

// Name identifies the policy.
func (Toggle) Name() string { return "toggle" }

// Step writes cur's magnetic layer as next's electric layer and vice versa.
func (Toggle) Step(cur, next *Field, _ core.Grid3) {
	copy(next.electric, cur.magnetic)
	copy(next.magnetic, cur.electric)
	copy(next.direction, cur.direction)
}

// Propagate moves every excitation one cell along its direction, wrapping at
// the lattice edges, and flips its field type. When two excitations land on
// the same cell the one with the higher source index wins.
type Propagate struct{}

// Name identifies the policy.
func (Propagate) Name() string { return "propagate" }

// Step computes the next generation from the occupied cells of cur.
func (Propagate) Step(cur, next *Field, g core.Grid3) {
	next.ClearAll()
	for i := range cur.electric {
		if !cur.electric[i] && !cur.magnetic[i] {
			continue
		}
		dir := cur.direction[i]
		dst := g.WrapCoord(g.Delinearize(i).Add(dir))
		t := g.Linearize(dst.X, dst.Y, dst.Z)
		src := Electric
		if cur.magnetic[i] {
			src = Magnetic
		}
		next.SetActive(t, src.Opposite(), dir)
	}
}
