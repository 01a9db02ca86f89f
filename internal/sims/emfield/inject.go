package emfield

import (
	"errors"
	"fmt"
	"math"

	"photon-ca/internal/core"
)

// ErrInvalidIndex is returned when an injection target lies outside the lattice.
var ErrInvalidIndex = errors.New("emfield: invalid cell index")

// DirectionSource draws the axis used for a directional injection.
// *rand.Rand and *core.RNG both satisfy it.
type DirectionSource interface {
	IntN(n int) int
}

// Inject seeds a single electric excitation at t using the variant that
// matches the engine's mode.
func (e *Engine) Inject(t int) error {
	if e.cfg.Mode == ModePropagate {
		return e.InjectDirectional(t)
	}
	return e.InjectStationary(t)
}

// InjectStationary discards all excitations and activates electric at t with
// no direction.
func (e *Engine) InjectStationary(t int) error {
	return e.inject(t, func() core.Vec3 { return core.Vec3{} })
}

// InjectDirectional discards all excitations and activates electric at t with
// a direction drawn uniformly from the six lattice axes.
func (e *Engine) InjectDirectional(t int) error {
	return e.inject(t, func() core.Vec3 {
		return core.Axes[e.src.IntN(len(core.Axes))]
	})
}

// InjectCentered injects at a coordinate relative to the center cell, each
// axis in [-L/2, L/2].
func (e *Engine) InjectCentered(c core.Coord) error {
	t, ok := e.grid.FromCentered(c)
	if !ok {
		return fmt.Errorf("%w: centered coordinate (%d,%d,%d) outside grid of side %d",
			ErrInvalidIndex, c.X, c.Y, c.Z, e.grid.L)
	}
	return e.Inject(t)
}

// InjectNearest injects at the lattice point closest to p in world space.
func (e *Engine) InjectNearest(p core.Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
		return fmt.Errorf("%w: point %v is not a number", ErrInvalidIndex, p)
	}
	return e.Inject(e.grid.Nearest(p, e.cfg.Spacing))
}

func (e *Engine) inject(t int, dir func() core.Vec3) error {
	if !e.grid.Contains(t) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, t, e.grid.Len())
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur.ClearAll()
	e.cur.SetActive(t, Electric, dir())
	e.sampleLocked()
	return nil
}
