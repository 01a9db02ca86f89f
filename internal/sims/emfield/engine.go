package emfield

import (
	"sync"

	"photon-ca/internal/core"
)

// Engine owns a field, its transition policy and the center-cell history.
// Mutating calls are serialized; readers never observe a half-built
// generation because the next buffer is swapped in under the write lock.
type Engine struct {
	cfg    Config
	grid   core.Grid3
	policy Policy

	mu   sync.RWMutex
	cur  *Field
	nxt  *Field
	hist History
	tick int

	src DirectionSource
	rng *core.RNG
}

// New builds an engine from cfg. When src is nil the engine draws directions
// from its own RNG seeded with cfg.Seed.
func New(cfg Config, src DirectionSource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := core.NewGrid3(cfg.GridSize)
	e := &Engine{
		cfg:    cfg,
		grid:   grid,
		policy: PolicyFor(cfg.Mode),
		cur:    NewField(grid.Len()),
		nxt:    NewField(grid.Len()),
		src:    src,
	}
	if src == nil {
		e.rng = core.NewRNG(cfg.Seed)
		e.src = e.rng
	}
	e.sampleLocked()
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "emfield-" + e.policy.Name() }

// Size returns the lattice dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Grid returns the lattice topology.
func (e *Engine) Grid() core.Grid3 { return e.grid }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Cells returns a copy of the current state as 0 (inactive), 1 (electric)
// or 2 (magnetic) per cell.
func (e *Engine) Cells() []uint8 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]uint8, e.cur.Len())
	for i := range out {
		out[i] = uint8(e.cur.StateAt(i))
	}
	return out
}

// Step advances the automaton by one tick and samples the center cell.
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepLocked()
}

// StepN advances the automaton by n ticks, sampling after each one.
func (e *Engine) StepN(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := 0; i < n; i++ {
		e.stepLocked()
	}
}

func (e *Engine) stepLocked() {
	e.policy.Step(e.cur, e.nxt, e.grid)
	e.cur, e.nxt = e.nxt, e.cur
	e.tick++
	e.sampleLocked()
}

// Reset clears the field and both history series. A non-zero seed restarts
// the engine-owned direction RNG; zero restarts it from the config seed.
// Engines built with an external DirectionSource leave it untouched.
func (e *Engine) Reset(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur.ClearAll()
	e.nxt.ClearAll()
	e.hist.Reset()
	e.tick = 0
	if e.rng != nil {
		if seed == 0 {
			seed = e.cfg.Seed
		}
		e.rng.Seed(seed)
	}
}

// Tick returns the number of steps applied since construction or reset.
func (e *Engine) Tick() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tick
}

// State returns the automaton state of cell i.
func (e *Engine) State(i int) CellState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cur.StateAt(i)
}

// Direction returns the direction carried by cell i, zero when inactive.
func (e *Engine) Direction(i int) core.Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cur.Direction(i)
}

// FirstActive returns the centered coordinate of the lowest-indexed cell
// carrying field type t.
func (e *Engine) FirstActive(t FieldType) (core.Coord, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, ok := e.cur.First(t)
	if !ok {
		return core.Coord{}, false
	}
	return e.grid.Centered(i), true
}

// History returns copies of the electric and magnetic center-cell series.
func (e *Engine) History() (electric, magnetic []uint8) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.Electric(), e.hist.Magnetic()
}

// Points returns the world-space position of every cell in index order.
func (e *Engine) Points() []core.Point {
	pts := make([]core.Point, e.grid.Len())
	for i := range pts {
		pts[i] = e.grid.Point(i, e.cfg.Spacing)
	}
	return pts
}

func (e *Engine) sampleLocked() {
	e.hist.Sample(e.cur, e.grid.CenterIndex())
}
