package emfield

import "photon-ca/internal/core"

// Excitation describes one active cell.
type Excitation struct {
	Index     int
	Centered  core.Coord
	Type      FieldType
	Direction core.Vec3
}

// Snapshot is a consistent copy of the engine state taken under one lock.
type Snapshot struct {
	Tick        int
	Excitations []Excitation

	Electric []bool
	Magnetic []bool

	HistoryElectric []uint8
	HistoryMagnetic []uint8

	FirstElectric *core.Coord
	FirstMagnetic *core.Coord
}

// Snapshot copies the current generation and history.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := Snapshot{
		Tick:            e.tick,
		Electric:        append([]bool{}, e.cur.electric...),
		Magnetic:        append([]bool{}, e.cur.magnetic...),
		HistoryElectric: e.hist.Electric(),
		HistoryMagnetic: e.hist.Magnetic(),
	}
	for _, i := range e.cur.Occupied() {
		kind := Electric
		if e.cur.magnetic[i] {
			kind = Magnetic
		}
		s.Excitations = append(s.Excitations, Excitation{
			Index:     i,
			Centered:  e.grid.Centered(i),
			Type:      kind,
			Direction: e.cur.direction[i],
		})
		switch {
		case kind == Electric && s.FirstElectric == nil:
			c := e.grid.Centered(i)
			s.FirstElectric = &c
		case kind == Magnetic && s.FirstMagnetic == nil:
			c := e.grid.Centered(i)
			s.FirstMagnetic = &c
		}
	}
	return s
}
