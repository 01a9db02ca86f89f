package emfield

import "photon-ca/internal/core"

// FieldType names one of the two mutually-exclusive excitation kinds.
type FieldType uint8

const (
	Electric FieldType = iota
	Magnetic
)

func (t FieldType) String() string {
	if t == Magnetic {
		return "magnetic"
	}
	return "electric"
}

// Opposite returns the other field type.
func (t FieldType) Opposite() FieldType {
	if t == Electric {
		return Magnetic
	}
	return Electric
}

// CellState is the per-cell automaton state derived from a Field.
type CellState uint8

const (
	Inactive CellState = iota
	ActiveElectric
	ActiveMagnetic
)

// Field holds the electric and magnetic layers and the per-cell direction.
// A cell never carries both flags at once; the only mutator is SetActive.
type Field struct {
	electric  []bool
	magnetic  []bool
	direction []core.Vec3
}

// NewField allocates a rest-state field with n cells.
func NewField(n int) *Field {
	return &Field{
		electric:  make([]bool, n),
		magnetic:  make([]bool, n),
		direction: make([]core.Vec3, n),
	}
}

// Len returns the number of cells.
func (f *Field) Len() int { return len(f.electric) }

// Electric exposes the electric layer. Callers must not write to it.
func (f *Field) Electric() []bool { return f.electric }

// Magnetic exposes the magnetic layer. Callers must not write to it.
func (f *Field) Magnetic() []bool { return f.magnetic }

// Directions exposes the direction layer. Entries at inactive cells are stale.
func (f *Field) Directions() []core.Vec3 { return f.direction }

// Direction returns the direction stored at i, or zero when i is inactive.
func (f *Field) Direction(i int) core.Vec3 {
	if !f.electric[i] && !f.magnetic[i] {
		return core.Vec3{}
	}
	return f.direction[i]
}

// SetActive marks index i as carrying field type t, clearing the opposite flag.
func (f *Field) SetActive(i int, t FieldType, dir core.Vec3) {
	switch t {
	case Magnetic:
		f.magnetic[i] = true
		f.electric[i] = false
	default:
		f.electric[i] = true
		f.magnetic[i] = false
	}
	f.direction[i] = dir
}

// ClearAll returns every cell to rest.
func (f *Field) ClearAll() {
	clear(f.electric)
	clear(f.magnetic)
	clear(f.direction)
}

// StateAt derives the automaton state of cell i.
func (f *Field) StateAt(i int) CellState {
	switch {
	case f.electric[i]:
		return ActiveElectric
	case f.magnetic[i]:
		return ActiveMagnetic
	default:
		return Inactive
	}
}

// Occupied returns the indices of active cells in ascending order.
func (f *Field) Occupied() []int {
	var out []int
	for i := range f.electric {
		if f.electric[i] || f.magnetic[i] {
			out = append(out, i)
		}
	}
	return out
}

// Count returns the number of active electric and magnetic cells.
func (f *Field) Count() (electric, magnetic int) {
	for i := range f.electric {
		if f.electric[i] {
			electric++
		}
		if f.magnetic[i] {
			magnetic++
		}
	}
	return electric, magnetic
}

// First returns the lowest index carrying field type t.
func (f *Field) First(t FieldType) (int, bool) {
	layer := f.electric
	if t == Magnetic {
		layer = f.magnetic
	}
	for i, on := range layer {
		if on {
			return i, true
		}
	}
	return 0, false
}
