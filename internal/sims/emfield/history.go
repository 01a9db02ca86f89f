package emfield

// History records the electric and magnetic status of one probe cell after
// every visible state change.
type History struct {
	electric []uint8
	magnetic []uint8
}

// Sample appends the status of cell i in f to both series.
func (h *History) Sample(f *Field, i int) {
	h.electric = append(h.electric, bit(f.electric[i]))
	h.magnetic = append(h.magnetic, bit(f.magnetic[i]))
}

// Reset empties both series.
func (h *History) Reset() {
	h.electric = h.electric[:0]
	h.magnetic = h.magnetic[:0]
}

// Len returns the number of samples taken since the last reset.
func (h *History) Len() int { return len(h.electric) }

// Electric returns a copy of the electric series.
func (h *History) Electric() []uint8 { return append([]uint8{}, h.electric...) }

// Magnetic returns a copy of the magnetic series.
func (h *History) Magnetic() []uint8 { return append([]uint8{}, h.magnetic...) }

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
