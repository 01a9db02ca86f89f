package ws

import (
	"photon-ca/internal/core"
	"photon-ca/internal/protocol"
	"photon-ca/internal/sims/emfield"
)

// StateFromSnapshot converts an engine snapshot into its wire form.
func StateFromSnapshot(s emfield.Snapshot) protocol.StateMsg {
	m := protocol.StateMsg{
		Type:            protocol.TypeState,
		ProtocolVersion: protocol.Version,
		Tick:            s.Tick,
		Electric:        []int{},
		Magnetic:        []int{},
		Excitations:     make([]protocol.ExcitationMsg, 0, len(s.Excitations)),
		History: protocol.HistoryMsg{
			Electric: bits(s.HistoryElectric),
			Magnetic: bits(s.HistoryMagnetic),
		},
		FirstElectric: coordPtr(s.FirstElectric),
		FirstMagnetic: coordPtr(s.FirstMagnetic),
	}
	for _, x := range s.Excitations {
		if x.Type == emfield.Magnetic {
			m.Magnetic = append(m.Magnetic, x.Index)
		} else {
			m.Electric = append(m.Electric, x.Index)
		}
		m.Excitations = append(m.Excitations, protocol.ExcitationMsg{
			Index:     x.Index,
			Centered:  [3]int{x.Centered.X, x.Centered.Y, x.Centered.Z},
			Field:     x.Type.String(),
			Direction: [3]int{x.Direction.X, x.Direction.Y, x.Direction.Z},
		})
	}
	return m
}

// bits widens a 0/1 series so it encodes as a JSON array rather than base64.
func bits(in []uint8) []int {
	out := make([]int, len(in))
	for i, b := range in {
		out[i] = int(b)
	}
	return out
}

func coordPtr(c *core.Coord) *[3]int {
	if c == nil {
		return nil
	}
	return &[3]int{c.X, c.Y, c.Z}
}
