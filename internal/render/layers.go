package render

import (
	"strconv"
	"strings"

	"photon-ca/internal/core"
)

// DefaultGlyphs maps cell values 0 (inactive), 1 (electric) and 2 (magnetic).
var DefaultGlyphs = []byte{'.', 'E', 'M'}

// fillGlyphs converts cell values into glyphs using a palette. Values past the
// end of the palette use its last entry; an empty palette yields spaces.
func fillGlyphs(buf []byte, cells []uint8, palette []byte) {
	if len(palette) == 0 {
		for i := range cells {
			buf[i] = ' '
		}
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		buf[i] = palette[idx]
	}
}

// Layer renders the y/z plane at index coordinate x as text: one row per y,
// one column per z, rows separated by newlines.
func Layer(cells []uint8, g core.Grid3, x int, palette []byte) string {
	if x < 0 || x >= g.L || len(cells) < g.Len() {
		return ""
	}
	row := make([]byte, g.L)
	var b strings.Builder
	for y := 0; y < g.L; y++ {
		start := g.Linearize(x, y, 0)
		fillGlyphs(row, cells[start:start+g.L], palette)
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Layers renders every x plane that holds at least one active cell, each
// preceded by a header carrying its centered x coordinate.
func Layers(cells []uint8, g core.Grid3, palette []byte) string {
	if len(cells) < g.Len() {
		return ""
	}
	var b strings.Builder
	for x := 0; x < g.L; x++ {
		start := g.Linearize(x, 0, 0)
		plane := cells[start : start+g.L*g.L]
		if !anyActive(plane) {
			continue
		}
		b.WriteString("x=")
		b.WriteString(strconv.Itoa(x - g.Half()))
		b.WriteByte('\n')
		b.WriteString(Layer(cells, g, x, palette))
	}
	return b.String()
}

func anyActive(cells []uint8) bool {
	for _, c := range cells {
		if c != 0 {
			return true
		}
	}
	return false
}
