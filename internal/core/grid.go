package core

import "math"

// Coord is an integer lattice coordinate.
type Coord struct {
	X, Y, Z int
}

// Add returns the component-wise sum of c and v.
func (c Coord) Add(v Vec3) Coord { return Coord{c.X + v.X, c.Y + v.Y, c.Z + v.Z} }

// Vec3 is an integer direction on the lattice.
type Vec3 struct {
	X, Y, Z int
}

// IsZero reports whether v is the zero vector.
func (v Vec3) IsZero() bool { return v == Vec3{} }

// Axes lists the six axis-aligned unit vectors.
var Axes = [6]Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Point is a position in world space.
type Point struct {
	X, Y, Z float64
}

// Grid3 maps linear cell indices onto a cubic lattice with toroidal wrapping.
// Indices are row-major with x varying slowest.
type Grid3 struct {
	L int
}

// NewGrid3 returns a topology for a side x side x side lattice.
func NewGrid3(side int) Grid3 {
	if side <= 0 {
		side = 1
	}
	return Grid3{L: side}
}

// Size reports the lattice dimensions.
func (g Grid3) Size() Size { return Size{W: g.L, H: g.L, D: g.L} }

// Len returns the number of cells.
func (g Grid3) Len() int { return g.L * g.L * g.L }

// Half returns the offset between index coordinates and centered coordinates.
func (g Grid3) Half() int { return g.L / 2 }

// Linearize returns the linear index for coordinates (x, y, z).
func (g Grid3) Linearize(x, y, z int) int { return (x*g.L+y)*g.L + z }

// Delinearize returns the coordinate of the linear index i.
func (g Grid3) Delinearize(i int) Coord {
	z := i % g.L
	i /= g.L
	return Coord{X: i / g.L, Y: i % g.L, Z: z}
}

// CenterIndex returns the index of the geometric center cell.
func (g Grid3) CenterIndex() int {
	h := g.Half()
	return g.Linearize(h, h, h)
}

// Wrap returns c mod n as a non-negative residue.
func Wrap(c, n int) int {
	return (c%n + n) % n
}

// WrapCoord applies toroidal wrapping on every axis.
func (g Grid3) WrapCoord(c Coord) Coord {
	return Coord{X: Wrap(c.X, g.L), Y: Wrap(c.Y, g.L), Z: Wrap(c.Z, g.L)}
}

// Contains reports whether i is a valid cell index.
func (g Grid3) Contains(i int) bool { return i >= 0 && i < g.Len() }

// ContainsCoord reports whether c lies inside [0, L) on every axis.
func (g Grid3) ContainsCoord(c Coord) bool {
	return c.X >= 0 && c.X < g.L && c.Y >= 0 && c.Y < g.L && c.Z >= 0 && c.Z < g.L
}

// Centered returns the coordinate of i relative to the center cell.
func (g Grid3) Centered(i int) Coord {
	c := g.Delinearize(i)
	h := g.Half()
	return Coord{X: c.X - h, Y: c.Y - h, Z: c.Z - h}
}

// FromCentered converts a centered coordinate into a linear index. ok is false
// when the coordinate lies outside the lattice.
func (g Grid3) FromCentered(c Coord) (int, bool) {
	h := g.Half()
	abs := Coord{X: c.X + h, Y: c.Y + h, Z: c.Z + h}
	if !g.ContainsCoord(abs) {
		return 0, false
	}
	return g.Linearize(abs.X, abs.Y, abs.Z), true
}

// Point returns the world-space position of cell i for the given spacing.
func (g Grid3) Point(i int, spacing float64) Point {
	c := g.Centered(i)
	return Point{X: float64(c.X) * spacing, Y: float64(c.Y) * spacing, Z: float64(c.Z) * spacing}
}

// Nearest returns the index of the cell whose point lies closest to p. Ties
// resolve to the lowest index.
func (g Grid3) Nearest(p Point, spacing float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i := 0; i < g.Len(); i++ {
		q := g.Point(i, spacing)
		dx, dy, dz := q.X-p.X, q.Y-p.Y, q.Z-p.Z
		d := dx*dx + dy*dy + dz*dz
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
