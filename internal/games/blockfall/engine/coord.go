package engine

import "fmt"

// Unit is the raw distance of one logical cell.
const Unit = 2

// Coord is a position on the field in doubled units.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by (dx, dy) raw units.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Rotate turns c a quarter turn around pivot p.
// Clockwise maps the relative vector (x, y) to (y, -x); counter-clockwise
// maps it to (-y, x).
func (c Coord) Rotate(p Coord, dir Direction) Coord {
	relX := c.X - p.X
	relY := c.Y - p.Y
	if dir == Clockwise {
		return Coord{X: p.X + relY, Y: p.Y - relX}
	}
	return Coord{X: p.X - relY, Y: p.Y + relX}
}

// key packs the coordinate into a single integer for the occupancy index.
func (c Coord) key() int64 {
	return int64(c.X)<<32 | int64(uint32(c.Y))
}

// Offset is a displacement, in logical units unless stated otherwise.
type Offset struct {
	X int
	Y int
}

// Scaled returns the offset converted to raw units.
func (o Offset) Scaled() Offset {
	return Offset{X: o.X * Unit, Y: o.Y * Unit}
}

// Direction is a rotation direction.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}

// Next returns the rotation state reached by turning from state in this
// direction.
func (d Direction) Next(state int) int {
	if d == Clockwise {
		return (state + 1) % 4
	}
	return (state + 3) % 4
}
