// Package engine implements the falling-block rules of Blockfall: the play
// field, collision checks, gravity and locking, translation, rotation with
// wall kicks, spawning and the piece randomizer.
//
// Coordinates use doubled units: one logical cell is 2 raw units, so rotation
// around the half-cell pivots of the I and O pieces stays integral. Y grows
// upward and row 0 is the floor.
//
// The package has no I/O. A frame driver calls State.Step once per frame.
package engine

import (
	"fmt"
	"strings"
)

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of distinct shapes.
const ShapeCount = 7

// ShapeFromIndex converts a numeric draw to a Shape.
// Panics on values outside 0..6: every table in this package is exhaustive
// over exactly seven shapes.
func ShapeFromIndex(n int) Shape {
	if n < 0 || n >= ShapeCount {
		panic(fmt.Sprintf("engine: invalid shape index %d (valid range 0..%d)", n, ShapeCount-1))
	}
	return Shape(n)
}

// ParseShape parses a single-letter shape name (case-insensitive).
func ParseShape(s string) (Shape, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I":
		return ShapeI, true
	case "J":
		return ShapeJ, true
	case "L":
		return ShapeL, true
	case "O":
		return ShapeO, true
	case "S":
		return ShapeS, true
	case "T":
		return ShapeT, true
	case "Z":
		return ShapeZ, true
	}
	return 0, false
}

// String returns the letter of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeZ
}

// layouts holds the spawn-orientation cell offsets in logical units,
// relative to the spawn point.
var layouts = [ShapeCount][4]Offset{
	ShapeI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	ShapeJ: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeL: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	ShapeO: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	ShapeS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	ShapeT: {{-1, 0}, {0, 1}, {0, 0}, {1, 0}},
	ShapeZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
}

// Layout returns the four cell offsets of the shape in logical units.
func (s Shape) Layout() [4]Offset {
	return layouts[ShapeFromIndex(int(s))]
}

// PivotOffset returns the rotation center relative to the spawn point, in
// raw units. I and O rotate around a cell corner, so their pivots are odd.
func (s Shape) PivotOffset() Offset {
	switch ShapeFromIndex(int(s)) {
	case ShapeI:
		return Offset{X: 1, Y: -1}
	case ShapeO:
		return Offset{X: 1, Y: 1}
	default:
		return Offset{}
	}
}

// SpriteIndex returns the render index for the shape (0..6).
func (s Shape) SpriteIndex() int {
	return int(ShapeFromIndex(int(s)))
}
