package engine

import "github.com/kamstrup/intmap"

// Block is one occupied cell, either part of the falling piece or settled.
type Block struct {
	Pos      Coord
	Falling  bool
	Shape    Shape
	Rotation int // quarter turns clockwise from the spawn orientation
}

// Field is the play field: an arena of blocks with stable indices, the
// falling piece and its pivot, and an index of settled cells.
//
// Blocks are only ever appended. A block's index stays valid for the life of
// the field.
type Field struct {
	width  int
	height int

	blocks  []Block
	active  []int // indices of the falling blocks
	pivot   Coord
	settled *intmap.Map[int64, int]
}

// NewField creates an empty field of the given raw dimensions.
func NewField(width, height int) *Field {
	return &Field{
		width:   width,
		height:  height,
		blocks:  make([]Block, 0, 64),
		active:  make([]int, 0, 4),
		settled: intmap.New[int64, int](256),
	}
}

// Width returns the raw width of the field.
func (f *Field) Width() int {
	return f.width
}

// Height returns the raw height of the field.
func (f *Field) Height() int {
	return f.height
}

// Pivot returns the rotation center of the falling piece.
func (f *Field) Pivot() Coord {
	return f.pivot
}

// Len returns the number of blocks in the arena.
func (f *Field) Len() int {
	return len(f.blocks)
}

// Block returns the block at arena index i.
func (f *Field) Block(i int) Block {
	return f.blocks[i]
}

// Blocks returns a copy of every block, in arena order.
func (f *Field) Blocks() []Block {
	out := make([]Block, len(f.blocks))
	copy(out, f.blocks)
	return out
}

// HasPiece reports whether a piece is falling.
func (f *Field) HasPiece() bool {
	return len(f.active) > 0
}

// Piece returns the falling blocks, or nil if none.
func (f *Field) Piece() []Block {
	if len(f.active) == 0 {
		return nil
	}
	out := make([]Block, len(f.active))
	for i, idx := range f.active {
		out[i] = f.blocks[idx]
	}
	return out
}

// PieceCells returns the coordinates of the falling blocks.
func (f *Field) PieceCells() []Coord {
	out := make([]Coord, len(f.active))
	for i, idx := range f.active {
		out[i] = f.blocks[idx].Pos
	}
	return out
}

// SettledCount returns the number of settled blocks.
func (f *Field) SettledCount() int {
	return f.settled.Len()
}

// Occupied reports whether a settled block sits at c.
func (f *Field) Occupied(c Coord) bool {
	_, ok := f.settled.Get(c.key())
	return ok
}

// InBounds reports whether c lies inside the field.
func (f *Field) InBounds(c Coord) bool {
	return c.X >= 0 && c.X <= f.width-Unit && c.Y >= 0 && c.Y <= f.height-Unit
}

// IsLegal reports whether every cell is inside the field and free of settled
// blocks. Falling blocks never collide with each other. The argument is not
// modified.
func (f *Field) IsLegal(cells []Coord) bool {
	for _, c := range cells {
		if !f.InBounds(c) || f.Occupied(c) {
			return false
		}
	}
	return true
}

// canDescend reports whether the whole piece may move one row down. The
// decision is taken on the current positions before anything moves.
func (f *Field) canDescend() bool {
	if len(f.active) == 0 {
		return false
	}
	for _, idx := range f.active {
		pos := f.blocks[idx].Pos
		if pos.Y <= 0 {
			return false
		}
		if f.Occupied(pos.Add(0, -Unit)) {
			return false
		}
	}
	return true
}

// shiftPiece moves every falling block and the pivot by (dx, dy).
func (f *Field) shiftPiece(dx, dy int) {
	for _, idx := range f.active {
		f.blocks[idx].Pos = f.blocks[idx].Pos.Add(dx, dy)
	}
	f.pivot = f.pivot.Add(dx, dy)
}

// placePiece replaces the falling block coordinates and sets their rotation
// state. cells must be ordered like the active blocks.
func (f *Field) placePiece(cells []Coord, rotation int) {
	for i, idx := range f.active {
		f.blocks[idx].Pos = cells[i]
		f.blocks[idx].Rotation = rotation
	}
}

// lockPiece settles the falling blocks and forgets the active piece.
func (f *Field) lockPiece() {
	for _, idx := range f.active {
		f.blocks[idx].Falling = false
		f.settled.Put(f.blocks[idx].Pos.key(), idx)
	}
	f.active = f.active[:0]
}

// addPiece appends falling blocks for shape at cells and makes them the
// active piece.
func (f *Field) addPiece(shape Shape, cells []Coord, pivot Coord) {
	f.active = f.active[:0]
	for _, c := range cells {
		f.active = append(f.active, len(f.blocks))
		f.blocks = append(f.blocks, Block{
			Pos:     c,
			Falling: true,
			Shape:   shape,
		})
	}
	f.pivot = pivot
}

// settle adds a settled block directly, bypassing the falling state.
func (f *Field) settle(shape Shape, c Coord) {
	f.settled.Put(c.key(), len(f.blocks))
	f.blocks = append(f.blocks, Block{Pos: c, Shape: shape})
}
