package engine

// Layout maps raw field coordinates to presentation pixels. The stack origin
// is the bottom-left corner of the field.
type Layout struct {
	TileSize int
	StackX   int
	StackY   int
}

// DefaultLayout matches a 32 pixel tile with the stack drawn at the origin.
func DefaultLayout() Layout {
	return Layout{TileSize: 32}
}

// PixelPos returns the pixel center of the cell whose lower-left corner is c.
func (l Layout) PixelPos(c Coord) (x, y int) {
	x = l.StackX + l.TileSize*(c.X+1)/Unit
	y = l.StackY + l.TileSize*(c.Y+1)/Unit
	return x, y
}
