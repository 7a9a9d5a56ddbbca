package engine

// Translate shifts the falling piece one column left or right. Other events
// are ignored. The whole piece and its pivot move together or not at all.
func (s *State) Translate(ev Event) bool {
	var dx int
	switch ev {
	case EventLeft:
		dx = -Unit
	case EventRight:
		dx = Unit
	default:
		return false
	}
	if !s.field.HasPiece() {
		return false
	}

	cells := s.field.PieceCells()
	for i := range cells {
		cells[i] = cells[i].Add(dx, 0)
	}
	if !s.field.IsLegal(cells) {
		return false
	}
	s.field.shiftPiece(dx, 0)
	return true
}

// Rotate turns the falling piece a quarter turn around the pivot, trying each
// wall-kick offset in order and committing the first legal one. The pivot is
// left where it is. Events other than the two rotations are ignored.
func (s *State) Rotate(ev Event) bool {
	var dir Direction
	switch ev {
	case EventRotateClockwise:
		dir = Clockwise
	case EventRotateCounterClockwise:
		dir = CounterClockwise
	default:
		return false
	}
	_, ok := s.rotate(dir)
	return ok
}

// rotate performs the rotation and returns the index of the kick that was
// used.
func (s *State) rotate(dir Direction) (int, bool) {
	piece := s.field.Piece()
	if len(piece) == 0 {
		return -1, false
	}
	shape := piece[0].Shape
	state := piece[0].Rotation
	pivot := s.field.Pivot()

	rotated := make([]Coord, len(piece))
	for i, b := range piece {
		rotated[i] = b.Pos.Rotate(pivot, dir)
	}

	candidate := make([]Coord, len(rotated))
	for i, kick := range KickOffsets(shape, state, dir) {
		k := kick.Scaled()
		for j, c := range rotated {
			candidate[j] = c.Add(k.X, k.Y)
		}
		if s.field.IsLegal(candidate) {
			s.field.placePiece(candidate, dir.Next(state))
			return i, true
		}
	}
	return -1, false
}
