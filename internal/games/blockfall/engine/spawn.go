package engine

import "fmt"

// SpawnIfDue places the next piece when the respawn timer fires. It returns
// true if a piece was spawned and wraps ErrTopOut if the spawn cells are
// already occupied.
func (s *State) SpawnIfDue() (bool, error) {
	if !s.spawn.ShouldSpawn() {
		return false, nil
	}
	s.spawn.Reset()

	shape := s.randomizer.Advance()
	if err := s.spawnShape(shape); err != nil {
		return false, err
	}
	return true, nil
}

// spawnShape creates the four falling blocks of shape at the spawn point.
func (s *State) spawnShape(shape Shape) error {
	cells := SpawnCells(shape, s.cfg.Spawn)
	if !s.field.IsLegal(cells) {
		s.toppedOut = true
		return fmt.Errorf("spawning %s at %v: %w", shape, s.cfg.Spawn, ErrTopOut)
	}
	po := shape.PivotOffset()
	s.field.addPiece(shape, cells, s.cfg.Spawn.Add(po.X, po.Y))
	s.stats.Spawned++
	return nil
}

// SpawnCells returns the raw coordinates of shape spawned at origin.
func SpawnCells(shape Shape, origin Coord) []Coord {
	layout := shape.Layout()
	cells := make([]Coord, len(layout))
	for i, o := range layout {
		so := o.Scaled()
		cells[i] = origin.Add(so.X, so.Y)
	}
	return cells
}
