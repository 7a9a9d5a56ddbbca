package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, seed int64) *State {
	t.Helper()
	s, err := NewState(DefaultConfig(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return s
}

// placeShape puts a falling piece of shape at origin without consuming the
// spawn timer or the randomizer.
func placeShape(s *State, shape Shape, origin Coord) {
	s.spawn.Reset()
	po := shape.PivotOffset()
	s.field.addPiece(shape, SpawnCells(shape, origin), origin.Add(po.X, po.Y))
}

func shifted(cells []Coord, dx, dy int) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Add(dx, dy)
	}
	return out
}
