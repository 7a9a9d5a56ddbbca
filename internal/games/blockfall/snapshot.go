package blockfall

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Level    int
	Stats    engine.Stats
	Piece    []engine.Coord // falling cells, empty between pieces
	Pivot    engine.Coord
	Settled  int
	Preview  []engine.Shape
	Gravity  time.Duration
	State    GameStateType
	Rotation int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	field := g.state.Field()
	st := g.State()
	snap := Snapshot{
		Tick:    g.tick,
		Score:   st.Score,
		Level:   st.Level,
		Stats:   g.state.Stats(),
		Piece:   field.PieceCells(),
		Settled: field.SettledCount(),
		Preview: g.state.Preview(),
		Gravity: g.state.GravityInterval(),
		State:   state,
	}
	if piece := field.Piece(); len(piece) > 0 {
		snap.Pivot = field.Pivot()
		snap.Rotation = piece[0].Rotation
	}
	return snap
}
