// Package blockfall adapts the falling-block engine to the platform's frame
// driver: it maps actions to engine events, feeds difficulty into gravity and
// draws the field into a core.Screen.
package blockfall

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry and score-store identifier.
const GameID = "blockfall"

const (
	panelWidth = 14 // side panel with score and preview
	panelGap   = 2
	previewMax = 3 // preview pieces drawn in the panel
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes game events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game on top of engine.State.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.BlockfallConfig
	difficulty *config.DifficultyManager
	layout     engine.Layout

	rng   *rand.Rand
	state *engine.State
	tick  uint64

	baseGravity time.Duration
	minGravity  time.Duration

	gameOver bool
	paused   bool
	tooSmall bool

	// Screen layout
	cols, rows int // field size in cells
	boxX, boxY int // top-left corner of the field box
	minScreenW int
	minScreenH int
}

// New creates a new Blockfall game.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset loads configuration and starts a fresh field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultBlockfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	state, err := engine.NewState(engineConfig(cfg), g.rng)
	if err != nil {
		logger.Error("config rejected by engine, using defaults", "err", err)
		cfg = config.DefaultBlockfallConfig()
		state, _ = engine.NewState(engineConfig(cfg), g.rng)
	}

	g.cfg = cfg
	g.state = state
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.layout = engine.Layout{
		TileSize: cfg.Layout.TileSize,
		StackX:   cfg.Layout.StackX,
		StackY:   cfg.Layout.StackY,
	}
	g.baseGravity = ms(cfg.Timing.GravityMs)
	g.minGravity = ms(cfg.Timing.MinGravityMs)
	g.state.SetGravityInterval(g.gravityInterval())

	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.calculateLayout()

	logger.Debug("game reset", "seed", runtime.Seed, "arena", fmt.Sprintf("%dx%d", cfg.Arena.Width, cfg.Arena.Height))
}

func engineConfig(cfg config.BlockfallConfig) engine.Config {
	return engine.Config{
		Width:           cfg.Arena.Width,
		Height:          cfg.Arena.Height,
		Spawn:           engine.C(cfg.Spawn.X, cfg.Spawn.Y),
		GravityInterval: ms(cfg.Timing.GravityMs),
		SpawnDelay:      ms(cfg.Timing.SpawnDelayMs),
		PreviewLength:   cfg.Randomizer.Preview,
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// calculateLayout centers the field box and side panel on the screen.
func (g *Game) calculateLayout() {
	g.cols = g.cfg.Arena.Width / engine.Unit
	g.rows = g.cfg.Arena.Height / engine.Unit

	boxW := g.cols*2 + 2
	boxH := g.rows + 2
	g.minScreenW = boxW + panelGap + panelWidth
	g.minScreenH = boxH

	g.tooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH
	if g.tooSmall {
		return
	}
	g.boxX = (g.runtime.ScreenW - g.minScreenW) / 2
	g.boxY = (g.runtime.ScreenH - boxH) / 2
}

// Resize relayouts the game for a new screen size without restarting it.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.calculateLayout()
}

// Seed returns the seed of the current game.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// RepeatConfig returns the key repeat timing for held movement keys.
func (g *Game) RepeatConfig() core.RepeatConfig {
	return core.RepeatConfig{
		Delay:      ms(g.cfg.Input.RepeatDelayMs),
		Interval:   ms(g.cfg.Input.RepeatIntervalMs),
		ReleaseGap: ms(g.cfg.Input.ReleaseGapMs),
	}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	report, err := g.state.Step(g.runtime.FrameDuration(), eventsFor(in))
	switch {
	case errors.Is(err, engine.ErrTopOut):
		g.gameOver = true
		stats := g.state.Stats()
		logger.Info("game over", "pieces", stats.Locked, "frames", stats.Frames, "err", err)
	case err != nil:
		logger.Error("step failed", "err", err)
	}

	if report.Spawned {
		if piece := g.state.Field().Piece(); len(piece) > 0 {
			logger.Debug("spawned", "shape", piece[0].Shape, "tick", g.tick)
		}
	}
	if report.Locked {
		logger.Debug("locked", "pieces", g.state.Stats().Locked, "gravity", report.Gravity)
		g.state.SetGravityInterval(g.gravityInterval())
	}
	if g.cfg.Difficulty.Progression.Type == "time" {
		g.state.SetGravityInterval(g.gravityInterval())
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	runtime := g.runtime
	runtime.Seed = g.rng.Int63()
	logger.Info("restart", "seed", runtime.Seed)
	g.Reset(runtime)
}

func (g *Game) gravityInterval() time.Duration {
	return g.difficulty.GravityInterval(g.baseGravity, g.minGravity, g.state.Stats().Locked, int(g.tick))
}

// eventsFor maps the frame's actions to engine events, keeping their order.
func eventsFor(in core.InputFrame) []engine.Event {
	var events []engine.Event
	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			events = append(events, engine.EventLeft)
		case core.ActionRight:
			events = append(events, engine.EventRight)
		case core.ActionRotateCW:
			events = append(events, engine.EventRotateClockwise)
		case core.ActionRotateCCW:
			events = append(events, engine.EventRotateCounterClockwise)
		case core.ActionSoftDrop:
			events = append(events, engine.EventDescend)
		case core.ActionHardDrop:
			events = append(events, engine.EventDrop)
		}
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	locked := g.state.Stats().Locked
	return core.GameState{
		Score:    locked,
		Level:    g.difficulty.DisplayLevel(locked, int(g.tick)),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Sprite is a block placed in pixel space.
type Sprite struct {
	X, Y  int
	Shape engine.Shape
}

// Sprites returns every block of the field positioned with the configured
// pixel layout, in field order.
func (g *Game) Sprites() []Sprite {
	blocks := g.state.Field().Blocks()
	sprites := make([]Sprite, len(blocks))
	for i, b := range blocks {
		x, y := g.layout.PixelPos(b.Pos)
		sprites[i] = Sprite{X: x, Y: y, Shape: b.Shape}
	}
	return sprites
}
