package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrTopOut is returned when a new piece cannot be placed because its spawn
// cells are already settled. The game cannot continue after it.
var ErrTopOut = errors.New("engine: top out")

// Config holds the fixed parameters of a field.
type Config struct {
	Width           int           // raw width, even
	Height          int           // raw height, even
	Spawn           Coord         // raw spawn point
	GravityInterval time.Duration // time between gravity steps
	SpawnDelay      time.Duration // time between a lock and the next spawn
	PreviewLength   int           // randomizer queue length
}

// DefaultConfig returns the standard field: 10 by 23 cells, spawning near the
// top, with a half-second gravity step and a one-second respawn delay.
func DefaultConfig() Config {
	return Config{
		Width:           20,
		Height:          46,
		Spawn:           C(8, 42),
		GravityInterval: 500 * time.Millisecond,
		SpawnDelay:      time.Second,
		PreviewLength:   DefaultPreviewLength,
	}
}

// Validate checks that the configuration describes a usable field.
func (c Config) Validate() error {
	if c.Width < 4*Unit || c.Width%Unit != 0 {
		return fmt.Errorf("engine: width %d must be even and at least %d", c.Width, 4*Unit)
	}
	if c.Height < 4*Unit || c.Height%Unit != 0 {
		return fmt.Errorf("engine: height %d must be even and at least %d", c.Height, 4*Unit)
	}
	if c.Spawn.X%Unit != 0 || c.Spawn.Y%Unit != 0 {
		return fmt.Errorf("engine: spawn point %v must be even", c.Spawn)
	}
	// Layout offsets reach one cell left, two right and one up.
	if c.Spawn.X < Unit || c.Spawn.X > c.Width-3*Unit || c.Spawn.Y < 0 || c.Spawn.Y > c.Height-2*Unit {
		return fmt.Errorf("engine: spawn point %v leaves pieces outside a %dx%d field", c.Spawn, c.Width, c.Height)
	}
	if c.GravityInterval <= 0 {
		return fmt.Errorf("engine: gravity interval must be positive, got %v", c.GravityInterval)
	}
	if c.SpawnDelay < 0 {
		return fmt.Errorf("engine: spawn delay must not be negative, got %v", c.SpawnDelay)
	}
	return nil
}

// Stats counts what happened during a game.
type Stats struct {
	Spawned int // pieces spawned
	Locked  int // pieces locked
	Dropped int // rows travelled by hard drops
	Frames  int // frames stepped
}

// State is the complete mutable game state shared by every controller.
// It is not safe for concurrent use; a caller driving it from several
// goroutines must serialize whole Step calls.
type State struct {
	cfg        Config
	field      *Field
	gravity    GravityTimer
	spawn      SpawnTimer
	randomizer *Randomizer
	stats      Stats
	toppedOut  bool
}

// NewState creates a game with an empty field. The first piece spawns on the
// first Step.
func NewState(cfg Config, rng *rand.Rand) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &State{
		cfg:        cfg,
		field:      NewField(cfg.Width, cfg.Height),
		gravity:    NewGravityTimer(cfg.GravityInterval),
		spawn:      NewSpawnTimer(cfg.SpawnDelay),
		randomizer: NewRandomizer(rng, cfg.PreviewLength),
	}, nil
}

// Config returns the configuration the state was created with.
func (s *State) Config() Config {
	return s.cfg
}

// Field returns the play field. Callers must treat it as read-only.
func (s *State) Field() *Field {
	return s.field
}

// Stats returns the game counters.
func (s *State) Stats() Stats {
	return s.stats
}

// ToppedOut reports whether the game has ended.
func (s *State) ToppedOut() bool {
	return s.toppedOut
}

// Preview returns the upcoming shapes, next first.
func (s *State) Preview() []Shape {
	return s.randomizer.Preview()
}

// GravityInterval returns the current time between gravity steps.
func (s *State) GravityInterval() time.Duration {
	return s.gravity.Threshold()
}

// SetGravityInterval changes the time between gravity steps.
func (s *State) SetGravityInterval(d time.Duration) {
	s.gravity.SetThreshold(d)
}

// SpawnPending reports whether the respawn timer is armed.
func (s *State) SpawnPending() bool {
	return s.spawn.Active()
}

// AdvanceTimers feeds elapsed frame time to both timers.
func (s *State) AdvanceTimers(dt time.Duration) {
	s.gravity.AddTime(dt)
	s.spawn.AddTime(dt)
}
