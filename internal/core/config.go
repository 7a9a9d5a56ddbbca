package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDuration returns the wall time covered by one frame.
// Non-positive tick rates fall back to 60 frames per second.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState is what a game reports to the platform after each frame.
type GameState struct {
	Score    int  // Pieces locked so far
	Level    int  // Current difficulty level, starting at 1
	GameOver bool // The game has ended and waits for a restart
	Paused   bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
