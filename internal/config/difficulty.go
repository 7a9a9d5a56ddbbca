package config

import (
	"math"
	"time"
)

// DifficultyManager calculates gravity speed from progress. Progress is the
// number of pieces locked ("score") or frames played ("time").
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the gravity speed factor, from 1 up to 1 + speed_multiplier.
func (d *DifficultyManager) Speed(score int, ticks int) float64 {
	return 1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// GravityInterval returns the time between gravity steps for the current
// progress. It never drops below minimum.
func (d *DifficultyManager) GravityInterval(base, minimum time.Duration, score int, ticks int) time.Duration {
	interval := time.Duration(float64(base) / d.Speed(score, ticks))
	if interval < minimum {
		interval = minimum
	}
	return interval
}

// DisplayLevel returns the level shown to the player, from 1 to the
// configured number of levels.
func (d *DifficultyManager) DisplayLevel(score int, ticks int) int {
	levels := d.cfg.Scaling.Levels
	if levels <= 1 {
		return 1
	}
	return 1 + int(math.Floor(d.Level(score, ticks)*float64(levels-1)))
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
