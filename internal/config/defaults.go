package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration. It matches the
// embedded defaults/blockfall.yaml.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Arena: ArenaConfig{
			Width:  20,
			Height: 46,
		},
		Spawn: SpawnConfig{
			X: 8,
			Y: 42,
		},
		Timing: TimingConfig{
			GravityMs:    500,
			MinGravityMs: 80,
			SpawnDelayMs: 1000,
		},
		Randomizer: RandomizerConfig{
			Preview: 4,
		},
		Input: InputConfig{
			RepeatDelayMs:    300,
			RepeatIntervalMs: 70,
			ReleaseGapMs:     100,
		},
		Layout: LayoutConfig{
			TileSize: 32,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
				Levels:          10,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
