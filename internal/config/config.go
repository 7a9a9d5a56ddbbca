// Package config loads Blockfall configuration from YAML or TOML and manages
// difficulty progression.
package config

// BlockfallConfig contains all configuration for the game.
// Coordinates are in raw field units, where one cell is two units.
type BlockfallConfig struct {
	Arena      ArenaConfig      `yaml:"arena" toml:"arena"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Randomizer RandomizerConfig `yaml:"randomizer" toml:"randomizer"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Layout     LayoutConfig     `yaml:"layout" toml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ArenaConfig defines the field size in raw units.
type ArenaConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// SpawnConfig defines where new pieces appear, in raw units.
type SpawnConfig struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

// TimingConfig defines gravity and respawn timing in milliseconds.
type TimingConfig struct {
	GravityMs    int `yaml:"gravity_ms" toml:"gravity_ms"`         // gravity interval at the initial level
	MinGravityMs int `yaml:"min_gravity_ms" toml:"min_gravity_ms"` // fastest gravity interval at max difficulty
	SpawnDelayMs int `yaml:"spawn_delay_ms" toml:"spawn_delay_ms"` // delay between a lock and the next spawn
}

// RandomizerConfig defines the piece preview queue.
type RandomizerConfig struct {
	Preview int `yaml:"preview" toml:"preview"`
}

// InputConfig defines key repeat for held movement keys, in milliseconds.
type InputConfig struct {
	RepeatDelayMs    int `yaml:"repeat_delay_ms" toml:"repeat_delay_ms"`
	RepeatIntervalMs int `yaml:"repeat_interval_ms" toml:"repeat_interval_ms"`
	ReleaseGapMs     int `yaml:"release_gap_ms" toml:"release_gap_ms"`
}

// LayoutConfig maps field coordinates to pixels for graphical front ends.
type LayoutConfig struct {
	TileSize int `yaml:"tile_size" toml:"tile_size"`
	StackX   int `yaml:"stack_x" toml:"stack_x"`
	StackY   int `yaml:"stack_y" toml:"stack_y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // pieces locked or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // gravity speed-up at max difficulty
	Levels          int     `yaml:"levels" toml:"levels"`                     // number of displayed levels
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. The empty string means
// the configured difficulty is left alone.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyBlockfallPreset modifies the config based on a difficulty preset.
// The fixed preset turns progression off and keeps the base gravity.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Timing.SpawnDelayMs = 1200
	case DifficultyHard:
		cfg.Timing.SpawnDelayMs = 600
	}
}
