package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the format from a file extension. Anything that is not
// .toml is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadBlockfall loads the game configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.{yaml,toml} ->
// ./configs/blockfall.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or broken.
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath("blockfall.yaml"),
		userConfigPath("blockfall.toml"),
		filepath.Join("configs", "blockfall.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultBlockfallConfig()
	if err := Decode(defaultBlockfallYAML, FormatYAML, &cfg); err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, FormatForPath(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format over cfg.
func Decode(data []byte, format Format, cfg *BlockfallConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// Encode renders cfg in the given format.
func Encode(cfg BlockfallConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// Validate checks that the configuration describes a playable field.
func (c BlockfallConfig) Validate() error {
	var errs []error

	if c.Arena.Width < 8 || c.Arena.Width%2 != 0 {
		errs = append(errs, fmt.Errorf("arena.width %d must be even and at least 8", c.Arena.Width))
	}
	if c.Arena.Height < 8 || c.Arena.Height%2 != 0 {
		errs = append(errs, fmt.Errorf("arena.height %d must be even and at least 8", c.Arena.Height))
	}
	if c.Spawn.X%2 != 0 || c.Spawn.Y%2 != 0 {
		errs = append(errs, fmt.Errorf("spawn (%d,%d) must be even", c.Spawn.X, c.Spawn.Y))
	}
	// Pieces reach one cell left, two cells right and one cell up from the spawn point.
	if c.Spawn.X < 2 || c.Spawn.X > c.Arena.Width-6 || c.Spawn.Y < 0 || c.Spawn.Y > c.Arena.Height-4 {
		errs = append(errs, fmt.Errorf("spawn (%d,%d) does not fit a %dx%d arena",
			c.Spawn.X, c.Spawn.Y, c.Arena.Width, c.Arena.Height))
	}
	if c.Timing.GravityMs <= 0 {
		errs = append(errs, errors.New("timing.gravity_ms must be positive"))
	}
	if c.Timing.MinGravityMs <= 0 || c.Timing.MinGravityMs > c.Timing.GravityMs {
		errs = append(errs, fmt.Errorf("timing.min_gravity_ms must be in 1..%d", c.Timing.GravityMs))
	}
	if c.Timing.SpawnDelayMs < 0 {
		errs = append(errs, errors.New("timing.spawn_delay_ms must not be negative"))
	}
	if c.Randomizer.Preview < 2 {
		errs = append(errs, fmt.Errorf("randomizer.preview %d must be at least 2", c.Randomizer.Preview))
	}
	if c.Input.RepeatDelayMs < 0 || c.Input.RepeatIntervalMs <= 0 || c.Input.ReleaseGapMs <= 0 {
		errs = append(errs, errors.New("input timings must be positive"))
	}
	if c.Layout.TileSize <= 0 {
		errs = append(errs, errors.New("layout.tile_size must be positive"))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q must be score, time or none",
			c.Difficulty.Progression.Type))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
