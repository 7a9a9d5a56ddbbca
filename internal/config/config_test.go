package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var cfg BlockfallConfig
	if err := Decode(DefaultYAML(), FormatYAML, &cfg); err != nil {
		t.Fatalf("Decode(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBlockfallConfig()) {
		t.Errorf("embedded yaml = %+v, expected %+v", cfg, DefaultBlockfallConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadBlockfallFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBlockfallConfig()) {
		t.Errorf("LoadBlockfall() = %+v, expected defaults", cfg)
	}
}

func TestLoadBlockfallUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".blockfall", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "[timing]\ngravity_ms = 700\nmin_gravity_ms = 100\nspawn_delay_ms = 250\n"
	if err := os.WriteFile(filepath.Join(dir, "blockfall.toml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall() error = %v", err)
	}
	if cfg.Timing.GravityMs != 700 || cfg.Timing.SpawnDelayMs != 250 {
		t.Errorf("Timing = %+v, expected values from the toml file", cfg.Timing)
	}
	if cfg.Arena.Width != 20 {
		t.Errorf("Arena.Width = %d, expected default 20", cfg.Arena.Width)
	}
}

func TestLoadBlockfallCustomYAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "arena:\n  width: 24\nrandomizer:\n  preview: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall() error = %v", err)
	}
	if cfg.Arena.Width != 24 {
		t.Errorf("Arena.Width = %d, expected 24", cfg.Arena.Width)
	}
	if cfg.Arena.Height != 46 {
		t.Errorf("Arena.Height = %d, expected default 46", cfg.Arena.Height)
	}
	if cfg.Randomizer.Preview != 6 {
		t.Errorf("Randomizer.Preview = %d, expected 6", cfg.Randomizer.Preview)
	}
}

func TestLoadBlockfallCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlockfall(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("[arena\nwidth = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlockfall(broken); err == nil {
		t.Error("unparseable custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("arena:\n  width: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBlockfall(invalid)
	if err == nil || !strings.Contains(err.Error(), "arena.width") {
		t.Errorf("LoadBlockfall(invalid) error = %v, expected arena.width complaint", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BlockfallConfig)
		want   string
	}{
		{"odd height", func(c *BlockfallConfig) { c.Arena.Height = 45 }, "arena.height"},
		{"odd spawn", func(c *BlockfallConfig) { c.Spawn.X = 7 }, "must be even"},
		{"spawn outside", func(c *BlockfallConfig) { c.Spawn.X = 16 }, "does not fit"},
		{"zero gravity", func(c *BlockfallConfig) { c.Timing.GravityMs = 0 }, "gravity_ms"},
		{"min above base", func(c *BlockfallConfig) { c.Timing.MinGravityMs = 600 }, "min_gravity_ms"},
		{"short preview", func(c *BlockfallConfig) { c.Randomizer.Preview = 1 }, "preview"},
		{"bad progression", func(c *BlockfallConfig) { c.Difficulty.Progression.Type = "lines" }, "progression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, expected mention of %q", err, tt.want)
			}
		})
	}
}

func TestEncodeFormats(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	cfg.Spawn.X = 10

	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := Encode(cfg, format)
		if err != nil {
			t.Fatalf("Encode(%s) error = %v", format, err)
		}
		if !strings.Contains(string(data), "gravity_ms") {
			t.Errorf("Encode(%s) output lacks gravity_ms:\n%s", format, data)
		}

		var back BlockfallConfig
		if err := Decode(data, format, &back); err != nil {
			t.Fatalf("Decode(%s) error = %v", format, err)
		}
		if !reflect.DeepEqual(back, cfg) {
			t.Errorf("Decode(Encode(%s)) = %+v, expected %+v", format, back, cfg)
		}
	}

	if _, err := Encode(cfg, Format("ini")); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestFormatForPath(t *testing.T) {
	if FormatForPath("a/b/blockfall.TOML") != FormatTOML {
		t.Error("expected toml for .TOML")
	}
	if FormatForPath("blockfall.yml") != FormatYAML {
		t.Error("expected yaml for .yml")
	}
}

func TestApplyBlockfallPreset(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	ApplyBlockfallPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}
	if cfg.Timing.SpawnDelayMs != 600 {
		t.Errorf("hard SpawnDelayMs = %d, expected 600", cfg.Timing.SpawnDelayMs)
	}

	ApplyBlockfallPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyBlockfallPreset(&cfg, "")
	if !reflect.DeepEqual(before, cfg) {
		t.Error("empty preset should leave the config alone")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) rejected", s)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) accepted")
	}
}

func TestDifficultyGravityInterval(t *testing.T) {
	cfg := DefaultBlockfallConfig().Difficulty
	d := NewDifficultyManager(cfg)
	base := 500 * time.Millisecond
	minimum := 80 * time.Millisecond

	if got := d.GravityInterval(base, minimum, 0, 0); got != base {
		t.Errorf("GravityInterval at start = %v, expected %v", got, base)
	}
	// Halfway: speed 1 + 0.5*4 = 3.
	if got := d.GravityInterval(base, minimum, 75, 0); got != base/3 {
		t.Errorf("GravityInterval halfway = %v, expected %v", got, base/3)
	}
	// Max: speed 5 gives 100ms.
	if got := d.GravityInterval(base, minimum, 1000, 0); got != 100*time.Millisecond {
		t.Errorf("GravityInterval at max = %v, expected 100ms", got)
	}
	if got := d.GravityInterval(base, 200*time.Millisecond, 1000, 0); got != 200*time.Millisecond {
		t.Errorf("GravityInterval clamp = %v, expected 200ms", got)
	}

	d.SetEnabled(false)
	if got := d.GravityInterval(base, minimum, 1000, 0); got != base {
		t.Errorf("GravityInterval disabled = %v, expected %v", got, base)
	}
}

func TestDifficultyDisplayLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultBlockfallConfig().Difficulty)

	if got := d.DisplayLevel(0, 0); got != 1 {
		t.Errorf("DisplayLevel(0) = %d, expected 1", got)
	}
	if got := d.DisplayLevel(150, 0); got != 10 {
		t.Errorf("DisplayLevel(150) = %d, expected 10", got)
	}

	d.SetInitialLevel(2.0)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Level after SetInitialLevel(2) = %v, expected clamp to 1", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1, Levels: 5},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(999, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, expected 0.5", got)
	}
	if got := d.Speed(0, 100); got != 2.0 {
		t.Errorf("Speed(ticks=100) = %v, expected 2", got)
	}
}
