package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game directly, skipping the menu.

Controls:
  Left/Right, h/l  - Move
  Up, x            - Rotate clockwise
  z                - Rotate counter-clockwise
  Down, j          - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest speed, longer respawn delay
  normal - Start at 30% speed-up, progresses to max
  hard   - Start at 70% speed-up, shorter respawn delay
  fixed  - No progression, gravity stays at gravity_ms

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --config ./my-blockfall.toml
  blockfall play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runtimeConfig returns the frame settings for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is not fatal: the game runs
// without saving scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// applyGameFlags passes --config and --difficulty to the game package.
func applyGameFlags(difficulty string) error {
	if _, ok := config.ParsePreset(difficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(difficulty)
	return nil
}

// playGame creates a game and runs it until the player quits.
func playGame(cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	game, err := registry.Create(blockfall.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	logger.Info("game started", "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", flagDifficulty)
	return tui.Run(game, store, cfg, logger)
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := applyGameFlags(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := playGame(runtimeConfig(), store, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
