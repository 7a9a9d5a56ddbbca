package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

// runMenu shows the start menu, runs the chosen screen and returns to the
// menu until the player quits.
func runMenu(_ *cobra.Command, _ []string) {
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
	cfg := runtimeConfig()
	difficulty := flagDifficulty
	title := blockfall.New().Title()

	for {
		res, err := tui.RunMenu(store, blockfall.GameID, title, difficulty, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = res.Config
		difficulty = res.Difficulty

		if res.Choice == tui.MenuQuit {
			break
		}
		if res.Choice == tui.MenuScores {
			if err := tui.RunScoreboard(store, blockfall.GameID, title, cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		flagDifficulty = difficulty
		blockfall.SetDifficultyPreset(difficulty)
		if err := playGame(cfg, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// A fixed --seed only applies to the first game
		cfg.Seed = time.Now().UnixNano()
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
