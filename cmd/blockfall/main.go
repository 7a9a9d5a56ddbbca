// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                  - Start menu
//	blockfall play             - Start a game directly
//	blockfall scores           - Show high scores
//	blockfall config           - Print the default configuration
//	blockfall list             - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible piece sequence
//	--db <path>           - Set database path (default: ~/.blockfall/scores.db)
//	--log-file <path>     - Log file (default: ~/.blockfall/blockfall.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Game flags, shared by the menu and play
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game for the terminal.

Available commands:
  play     - Start a game directly
  scores   - View high scores
  config   - Print the default configuration
  list     - Show registered games

Run without a command to open the start menu.

Examples:
  blockfall
  blockfall play --difficulty hard
  blockfall play --seed 42 --log-file blockfall.log --log-level debug
  blockfall scores`,
	SilenceUsage: true,
	Run:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.blockfall/blockfall.log", "Log file path (empty = discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the game logger from the global flags. The returned close
// function releases the log file.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		path := flagLogFile
		if strings.HasPrefix(path, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[2:])
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	blockfall.SetLogger(logger)
	return logger, closeFn, nil
}
