package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best games recorded in the scores database.

The score is the number of pieces locked. Each entry also records the level
reached, the play time and the seed, so a game can be replayed with --seed.

Examples:
  blockfall scores
  blockfall scores --limit 25
  blockfall scores --tui
  blockfall scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := blockfall.GameID
	title := blockfall.New().Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, gameID, title, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-20s  %s\n", "Rank", "Pieces", "Level", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-20s  %s\n", "----", "------", "-----", "----", "----", "----")
	for i, e := range scores {
		played := (time.Duration(e.Frames) * time.Second / 60).Truncate(time.Second)
		fmt.Printf("  %-4d  %-6d  %-5d  %-8s  %-20d  %s\n",
			i+1, e.Score, e.Level, played, e.Seed, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f  Best level: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)
	}
}
