package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossing/internal/platform/tui"
	"github.com/vovakirdan/crossing/internal/registry"
	"github.com/vovakirdan/crossing/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best sessions for a game",
	Long: `Display the best sessions (most crossings) for a variant, followed by
wins and losses per difficulty. With --tui the interactive scoreboard
opens instead and the game argument is optional.

Examples:
  crossing scores crossing
  crossing scores crossing_animated --limit 20
  crossing scores --tui
  crossing scores crossing --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all sessions and rounds of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing game id, run 'crossing list' to see available games")
	}
	gameID := args[0]
	title, ok := gameTitle(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'crossing list' to see available games", gameID)
	}

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all records of %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Fprintf(out, "Best Sessions - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No crossings recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'crossing play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-9s  %s\n", "Rank", "Player", "Crossings", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-9s  %s\n", "----", "------", "---------", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %-9d  %s\n",
			i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if summary, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Sessions: %d  Best: %d  Average: %.1f  Total crossings: %d\n",
			summary.GamesCount, summary.HighScore, summary.AvgScore, summary.TotalScore)
	}

	stats, err := store.DifficultyStats(gameID)
	if err != nil {
		return fmt.Errorf("cannot retrieve difficulty stats: %w", err)
	}
	if len(stats) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-12s  %-5s  %-6s  %s\n", "Difficulty", "Wins", "Losses", "Fastest")
	fmt.Fprintf(out, "  %-12s  %-5s  %-6s  %s\n", "----------", "----", "------", "-------")
	for _, s := range stats {
		fastest := "-"
		if s.BestTicks > 0 {
			fastest = fmt.Sprintf("%d ticks", s.BestTicks)
		}
		fmt.Fprintf(out, "  %-12s  %-5d  %-6d  %s\n", s.Difficulty, s.Wins, s.Losses, fastest)
	}
	return nil
}

// gameTitle looks up a variant's display name without constructing it.
func gameTitle(id string) (string, bool) {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title, true
		}
	}
	return "", false
}
