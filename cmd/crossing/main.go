// crossing is a terminal game about getting a chicken across a busy road.
//
// Usage:
//
//	crossing list            - List available game variants
//	crossing play [game]     - Play a variant, or pick one from a menu
//	crossing serve           - Start SSH server for remote play
//	crossing scores <game>   - Show best sessions and per-difficulty stats
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible traffic
//	--db <path>         - Set database path (default: ~/.crossing/scores.db)
//	--config <path>     - Use a custom crossing.yaml
//	--log-file <path>   - Write logs to a file while the game owns the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game variants
	_ "github.com/vovakirdan/crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// logCloser closes the log file opened by newLogger, if any.
var logCloser io.Closer

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Chicken Crossing - get the chicken across the road",
	Long: `Chicken Crossing is a terminal arcade game. Pick a difficulty,
then steer the chicken through lanes of traffic to the far side.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly or from the menu
  serve    - Start SSH server for remote play
  scores   - View best sessions

Examples:
  crossing play
  crossing play crossing --difficulty hard
  crossing play crossing_animated --sound
  crossing serve --ssh :2222
  crossing scores crossing`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crossing.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. A full-screen command owns the
// terminal, so without a log file its logs are dropped.
func newLogger(fullScreen bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logCloser = f
		w = f
	case fullScreen:
		w = io.Discard
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), nil
}
