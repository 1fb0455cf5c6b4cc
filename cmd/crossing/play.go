package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossing/internal/audio"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/platform/tui"
	"github.com/vovakirdan/crossing/internal/registry"
	"github.com/vovakirdan/crossing/internal/sprite"
	"github.com/vovakirdan/crossing/internal/storage"
)

var (
	flagDifficulty string
	flagSprite     string
	flagPlayer     string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the given variant. Without an argument a menu lists
every variant; Tab in the menu opens the scoreboard.

Controls:
  Arrows/WASD  - Move the chicken (hold to keep moving)
  1-4          - Pick a difficulty
  Up/Down      - Move the difficulty cursor
  Enter        - Confirm difficulty, or play again after a round
  Esc          - Quit after a round
  P            - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty:
  A label (baby, easy, hard, impossible) or a position (1-4) skips
  the selection screen.

Examples:
  crossing play
  crossing play crossing --difficulty hard
  crossing play crossing_animated --sprite ./my-chicken.yaml
  crossing play crossing --sound --volume 0.5
  crossing play crossing --config ./crossing.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty label or 1-based position")
	playCmd.Flags().StringVar(&flagSprite, "sprite", "", "Animation file for the animated variant")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with scores (default \"local\")")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(true)
	if err != nil {
		return err
	}

	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown game %q, run 'crossing list' to see available games", args[0])
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	opts := []tui.Option{tui.WithLogger(logger)}
	if flagSound {
		player := audio.NewPlayer(flagVolume, logger)
		if err := player.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			defer player.Close()
			opts = append(opts, tui.WithCues(player))
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   flagPlayer,
	}

	if len(args) == 1 {
		return playOnce(args[0], store, cfg, logger, opts)
	}
	return playFromMenu(store, cfg, logger, opts)
}

func gameOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Sprite:     flagSprite,
	}
}

// playOnce runs a single session of gameID.
func playOnce(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, opts []tui.Option) error {
	game, err := registry.Create(gameID, gameOptions())
	if err != nil {
		if errors.Is(err, sprite.ErrMissingAsset) {
			return fmt.Errorf("%w (pass --sprite or play the plain variant)", err)
		}
		return err
	}

	logger.Debug("starting game", "game", gameID, "fps", cfg.TickRate)
	return tui.Run(game, store, cfg, opts...)
}

// playFromMenu loops between the menu, the scoreboard and games until
// the player quits from the menu.
func playFromMenu(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, opts []tui.Option) error {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if menuResult.GameID == "" {
			return nil
		}

		// Fresh traffic for every session unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := playOnce(menuResult.GameID, store, cfg, logger, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
		}
	}
}
