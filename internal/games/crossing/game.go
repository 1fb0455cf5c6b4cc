// Package crossing implements the road crossing game.
// The player steers a chicken across lanes of traffic to the winning line.
// The simulation runs in world units and is scaled onto the screen at render time.
package crossing

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/registry"
	"github.com/vovakirdan/crossing/internal/sprite"
)

// Registered game IDs.
const (
	IDPlain    = "crossing"
	IDAnimated = "crossing_animated"
)

func init() {
	registry.Register(IDPlain, "Chicken Crossing", func(opts registry.Options) (registry.Game, error) {
		return New(IDPlain, opts)
	})
	registry.Register(IDAnimated, "Chicken Crossing (animated)", func(opts registry.Options) (registry.Game, error) {
		return New(IDAnimated, opts)
	})
}

// Game adapts a Round to the registry.Game interface.
type Game struct {
	id        string
	cfg       config.CrossingConfig
	anim      *sprite.Animation // nil for the plain variant
	preselect int               // Difficulty picked on the command line, -1 for none

	runtime  core.RuntimeConfig
	round    *Round
	paused   bool
	viewport core.Viewport // From the last Render, used to map clicks
}

// New creates a game variant. The animated variant resolves its sprite
// here, so a missing asset fails before anything is played.
func New(id string, opts registry.Options) (*Game, error) {
	cfg, err := config.LoadCrossing(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	g := &Game{id: id, cfg: cfg, preselect: -1}

	switch id {
	case IDPlain:
	case IDAnimated:
		name := cfg.Actor.Sprite
		if opts.Sprite != "" {
			name = opts.Sprite
		}
		if name == "" {
			name = sprite.BuiltinName
		}
		g.anim, err = sprite.Resolve(name)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("crossing: unknown variant %q", id)
	}

	if opts.Difficulty != "" {
		idx, _, err := cfg.ProfileByName(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		g.preselect = idx
	}

	return g, nil
}

// NewWithConfig creates a game from an already loaded configuration.
func NewWithConfig(id string, cfg config.CrossingConfig, anim *sprite.Animation) *Game {
	return &Game{id: id, cfg: cfg, anim: anim, preselect: -1}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.anim != nil {
		return "Chicken Crossing (animated)"
	}
	return "Chicken Crossing"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.CrossingConfig {
	return g.cfg
}

// Reset starts a new session with a generator seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	g.round = NewRound(g.cfg, g.anim, rand.New(rand.NewSource(cfg.Seed)))
	if g.preselect >= 0 {
		//nolint:errcheck // Index validated in New
		g.round.Select(g.preselect)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil || g.round.Terminated() {
		return core.StepResult{State: g.State()}
	}

	switch g.round.State() {
	case StateSelecting:
		// Play starts on the next tick, as with a key selection
		if g.handleClicks(in.Clicks) {
			return core.StepResult{State: g.State()}
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return core.StepResult{State: g.State()}
		}
	}

	wasPlaying := g.round.State() == StatePlaying
	events := g.round.Step(in)

	result := core.StepResult{State: g.State(), Events: events}
	if wasPlaying && g.round.Finished() {
		rr := g.round.Result()
		result.Round = &rr
	}
	return result
}

// handleClicks reports whether a click picked a difficulty.
func (g *Game) handleClicks(clicks []core.Click) bool {
	if g.viewport.CellsW <= 0 || g.viewport.CellsH <= 0 {
		return false
	}
	for _, c := range clicks {
		x, y := g.viewport.ToWorld(c.X, c.Y)
		if g.round.Click(x, y) {
			return true
		}
	}
	return false
}

// Resolve applies a retry or quit decision after a round ends.
func (g *Game) Resolve(d core.Decision) {
	if g.round != nil {
		g.round.Resolve(d)
	}
}

// Round exposes the round controller.
func (g *Game) Round() *Round {
	return g.round
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:            g.round.Crossings(),
		GameOver:         g.round.Terminated(),
		Paused:           g.paused,
		AwaitingDecision: g.round.Finished(),
	}
}
