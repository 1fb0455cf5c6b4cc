package crossing

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/registry"
	"github.com/vovakirdan/crossing/internal/sprite"
)

func testRuntime(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{IDPlain, IDAnimated} {
		if !registry.Exists(id) {
			t.Errorf("variant %q should be registered", id)
		}
	}
}

func TestNewMissingSpriteIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := New(IDAnimated, registry.Options{Sprite: missing})
	if !errors.Is(err, sprite.ErrMissingAsset) {
		t.Errorf("New() error = %v, expected ErrMissingAsset", err)
	}
}

func TestNewUnknownDifficulty(t *testing.T) {
	_, err := New(IDPlain, registry.Options{Difficulty: "nightmare"})
	if !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("New() error = %v, expected ErrUnknownDifficulty", err)
	}
}

func TestNewPreselectedDifficulty(t *testing.T) {
	g, err := New(IDAnimated, registry.Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Reset(testRuntime(1))

	if g.Round().State() != StatePlaying {
		t.Fatalf("preselected game should start playing, state = %v", g.Round().State())
	}
	if g.Round().Profile().Label != "Hard" {
		t.Errorf("profile = %q, expected Hard", g.Round().Profile().Label)
	}
	if _, ok := g.Round().Actor().Frame(); !ok {
		t.Error("animated variant should use the builtin frames")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() ([]core.Rect, core.GameState) {
		g := NewWithConfig(IDPlain, config.DefaultCrossingConfig(), nil)
		g.Reset(testRuntime(12345))
		g.Step(held(core.ActionSelect3))

		for i := 0; i < 400 && !g.State().AwaitingDecision; i++ {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Set(core.ActionUp)
			}
			if i%7 == 0 {
				in.Set(core.ActionLeft)
			}
			g.Step(in)
		}

		var rects []core.Rect
		for _, l := range g.Round().Lanes() {
			for _, o := range l.Obstacles() {
				rects = append(rects, o.Rect())
			}
		}
		rects = append(rects, g.Round().Actor().Rect())
		return rects, g.State()
	}

	rects1, state1 := run()
	rects2, state2 := run()

	if state1 != state2 {
		t.Errorf("states differ: %+v vs %+v", state1, state2)
	}
	if len(rects1) != len(rects2) {
		t.Fatalf("entity counts differ: %d vs %d", len(rects1), len(rects2))
	}
	for i := range rects1 {
		if rects1[i] != rects2[i] {
			t.Errorf("entity %d differs: %+v vs %+v", i, rects1[i], rects2[i])
		}
	}
}

func TestGameClickSelectsDifficulty(t *testing.T) {
	g := NewWithConfig(IDPlain, config.DefaultCrossingConfig(), nil)
	g.Reset(testRuntime(1))

	// Clicks before the first render have no viewport to map through
	early := core.NewInputFrame()
	early.AddClick(40, 9)
	g.Step(early)
	if g.Round().State() != StateSelecting {
		t.Fatal("click before render should be ignored")
	}

	g.Render(core.NewScreen(80, 24))

	in := core.NewInputFrame()
	in.AddClick(40, 9) // Second button on an 80x24 screen
	g.Step(in)

	if g.Round().State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", g.Round().State())
	}
	if g.Round().Profile().Label != "Easy" {
		t.Errorf("profile = %q, expected Easy", g.Round().Profile().Label)
	}
}

func TestGameSelectionStartsOnNextTick(t *testing.T) {
	tests := []struct {
		name  string
		frame func() core.InputFrame
	}{
		{"key", func() core.InputFrame { return held(core.ActionSelect2, core.ActionUp) }},
		{"click", func() core.InputFrame {
			f := held(core.ActionUp)
			f.AddClick(40, 9)
			return f
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithConfig(IDPlain, config.DefaultCrossingConfig(), nil)
			g.Reset(testRuntime(1))
			g.Render(core.NewScreen(80, 24))

			res := g.Step(tc.frame())
			if g.Round().State() != StatePlaying || g.Round().Profile().Label != "Easy" {
				t.Fatalf("state = %v, profile = %q, expected playing Easy", g.Round().State(), g.Round().Profile().Label)
			}
			if g.Round().Ticks() != 0 || len(res.Events) != 0 {
				t.Errorf("selection tick simulated play: ticks = %d, events = %v", g.Round().Ticks(), res.Events)
			}
			start := NewActor(1920, 1080, 50, nil, 0).Rect()
			if got := g.Round().Actor().Rect(); got != start {
				t.Errorf("chicken moved on the selection tick: %+v, expected %+v", got, start)
			}

			g.Step(held(core.ActionUp))
			if g.Round().Ticks() != 1 {
				t.Errorf("ticks after first play step = %d, expected 1", g.Round().Ticks())
			}
		})
	}
}

func TestGameReportsRoundResult(t *testing.T) {
	g := NewWithConfig(IDPlain, singleLaneConfig(profile(5, 100, 1, 1, 1)), nil)
	g.Reset(testRuntime(1))
	g.Step(held(core.ActionConfirm))

	var result core.StepResult
	for i := 0; i < 50; i++ {
		result = g.Step(core.NewInputFrame())
		if result.Round != nil {
			break
		}
	}

	if result.Round == nil {
		t.Fatal("expected a round result")
	}
	if result.Round.Won || !result.Has(core.EventCollision) {
		t.Errorf("expected a lost round with a collision event, got %+v", result)
	}
	if !result.State.AwaitingDecision {
		t.Error("state should await a decision")
	}

	// Nothing is simulated while the decision is pending
	if again := g.Step(core.NewInputFrame()); again.Round != nil || len(again.Events) != 0 {
		t.Errorf("pending decision should freeze the game, got %+v", again)
	}

	g.Resolve(core.DecisionQuit)
	if !g.State().GameOver {
		t.Error("quit should end the session")
	}
}

func TestGamePause(t *testing.T) {
	g := NewWithConfig(IDPlain, emptyRoadConfig(profile(5, 1, 1, 1, 1)), nil)
	g.Reset(testRuntime(1))
	g.Step(held(core.ActionConfirm))

	g.Step(held(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}

	before := g.Round().Actor().Rect()
	g.Step(held(core.ActionUp))
	if g.Round().Actor().Rect() != before {
		t.Error("paused game should not move the chicken")
	}

	g.Step(held(core.ActionPause, core.ActionUp))
	if g.State().Paused {
		t.Fatal("P should resume")
	}
	if g.Round().Actor().Rect().Y != before.Y-5 {
		t.Errorf("resumed tick should move the chicken, Y = %d", g.Round().Actor().Rect().Y)
	}
}

func TestRenderScreens(t *testing.T) {
	g := NewWithConfig(IDPlain, singleLaneConfig(profile(5, 100, 1, 1, 1)), nil)
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Select Difficulty") || !strings.Contains(out, "> 1. Test <") {
		t.Errorf("selection screen missing title or highlight:\n%s", out)
	}

	g.Step(held(core.ActionConfirm))
	for !g.State().AwaitingDecision {
		g.Step(core.NewInputFrame())
	}

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Game Over!", "Press Enter to try again or Escape to quit", "Crossings: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("lost screen missing %q:\n%s", want, out)
		}
	}
}
