package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/crossing/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	var got Options
	Register("test_stub", "Stub", func(opts Options) (Game, error) {
		got = opts
		return &stubGame{id: "test_stub"}, nil
	})

	if !Exists("test_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("test_stub", Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test_stub" {
		t.Errorf("ID() = %q, expected test_stub", g.ID())
	}
	if got.Difficulty != "hard" {
		t.Errorf("factory received %+v, expected difficulty hard", got)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", Options{}); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
}

func TestCreateFactoryError(t *testing.T) {
	sentinel := errors.New("boom")
	Register("test_failing", "Failing", func(Options) (Game, error) {
		return nil, sentinel
	})

	_, err := Create("test_failing", Options{})
	if !errors.Is(err, sentinel) {
		t.Errorf("Create error = %v, expected to wrap %v", err, sentinel)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })
}
