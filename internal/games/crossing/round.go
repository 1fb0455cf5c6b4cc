package crossing

import (
	"context"
	"errors"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/sprite"
)

// State is the phase of the round controller.
type State int

const (
	StateSelecting State = iota // Waiting for a difficulty
	StatePlaying                // Chicken on the road
	StateLost                   // Hit by a car, waiting for retry or quit
	StateWon                    // Reached the winning line, waiting for retry or quit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// ErrAlreadySelected is returned when a difficulty is picked twice.
var ErrAlreadySelected = errors.New("crossing: difficulty already selected")

// Round ties the chicken and the lanes together and decides wins and losses.
// Lanes live for the whole session; the chicken is recreated on every retry.
type Round struct {
	cfg  config.CrossingConfig
	anim *sprite.Animation
	rng  Rand

	state      State
	difficulty int
	profile    config.DifficultyProfile
	actor      *Actor
	lanes      []*Lane

	cursor     int  // Highlighted button while selecting
	ticks      int  // Ticks played in the current round
	crossings  int  // Rounds won this session
	terminated bool // Player chose to quit
}

// NewRound creates a controller waiting on the difficulty selection.
func NewRound(cfg config.CrossingConfig, anim *sprite.Animation, rng Rand) *Round {
	return &Round{
		cfg:   cfg,
		anim:  anim,
		rng:   rng,
		state: StateSelecting,
	}
}

// Select fixes the difficulty, builds the lanes and starts the first round.
func (r *Round) Select(index int) error {
	if r.state != StateSelecting {
		return ErrAlreadySelected
	}
	profile, err := r.cfg.Profile(index)
	if err != nil {
		return err
	}

	r.difficulty = index
	r.profile = profile
	r.lanes = r.buildLanes()
	r.startRound()
	return nil
}

func (r *Round) buildLanes() []*Lane {
	layout := r.cfg.Lanes
	lanes := make([]*Lane, 0, layout.Count)
	for _, i := range layout.Indices() {
		spec := LaneSpec{
			Y:         layout.LaneY(i),
			Height:    layout.Height,
			Direction: layout.DirectionOf(i),
			CarW:      r.cfg.Obstacles.Width,
			CarH:      r.cfg.Obstacles.Height,
			WorldW:    r.cfg.World.Width,
		}
		lanes = append(lanes, NewLane(spec, r.profile, r.rng))
	}
	return lanes
}

func (r *Round) startRound() {
	r.actor = NewActor(r.cfg.World.Width, r.cfg.World.Height, r.cfg.Actor.Size, r.anim, r.cfg.Actor.AnimationSpeed)
	r.ticks = 0
	r.state = StatePlaying
}

// Step advances one tick. Outside of play nothing is simulated.
func (r *Round) Step(in core.InputFrame) []core.Event {
	switch r.state {
	case StateSelecting:
		r.stepSelecting(in)
		return nil
	case StatePlaying:
		return r.stepPlaying(in)
	default:
		return nil
	}
}

func (r *Round) stepPlaying(in core.InputFrame) []core.Event {
	var events []core.Event
	r.ticks++

	dx, dy := in.Axis()
	r.actor.Move(dx*r.profile.ActorSpeed, dy*r.profile.ActorSpeed)

	for _, l := range r.lanes {
		if l.Update() {
			events = append(events, core.EventSpawn)
		}
	}

	// A hit on the winning line still counts as a hit
	if r.collides() {
		r.state = StateLost
		return append(events, core.EventCollision)
	}
	if r.actor.Rect().Y <= r.cfg.World.WinningY {
		r.state = StateWon
		r.crossings++
		return append(events, core.EventWin)
	}

	r.actor.UpdateAnimation()
	return events
}

func (r *Round) collides() bool {
	box := r.actor.Rect()
	for _, l := range r.lanes {
		if l.Collides(box) {
			return true
		}
	}
	return false
}

// Resolve applies the player's answer to a finished round.
// It is ignored unless the round is lost or won.
func (r *Round) Resolve(d core.Decision) {
	if r.state != StateLost && r.state != StateWon {
		return
	}
	switch d {
	case core.DecisionRetry:
		r.startRound()
	case core.DecisionQuit:
		r.terminated = true
	}
}

// AwaitDecision blocks until a retry or quit decision arrives or ctx ends.
func AwaitDecision(ctx context.Context, decisions <-chan core.Decision) (core.Decision, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case d, ok := <-decisions:
			if !ok {
				return core.DecisionQuit, nil
			}
			if d == core.DecisionRetry || d == core.DecisionQuit {
				return d, nil
			}
		}
	}
}

// State returns the current phase.
func (r *Round) State() State {
	return r.state
}

// Finished reports whether the round ended and a decision is pending.
func (r *Round) Finished() bool {
	return (r.state == StateLost || r.state == StateWon) && !r.terminated
}

// Terminated reports whether the player quit the session.
func (r *Round) Terminated() bool {
	return r.terminated
}

// Actor returns the current chicken, nil before a difficulty is selected.
func (r *Round) Actor() *Actor {
	return r.actor
}

// Lanes returns the session's lanes.
func (r *Round) Lanes() []*Lane {
	return r.lanes
}

// Profile returns the selected difficulty.
func (r *Round) Profile() config.DifficultyProfile {
	return r.profile
}

// Ticks returns the ticks played in the current round.
func (r *Round) Ticks() int {
	return r.ticks
}

// Crossings returns the number of rounds won this session.
func (r *Round) Crossings() int {
	return r.crossings
}

// Result summarises the current round.
func (r *Round) Result() core.RoundResult {
	return core.RoundResult{
		Difficulty: r.profile.Label,
		Won:        r.state == StateWon,
		Ticks:      r.ticks,
	}
}
