package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/games/crossing"
	"github.com/vovakirdan/crossing/internal/registry"
	"github.com/vovakirdan/crossing/internal/storage"
)

// HoldWindow is how long a direction stays held after its last key event.
// Terminals report presses only, and auto-repeat arrives with gaps.
const HoldWindow = 150 * time.Millisecond

// CuePlayer plays a sound for a game event.
type CuePlayer interface {
	Play(e core.Event)
}

// DecisionMsg carries the answer to a finished round.
type DecisionMsg struct {
	Owner    int64
	Decision core.Decision
	Err      error
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCues plays a sound for every game event.
func WithCues(c CuePlayer) Option {
	return func(m *Model) {
		m.cues = c
	}
}

// WithContext bounds decision waits by ctx, e.g. an SSH session.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.parent = ctx
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	id         int64
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	pending    core.InputFrame     // One-shot actions and clicks since the last tick
	held       map[core.Action]int // Ticks left before a direction is released
	holdTicks  int
	gameState  core.GameState
	decisions  chan core.Decision
	parent     context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	cues       CuePlayer
	logger     *log.Logger
	quitting   bool // Q pressed
	finished   bool // Player chose to quit after a round
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Player == "" {
		cfg.Player = storage.DefaultPlayer
	}

	m := Model{
		id:        nextModelID(),
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		pending:   core.NewInputFrame(),
		held:      make(map[core.Action]int),
		holdTicks: holdTicks(HoldWindow, cfg.TickRate),
		decisions: make(chan core.Decision, 1),
		parent:    context.Background(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.ctx, m.cancel = context.WithCancel(m.parent)
	m.logger = m.logger.WithPrefix("game")
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "player", m.config.Player, "seed", m.config.Seed)

	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.pending.AddClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Owner != m.id {
			return m, nil
		}
		return m.handleTick()

	case DecisionMsg:
		if msg.Owner != m.id {
			return m, nil
		}
		return m.handleDecision(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.endSession()
		return m, tea.Quit
	}

	if m.gameState.AwaitingDecision {
		switch action {
		case core.ActionConfirm:
			m.decide(core.DecisionRetry)
		case core.ActionCancel:
			m.decide(core.DecisionQuit)
		}
		return m, nil
	}

	switch {
	case isMovement(action):
		m.held[action] = m.holdTicks
		delete(m.held, opposite(action))
	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// decide hands a decision to the waiting command without blocking.
func (m Model) decide(d core.Decision) {
	select {
	case m.decisions <- d:
	default:
	}
}

// handleResize processes window resize events.
// The game works in world units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// frame merges one-shot input with held directions and ages the holds.
func (m Model) frame() core.InputFrame {
	f := m.pending.Clone()
	for a, left := range m.held {
		f.Set(a)
		if left <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = left - 1
		}
	}
	return f
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.id, m.config.TickRate)

	// Nothing is simulated while a decision is pending
	if m.gameState.AwaitingDecision || m.finished {
		m.pending.Clear()
		return m, next
	}

	result := m.game.Step(m.frame())
	m.gameState = result.State
	m.pending.Clear()

	if m.cues != nil {
		for _, e := range result.Events {
			m.cues.Play(e)
		}
	}

	cmds := []tea.Cmd{next}
	if result.Round != nil {
		m.recordRound(*result.Round)
		clear(m.held)
		m.drainDecisions()
		cmds = append(cmds, awaitDecisionCmd(m.ctx, m.id, m.decisions))
	}

	if m.gameState.GameOver {
		m.finished = true
		m.endSession()
		return m, tea.Quit
	}

	return m, tea.Batch(cmds...)
}

// drainDecisions drops keys pressed after the last decision was taken,
// so each round end waits for a fresh answer.
func (m Model) drainDecisions() {
	for {
		select {
		case <-m.decisions:
		default:
			return
		}
	}
}

// awaitDecisionCmd blocks off the update loop until Enter or Esc arrives.
func awaitDecisionCmd(ctx context.Context, owner int64, ch <-chan core.Decision) tea.Cmd {
	return func() tea.Msg {
		d, err := crossing.AwaitDecision(ctx, ch)
		return DecisionMsg{Owner: owner, Decision: d, Err: err}
	}
}

// handleDecision applies a retry or quit once the wait returns.
func (m Model) handleDecision(msg DecisionMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Debug("decision wait ended", "error", msg.Err)
		return m, nil
	}

	m.drainDecisions()
	if d, ok := m.game.(registry.Decider); ok {
		d.Resolve(msg.Decision)
	}
	m.gameState = m.game.State()
	m.logger.Info("round decision", "decision", msg.Decision)

	if m.gameState.GameOver {
		m.finished = true
		m.endSession()
		return m, tea.Quit
	}
	return m, nil
}

// recordRound stores a finished round; failures are logged and ignored.
func (m Model) recordRound(r core.RoundResult) {
	outcome := storage.OutcomeLost
	if r.Won {
		outcome = storage.OutcomeWon
	}
	m.logger.Info("round finished", "difficulty", r.Difficulty, "outcome", outcome, "ticks", r.Ticks)

	if m.store == nil {
		return
	}
	err := m.store.RecordRound(storage.RoundEntry{
		GameID:     m.game.ID(),
		Player:     m.config.Player,
		Difficulty: r.Difficulty,
		Outcome:    outcome,
		Ticks:      r.Ticks,
	})
	if err != nil {
		m.logger.Warn("cannot record round", "error", err)
	}
}

// endSession saves the crossing count once and releases the decision wait.
func (m *Model) endSession() {
	m.cancel()
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.game.State().Score
	m.logger.Info("session ended", "game", m.game.ID(), "crossings", score)
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.config.Player, score); err != nil {
		m.logger.Warn("cannot save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".crossing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.finished {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Finished returns true once the player quit after a round.
func (m Model) Finished() bool {
	return m.finished
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks pick a difficulty
	)

	_, err := p.Run()
	return err
}
