package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/crossing/internal/core"
)

// Player mixes cues onto the system speaker.
// A Player whose speaker failed to initialise stays silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
	logger *log.Logger
}

// NewPlayer creates a silent player; call Init to open the speaker.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger.WithPrefix("audio"),
	}
}

// Init opens the speaker with a 100ms buffer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues the cue for an event. Silent events are ignored.
func (p *Player) Play(e core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s, err := Cue(e, p.volume)
	if err != nil {
		p.logger.Warn("cannot build cue", "event", e, "error", err)
		return
	}
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all queued cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	p.ready = false
}
