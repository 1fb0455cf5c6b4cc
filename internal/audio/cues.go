// Package audio synthesises short sound cues for game events with gopxl/beep.
// Cues are generated on the fly, so the binary ships no sound assets.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/crossing/internal/core"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Cue timings
const (
	crashDuration = 250 * time.Millisecond
	noteDuration  = 90 * time.Millisecond
)

// Win arpeggio: C5 E5 G5 C6
var winNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// Cue returns the streamer for an event, or nil when the event is silent.
// Spawns happen several times a second and are not voiced.
func Cue(e core.Event, volume float64) (beep.Streamer, error) {
	switch e {
	case core.EventCollision:
		return withVolume(newCrash(SampleRate, crashDuration), volume), nil
	case core.EventWin:
		s, err := arpeggio(SampleRate, winNotes, noteDuration)
		if err != nil {
			return nil, err
		}
		return withVolume(s, volume), nil
	default:
		return nil, nil
	}
}

// arpeggio plays the notes one after another, each fading out.
func arpeggio(sr beep.SampleRate, notes []float64, each time.Duration) (beep.Streamer, error) {
	n := sr.N(each)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, err
		}
		parts = append(parts, effects.Transition(beep.Take(n, tone), n, 1, 0, effects.TransitionLinear))
	}
	return beep.Seq(parts...), nil
}

// withVolume scales a streamer linearly; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// newCrash returns white noise decaying linearly to silence over d.
func newCrash(sr beep.SampleRate, d time.Duration) beep.Streamer {
	n := sr.N(d)
	return effects.Transition(beep.Take(n, whiteNoise(1)), n, 1, 0, effects.TransitionLinear)
}

// whiteNoise is an endless stream of uniform samples in [-1, 1).
func whiteNoise(seed int64) beep.Streamer {
	rng := rand.New(rand.NewSource(seed))
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}
