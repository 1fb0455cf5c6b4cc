package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/crossing/internal/core"
)

// drain streams s to completion and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if v := max(buf[j][0], -buf[j][0]); v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestCueSilentEvents(t *testing.T) {
	s, err := Cue(core.EventSpawn, 1)
	if err != nil || s != nil {
		t.Errorf("Cue(EventSpawn) = (%v, %v), expected silence", s, err)
	}
}

func TestCueCollision(t *testing.T) {
	s, err := Cue(core.EventCollision, 1)
	if err != nil {
		t.Fatalf("Cue failed: %v", err)
	}

	n, peak := drain(t, s)
	if want := SampleRate.N(crashDuration); n != want {
		t.Errorf("crash length = %d samples, expected %d", n, want)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("crash peak = %f, expected within (0, 1]", peak)
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestCueWinArpeggio(t *testing.T) {
	s, err := Cue(core.EventWin, 1)
	if err != nil {
		t.Fatalf("Cue failed: %v", err)
	}

	n, peak := drain(t, s)
	if want := len(winNotes) * SampleRate.N(noteDuration); n != want {
		t.Errorf("arpeggio length = %d samples, expected %d", n, want)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("arpeggio peak = %f, expected within (0, 1]", peak)
	}
}

func TestCueZeroVolumeIsSilent(t *testing.T) {
	s, err := Cue(core.EventCollision, 0)
	if err != nil {
		t.Fatalf("Cue failed: %v", err)
	}
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("zero volume peak = %f, expected 0", peak)
	}
}

func TestCrashDecays(t *testing.T) {
	n := SampleRate.N(10 * time.Millisecond)
	buf := make([][2]float64, n+16)
	got, _ := newCrash(SampleRate, 10*time.Millisecond).Stream(buf)
	if got != n {
		t.Fatalf("crash streamed %d samples, expected %d", got, n)
	}

	first := max(buf[0][0], -buf[0][0])
	if first == 0 {
		t.Error("crash should start at full gain")
	}
	if buf[n-1][0] > 0.01 || buf[n-1][0] < -0.01 {
		t.Errorf("last crash sample = %f, expected near silence", buf[n-1][0])
	}
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer(1, nil)
	// Not initialised: must not touch the speaker
	p.Play(core.EventWin)
	p.Close()
}

func TestArpeggioNotesFadeOut(t *testing.T) {
	each := SampleRate.N(noteDuration)
	s, err := arpeggio(SampleRate, winNotes, noteDuration)
	if err != nil {
		t.Fatalf("arpeggio failed: %v", err)
	}

	buf := make([][2]float64, each)
	for i := range winNotes {
		if n, _ := s.Stream(buf); n != each {
			t.Fatalf("note %d streamed %d samples, expected %d", i, n, each)
		}
		if last := buf[each-1][0]; last > 0.01 || last < -0.01 {
			t.Errorf("note %d ends at %f, expected near silence", i, last)
		}
	}
}
