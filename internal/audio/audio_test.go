package audio

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/star-quest/internal/core"
)

func allCues() []core.Cue {
	var cues []core.Cue
	for c := core.CueTap; c <= core.CueFanfareHigh; c++ {
		cues = append(cues, c)
	}
	return cues
}

func TestEveryCueHasTones(t *testing.T) {
	for _, cue := range allCues() {
		tones := Tones(cue)
		if len(tones) == 0 {
			t.Errorf("cue %s has no tones", cue)
			continue
		}
		for _, tn := range tones {
			if tn.Freq <= 0 || tn.Duration <= 0 || tn.Gain <= 0 || tn.Gain > 0.1 {
				t.Errorf("cue %s has a bad tone %+v", cue, tn)
			}
		}
	}
}

func TestToneTable(t *testing.T) {
	tests := []struct {
		cue      core.Cue
		freq     float64
		ms       int
		expected int // number of notes
	}{
		{core.CueHit, 760, 55, 1},
		{core.CueMiss, 260, 70, 1},
		{core.CueCrash, 180, 120, 1},
		{core.CuePerfect, 980, 60, 2},
		{core.CueFanfareLow, 880, 90, 1},
		{core.CueFanfareMid, 1040, 90, 1},
		{core.CueFanfareHigh, 1320, 110, 1},
	}

	for _, tc := range tests {
		tones := Tones(tc.cue)
		if len(tones) != tc.expected {
			t.Errorf("%s: %d notes, expected %d", tc.cue, len(tones), tc.expected)
			continue
		}
		if tones[0].Freq != tc.freq || tones[0].Duration != time.Duration(tc.ms)*time.Millisecond {
			t.Errorf("%s: first note %+v, expected %vHz/%dms", tc.cue, tones[0], tc.freq, tc.ms)
		}
	}

	if d := Tones(core.CuePerfect)[1].Delay; d != 90*time.Millisecond {
		t.Errorf("perfect second note delay = %v, expected 90ms", d)
	}
}

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += k
		if !ok || k == 0 {
			return n, peak
		}
	}
}

func TestStreamLengthAndGain(t *testing.T) {
	rate := beep.SampleRate(48000)

	s, err := Stream(Tone{Freq: 440, Duration: 100 * time.Millisecond, Gain: 0.05}, rate)
	if err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}
	n, peak := drain(s)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("rendered %d samples, expected %d", n, rate.N(100*time.Millisecond))
	}
	if peak > 0.05+1e-9 || peak < 0.04 {
		t.Errorf("peak = %v, expected just under 0.05", peak)
	}
}

func TestStreamDelay(t *testing.T) {
	rate := beep.SampleRate(48000)

	tn := Tone{Freq: 440, Duration: 20 * time.Millisecond, Gain: 0.05, Delay: 50 * time.Millisecond}
	s, err := Stream(tn, rate)
	if err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}
	n, _ := drain(s)
	expected := rate.N(50*time.Millisecond) + rate.N(20*time.Millisecond)
	if n != expected {
		t.Errorf("rendered %d samples, expected %d", n, expected)
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})

	e := newEnvelope(src, 0.5, 1000)
	buf := make([][2]float64, 2000)
	n, _ := e.Stream(buf)
	if n != 1000 {
		t.Fatalf("envelope streamed %d samples, expected 1000", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0", buf[0][0])
	}
	if buf[500][0] != 0.5 {
		t.Errorf("middle sample = %v, expected 0.5", buf[500][0])
	}
	if buf[999][0] >= 0.01 {
		t.Errorf("last sample = %v, expected near 0", buf[999][0])
	}
	if k, ok := e.Stream(buf); k != 0 || ok {
		t.Errorf("drained envelope returned (%d, %v), expected (0, false)", k, ok)
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(log.New(io.Discard), false)

	// No device was opened: cues are dropped without panicking.
	for _, cue := range allCues() {
		p.Notify(cue, core.Heavy)
	}
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, expected 0", p.mixer.Len())
	}

	p.SetMuted(true)
	if !p.Muted() {
		t.Error("Muted() = false after SetMuted(true)")
	}
	p.Close()
}

func TestLogNotifier(t *testing.T) {
	var n core.Notifier = LogNotifier{}
	n.Notify(core.CueAward, core.Medium)

	n = LogNotifier{Logger: log.New(io.Discard)}
	n.Notify(core.CueAward, core.Medium)
}
