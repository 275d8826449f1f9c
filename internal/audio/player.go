// Package audio turns feedback cues into short synthesized tones played
// through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/star-quest/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player is a core.Notifier backed by the speaker. It never blocks the
// caller for longer than a mixer insert and swallows every audio failure:
// when the device cannot be opened it stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	muted       bool
	initialized bool
	failed      bool
}

// NewPlayer creates a player. Nothing is opened until Initialize.
func NewPlayer(logger *log.Logger, muted bool) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
		muted:  muted,
	}
}

// Initialize opens the speaker. A failure is logged and leaves the player
// silent; the error is returned for callers that want to report it.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.failed {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		p.failed = true
		p.logger.Warn("audio unavailable, running silent", "err", err)
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// SetMuted toggles output without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Notify plays the tones for cue. Intensity only affects logging: the
// terminal has no haptic channel.
func (p *Player) Notify(cue core.Cue, intensity core.Intensity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	for _, t := range Tones(cue) {
		s, err := Stream(t, sampleRate)
		if err != nil {
			p.logger.Debug("skip tone", "cue", cue, "err", err)
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.logger.Debug("cue", "cue", cue, "intensity", intensity)
}

// Stream renders t as a finite streamer at rate, including its delay.
func Stream(t Tone, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0fHz: %w", t.Freq, err)
	}
	note := newEnvelope(sine, t.Gain, rate.N(t.Duration))
	if t.Delay <= 0 {
		return note, nil
	}
	return beep.Seq(beep.Silence(rate.N(t.Delay)), note), nil
}

// LogNotifier records cues in the log instead of playing them. Remote
// sessions use it: their terminal is not attached to this machine's
// speaker.
type LogNotifier struct {
	Logger *log.Logger
}

// Notify logs cue at debug level.
func (n LogNotifier) Notify(cue core.Cue, intensity core.Intensity) {
	if n.Logger == nil {
		return
	}
	n.Logger.Debug("cue", "cue", cue.String(), "intensity", intensity.String())
}
