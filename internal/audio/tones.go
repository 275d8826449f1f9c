package audio

import (
	"time"

	"github.com/vovakirdan/star-quest/internal/core"
)

// Tone is one sine note.
type Tone struct {
	Freq     float64       // Hz
	Duration time.Duration // Audible length
	Gain     float64       // Linear amplitude, 0..1
	Delay    time.Duration // Offset from the cue
}

func tone(freq float64, ms int, gain float64) Tone {
	return Tone{Freq: freq, Duration: time.Duration(ms) * time.Millisecond, Gain: gain}
}

func (t Tone) after(ms int) Tone {
	t.Delay = time.Duration(ms) * time.Millisecond
	return t
}

// cueTones maps every cue to the notes it plays.
var cueTones = map[core.Cue][]Tone{
	core.CueTap:         {tone(640, 45, 0.03)},
	core.CueCoin:        {tone(920, 35, 0.03)},
	core.CueShield:      {tone(720, 70, 0.05)},
	core.CueShieldUsed:  {tone(520, 70, 0.05)},
	core.CueHit:         {tone(760, 55, 0.04)},
	core.CueMiss:        {tone(260, 70, 0.03)},
	core.CuePerfect:     {tone(980, 60, 0.05), tone(1220, 60, 0.04).after(90)},
	core.CuePlace:       {tone(740, 55, 0.04)},
	core.CueMatch:       {tone(740, 60, 0.04)},
	core.CueMismatch:    {tone(260, 70, 0.03)},
	core.CueLevelClear:  {tone(820, 90, 0.05)},
	core.CueCrash:       {tone(180, 120, 0.06)},
	core.CueTimeout:     {tone(200, 120, 0.06)},
	core.CueAward:       {tone(880, 90, 0.05)},
	core.CueFanfareLow:  {tone(880, 90, 0.05)},
	core.CueFanfareMid:  {tone(1040, 90, 0.04)},
	core.CueFanfareHigh: {tone(1320, 110, 0.035)},
}

// Tones returns the notes for cue, or nil for an unknown cue.
func Tones(cue core.Cue) []Tone {
	return cueTones[cue]
}
