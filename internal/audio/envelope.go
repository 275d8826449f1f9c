package audio

import (
	"github.com/gopxl/beep"
)

// fadeSamples is the attack and release length in samples at 48kHz (5ms).
const fadeSamples = 240

// envelope scales a streamer by gain and ramps the first and last samples
// to avoid clicks. It ends after total samples.
type envelope struct {
	s     beep.Streamer
	gain  float64
	pos   int
	total int
}

func newEnvelope(s beep.Streamer, gain float64, total int) *envelope {
	return &envelope{s: s, gain: gain, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = e.s.Stream(samples)
	fade := min(fadeSamples, e.total/2)
	for i := 0; i < n; i++ {
		amp := e.gain
		p := e.pos + i
		if fade > 0 {
			if p < fade {
				amp *= float64(p) / float64(fade)
			} else if r := e.total - p; r < fade {
				amp *= float64(r) / float64(fade)
			}
		}
		samples[i][0] *= amp
		samples[i][1] *= amp
	}
	e.pos += n
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}
