package core

// Cue identifies a feedback event (a sound, a vibration).
type Cue int

const (
	CueTap Cue = iota
	CueCoin
	CueShield
	CueShieldUsed
	CueHit
	CueMiss
	CuePerfect
	CuePlace
	CueMatch
	CueMismatch
	CueLevelClear
	CueCrash
	CueTimeout
	CueAward
	CueFanfareLow
	CueFanfareMid
	CueFanfareHigh
)

var cueNames = [...]string{
	CueTap:         "tap",
	CueCoin:        "coin",
	CueShield:      "shield",
	CueShieldUsed:  "shield-used",
	CueHit:         "hit",
	CueMiss:        "miss",
	CuePerfect:     "perfect",
	CuePlace:       "place",
	CueMatch:       "match",
	CueMismatch:    "mismatch",
	CueLevelClear:  "level-clear",
	CueCrash:       "crash",
	CueTimeout:     "timeout",
	CueAward:       "award",
	CueFanfareLow:  "fanfare-low",
	CueFanfareMid:  "fanfare-mid",
	CueFanfareHigh: "fanfare-high",
}

// String returns the cue name.
func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Intensity is the strength of a cue.
type Intensity int

const (
	Light Intensity = iota
	Medium
	Heavy
)

// String returns the intensity name.
func (i Intensity) String() string {
	switch i {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Notifier receives fire-and-forget feedback. Implementations must not block
// the caller and must swallow their own failures.
type Notifier interface {
	Notify(cue Cue, intensity Intensity)
}

// NopNotifier discards every cue.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(Cue, Intensity) {}

// NotifierOrNop returns n, or a NopNotifier when n is nil.
func NotifierOrNop(n Notifier) Notifier {
	if n == nil {
		return NopNotifier{}
	}
	return n
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(cue Cue, intensity Intensity)

// Notify calls f.
func (f NotifierFunc) Notify(cue Cue, intensity Intensity) {
	f(cue, intensity)
}

// Recorder collects cues in order; used by tests and replays.
type Recorder struct {
	Cues []Cue
}

// Notify appends cue.
func (r *Recorder) Notify(cue Cue, _ Intensity) {
	r.Cues = append(r.Cues, cue)
}

// Count returns how many times cue was recorded.
func (r *Recorder) Count(cue Cue) int {
	n := 0
	for _, c := range r.Cues {
		if c == cue {
			n++
		}
	}
	return n
}
