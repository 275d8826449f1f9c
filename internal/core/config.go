package core

// RuntimeConfig is handed to an engine on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame requests per second (default 60)
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock

	HasStar  bool     // The star for this engine was already earned
	Best     int      // Persisted best score, engines keep it monotonic
	OnAward  func()   // Invoked at most once when the star is earned
	Notifier Notifier // Sound/haptic sink; nil means silent
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the round state of an engine.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState is what an engine reports to the platform after each step.
type GameState struct {
	Score int
	Best  int
	Phase Phase
	Star  bool // Star held, either from before or earned this session
}

// GameOver reports whether the round has been lost.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseLost
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State   GameState
	Awarded bool // The star was earned during this step
}
