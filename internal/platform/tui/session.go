package tui

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/storage"
)

// Session is one player's view of the quest: their stars, their best scores
// and the sinks engines report to. A nil store keeps everything in memory.
type Session struct {
	ID       string
	Profile  string
	store    *storage.Store
	logger   *log.Logger
	notifier core.Notifier

	mu     sync.Mutex
	stars  storage.Stars
	best   map[string]int
	loaded map[string]bool // best already merged with the store
}

// NewSession creates a session for profile and loads its stars.
func NewSession(profile string, store *storage.Store, logger *log.Logger, notifier core.Notifier) *Session {
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		ID:       uuid.NewString(),
		Profile:  profile,
		store:    store,
		notifier: core.NotifierOrNop(notifier),
		best:     make(map[string]int),
		loaded:   make(map[string]bool),
	}
	s.logger = logger.With("profile", profile, "session", s.ID[:8])

	if store != nil {
		stars, err := store.LoadStars(profile)
		if err != nil {
			s.logger.Warn("could not load stars", "error", err)
		} else {
			s.stars = stars
		}
	}
	return s
}

// Stars returns a copy of the current star set.
func (s *Session) Stars() storage.Stars {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stars
}

// Unlocked reports whether the finale is open.
func (s *Session) Unlocked() bool {
	return s.Stars().Unlocked()
}

// Notifier returns the cue sink engines should use.
func (s *Session) Notifier() core.Notifier {
	return s.notifier
}

// Logger returns the session-scoped logger.
func (s *Session) Logger() *log.Logger {
	return s.logger
}

// Award records the star for gameID. It is the OnAward target handed to
// engines; repeated calls are harmless.
func (s *Session) Award(gameID string) {
	s.mu.Lock()
	had := s.stars.Has(gameID)
	s.stars.Set(gameID, true)
	count := s.stars.Count()
	s.mu.Unlock()

	if had || !storage.IsStarGame(gameID) {
		return
	}
	s.logger.Info("star earned", "game", gameID, "stars", count)

	if s.store != nil {
		if err := s.store.AwardStar(s.Profile, gameID); err != nil {
			s.logger.Error("could not save star", "game", gameID, "error", err)
		}
	}
}

// ResetStars clears every star for this profile.
func (s *Session) ResetStars() error {
	s.mu.Lock()
	s.stars = storage.Stars{}
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.ResetStars(s.Profile)
}

// Best returns the best known score for gameID.
func (s *Session) Best(gameID string) int {
	s.mu.Lock()
	best, loaded := s.best[gameID], s.loaded[gameID]
	s.mu.Unlock()
	if loaded || s.store == nil {
		return best
	}

	stored, err := s.store.BestScore(s.Profile, gameID)
	if err != nil {
		s.logger.Warn("could not load best score", "game", gameID, "error", err)
		return best
	}

	s.mu.Lock()
	s.best[gameID] = max(s.best[gameID], stored)
	s.loaded[gameID] = true
	best = s.best[gameID]
	s.mu.Unlock()
	return best
}

// RecordScore saves a finished round. Zero scores are not stored.
func (s *Session) RecordScore(gameID string, score int) {
	if score <= 0 {
		return
	}

	s.mu.Lock()
	s.best[gameID] = max(s.best[gameID], score)
	s.mu.Unlock()

	if s.store == nil {
		return
	}
	if _, err := s.store.SaveScore(s.Profile, gameID, score); err != nil {
		s.logger.Error("could not save score", "game", gameID, "error", err)
	}
}

// RuntimeConfig fills the per-game fields of base: star status, best score
// and the award and notification hooks.
func (s *Session) RuntimeConfig(gameID string, base core.RuntimeConfig) core.RuntimeConfig {
	cfg := base
	cfg.HasStar = s.Stars().Has(gameID)
	cfg.Best = s.Best(gameID)
	cfg.Notifier = s.notifier
	cfg.OnAward = func() { s.Award(gameID) }
	return cfg
}
