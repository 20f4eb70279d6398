package progress

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/juliakramer/wortschatz/internal/domain"
)

const dateLayout = "2006-01-02"

// Store owns the single ProgressState for the session and is the only
// mutation gateway to it. Every mutating call writes the whole state
// back through the BlobStore before returning, so a crash can lose at
// most the most recent mutation. Write failures are logged as warnings
// and never abort the session.
type Store struct {
	blob   BlobStore
	state  *domain.ProgressState
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by streak tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for persistence warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open loads the persisted state (defaulting on absence or corruption),
// applies the daily streak rule, persists the result, and returns the
// ready-to-use store.
func Open(blob BlobStore, opts ...Option) *Store {
	s := &Store{
		blob:   blob,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = s.load()
	s.updateStreak()
	s.save()
	return s
}

// load reads and decodes the blob. Absent or corrupt state silently
// becomes the default: losing a save file must never block playing.
func (s *Store) load() *domain.ProgressState {
	data, ok, err := s.blob.Get()
	if err != nil {
		s.logger.Warn("progress read failed, starting fresh", "error", err)
		return domain.NewProgressState()
	}
	if !ok {
		return domain.NewProgressState()
	}

	state := domain.NewProgressState()
	if err := json.Unmarshal(data, state); err != nil {
		s.logger.Warn("progress blob corrupt, starting fresh", "error", err)
		return domain.NewProgressState()
	}
	if state.Words == nil {
		state.Words = make(map[string]*domain.MasteryRecord)
	}
	return state
}

// updateStreak applies the daily streak rule: playing on consecutive
// calendar days extends the streak, a same-day reload leaves it alone,
// and any gap resets it to 1.
func (s *Store) updateStreak() {
	today := s.now().Format(dateLayout)
	if s.state.LastPlayed == today {
		return // already credited today
	}

	yesterday := s.now().AddDate(0, 0, -1).Format(dateLayout)
	if s.state.LastPlayed == yesterday {
		s.state.Streak++
	} else {
		s.state.Streak = 1
	}
	s.state.LastPlayed = today
}

// State exposes the loaded state for read-only display. Mutations go
// through the store methods so they are always persisted.
func (s *Store) State() *domain.ProgressState {
	return s.state
}

// Mastery returns the mastery level for a word, 0 when unseen.
func (s *Store) Mastery(category, de string) int {
	return s.state.Mastery(category, de)
}

// RecordAnswer applies one judged answer and persists.
func (s *Store) RecordAnswer(category, de string, correct bool) {
	s.state.Record(category, de, correct)
	s.save()
}

// AddXP awards experience points and persists. amount must be positive.
func (s *Store) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	s.state.XP += amount
	s.save()
}

// MarkSeen lazily creates a word's record without judging, persisting
// the change. Flashcard browsing uses this.
func (s *Store) MarkSeen(category, de string) {
	s.state.Touch(category, de)
	s.save()
}

// RecordBestSpeed updates the speed-round high-water mark. Returns
// true (and persists) only when score beats the stored best.
func (s *Store) RecordBestSpeed(score int) bool {
	if score <= s.state.BestSpeed {
		return false
	}
	s.state.BestSpeed = score
	s.save()
	return true
}

// Reset replaces the state with the default and persists it.
func (s *Store) Reset() {
	s.state = domain.NewProgressState()
	s.updateStreak()
	s.save()
}

func (s *Store) save() {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		s.logger.Warn("encoding progress failed", "error", err)
		return
	}
	if err := s.blob.Put(data); err != nil {
		// Non-fatal: the session continues in memory and the next
		// successful write recovers durability.
		s.logger.Warn("persisting progress failed", "error", err)
	}
}
