package domain

// Mastery bounds. A word's mastery moves one step per judged answer and
// is clamped to this range, so every word keeps a positive sampling
// weight no matter how often it was answered.
const (
	MasteryMin = 0
	MasteryMax = 5

	// LearnedThreshold is the mastery level at which a word counts as
	// "learned" for dashboard statistics.
	LearnedThreshold = 3
)

// MasteryRecord tracks per-word learning progress. Created lazily on
// the first judged answer to a word; never deleted.
type MasteryRecord struct {
	Mastery int `json:"mastery"`
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// ProgressState is the learner's persisted state. There is exactly one
// instance per process, loaded at startup and written through after
// every mutation.
//
// The JSON shape is shared verbatim with the browser front end; field
// names must not change.
type ProgressState struct {
	XP         int                       `json:"xp"`
	Streak     int                       `json:"streak"`
	LastPlayed string                    `json:"lastPlayed"` // YYYY-MM-DD, local time
	BestSpeed  int                       `json:"bestSpeed"`
	Words      map[string]*MasteryRecord `json:"words"`
}

// NewProgressState returns the default (never-played) state.
func NewProgressState() *ProgressState {
	return &ProgressState{Words: make(map[string]*MasteryRecord)}
}

// Mastery returns the mastery level for a word, 0 when unseen.
func (s *ProgressState) Mastery(category, de string) int {
	if rec, ok := s.Words[WordKey(category, de)]; ok {
		return rec.Mastery
	}
	return MasteryMin
}

// Record applies one judged answer: mastery steps up or down (clamped)
// and the matching counter increments. The record is created on first
// use.
func (s *ProgressState) Record(category, de string, correct bool) {
	rec := s.ensure(category, de)
	if correct {
		rec.Correct++
		if rec.Mastery < MasteryMax {
			rec.Mastery++
		}
	} else {
		rec.Wrong++
		if rec.Mastery > MasteryMin {
			rec.Mastery--
		}
	}
}

// Touch creates the word's record without judging an answer. Flashcard
// browsing marks words as seen this way.
func (s *ProgressState) Touch(category, de string) {
	s.ensure(category, de)
}

func (s *ProgressState) ensure(category, de string) *MasteryRecord {
	if s.Words == nil {
		s.Words = make(map[string]*MasteryRecord)
	}
	key := WordKey(category, de)
	rec, ok := s.Words[key]
	if !ok {
		rec = &MasteryRecord{}
		s.Words[key] = rec
	}
	return rec
}

// WordsLearned counts words at or above the learned threshold.
func (s *ProgressState) WordsLearned() int {
	n := 0
	for _, rec := range s.Words {
		if rec.Mastery >= LearnedThreshold {
			n++
		}
	}
	return n
}

// CategoryCompletion returns the 0..1 fraction of the pool at or above
// the learned threshold.
func (s *ProgressState) CategoryCompletion(category string, pool []WordEntry) float64 {
	if len(pool) == 0 {
		return 0
	}
	learned := 0
	for _, w := range pool {
		if s.Mastery(w.EffectiveCategory(category), w.De) >= LearnedThreshold {
			learned++
		}
	}
	return float64(learned) / float64(len(pool))
}
