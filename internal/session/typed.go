package session

import (
	"math/rand"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/sampler"
)

// TypedRound asks the learner to type the German translation of up to
// ten weighted-sampled words. Answers are judged by normalized
// equality; 15 XP per correct answer.
type TypedRound struct {
	category string
	words    []domain.WordEntry
	idx      int
	phase    Phase
	score    int
	xp       int
	rec      Recorder
	rng      *rand.Rand
}

// NewTypedRound samples the round's words from pool.
func NewTypedRound(rng *rand.Rand, rec Recorder, category string, pool []domain.WordEntry) *TypedRound {
	masteryOf := func(w domain.WordEntry) int {
		return rec.Mastery(w.EffectiveCategory(category), w.De)
	}

	n := RoundSize
	if len(pool) < n {
		n = len(pool)
	}

	r := &TypedRound{
		category: category,
		words:    sampler.WeightedSample(rng, pool, n, masteryOf),
		phase:    PhaseQuestion,
		rec:      rec,
		rng:      rng,
	}
	if len(r.words) == 0 {
		r.phase = PhaseResults
	}
	return r
}

func (r *TypedRound) Mode() domain.Mode { return domain.ModeTyped }
func (r *TypedRound) Category() string  { return r.category }
func (r *TypedRound) Phase() Phase      { return r.phase }
func (r *TypedRound) Score() int        { return r.score }
func (r *TypedRound) XPEarned() int     { return r.xp }
func (r *TypedRound) Total() int        { return len(r.words) }
func (r *TypedRound) Number() int       { return r.idx + 1 }

// Word returns the current word; ok is false at Results.
func (r *TypedRound) Word() (domain.WordEntry, bool) {
	if r.idx >= len(r.words) {
		return domain.WordEntry{}, false
	}
	return r.words[r.idx], true
}

// Answer judges the typed input against the German text under
// normalization, records the answer, and moves to Judged.
func (r *TypedRound) Answer(input string) Judgment {
	if r.phase != PhaseQuestion {
		return Judgment{}
	}
	w := r.words[r.idx]
	correct := Normalize(input) == Normalize(w.De)

	r.rec.RecordAnswer(w.EffectiveCategory(r.category), w.De, correct)
	reward := 0
	if correct {
		r.score++
		reward = RewardTyped
		r.xp += reward
		r.rec.AddXP(reward)
	}
	r.phase = PhaseJudged

	return Judgment{
		Correct:      correct,
		CorrectText:  w.De,
		CorrectIndex: -1,
		XPAwarded:    reward,
		Feedback:     Feedback(r.rng, correct),
	}
}

// Continue leaves Judged for the next word or Results.
func (r *TypedRound) Continue() {
	if r.phase != PhaseJudged {
		return
	}
	r.idx++
	if r.idx >= len(r.words) {
		r.phase = PhaseResults
		return
	}
	r.phase = PhaseQuestion
}
