package session

import (
	"math/rand"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/sampler"
)

// FilterDifficulty returns the entries matching the tier (1-3).
// Tier 0 means "all". Entries without a difficulty are treated as
// tier 1.
func FilterDifficulty(pool []domain.WordEntry, tier int) []domain.WordEntry {
	if tier <= 0 {
		return pool
	}
	var out []domain.WordEntry
	for _, w := range pool {
		d := w.Difficulty
		if d == 0 {
			d = 1
		}
		if d == tier {
			out = append(out, w)
		}
	}
	return out
}

// SentenceRound is sentence comprehension: up to ten weighted-sampled
// sentences from the (optionally difficulty-filtered) pool, judged as
// multiple choice among full-sentence translations. Always DE→EN,
// 10 XP per correct answer.
type SentenceRound struct {
	choiceRound
	tier int
}

// NewSentenceRound builds a round over pool filtered to tier (0 = all).
// Distractor translations are drawn from the same filtered pool so the
// options stay at a comparable difficulty.
func NewSentenceRound(rng *rand.Rand, rec Recorder, category string, pool []domain.WordEntry, tier int) *SentenceRound {
	filtered := FilterDifficulty(pool, tier)

	masteryOf := func(w domain.WordEntry) int {
		return rec.Mastery(w.EffectiveCategory(category), w.De)
	}

	n := RoundSize
	if len(filtered) < n {
		n = len(filtered)
	}
	words := sampler.WeightedSample(rng, filtered, n, masteryOf)

	questions := make([]Question, len(words))
	for i, w := range words {
		questions[i] = newQuestion(rng, filtered, w, category, domain.DeToEn)
	}

	r := &SentenceRound{
		choiceRound: choiceRound{
			mode:      domain.ModeSentences,
			category:  category,
			questions: questions,
			phase:     PhaseQuestion,
			rec:       rec,
			rng:       rng,
		},
		tier: tier,
	}
	if len(questions) == 0 {
		r.phase = PhaseResults
	}
	return r
}

// Tier returns the difficulty filter the round was built with, 0 for
// all tiers.
func (r *SentenceRound) Tier() int { return r.tier }
