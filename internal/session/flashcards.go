package session

import (
	"math/rand"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/sampler"
)

// FlashcardRound presents the whole category pool as browsable cards
// in weighted order. The learner self-grades ("knew it" / "still
// learning"), which records an answer but never awards XP. Browsing
// past a card only marks it seen.
type FlashcardRound struct {
	category string
	cards    []domain.WordEntry
	idx      int
	revealed bool
	rec      Recorder
}

// NewFlashcardRound orders the full pool by weighted sampling so weak
// words surface first.
func NewFlashcardRound(rng *rand.Rand, rec Recorder, category string, pool []domain.WordEntry) *FlashcardRound {
	masteryOf := func(w domain.WordEntry) int {
		return rec.Mastery(w.EffectiveCategory(category), w.De)
	}
	return &FlashcardRound{
		category: category,
		cards:    sampler.WeightedSample(rng, pool, len(pool), masteryOf),
		rec:      rec,
	}
}

func (r *FlashcardRound) Category() string { return r.category }
func (r *FlashcardRound) Empty() bool      { return len(r.cards) == 0 }
func (r *FlashcardRound) Len() int         { return len(r.cards) }
func (r *FlashcardRound) Index() int       { return r.idx }
func (r *FlashcardRound) Revealed() bool   { return r.revealed }

// Card returns the card under the cursor.
func (r *FlashcardRound) Card() (domain.WordEntry, bool) {
	if r.Empty() {
		return domain.WordEntry{}, false
	}
	return r.cards[r.idx], true
}

// Mastery returns the current card's mastery for the star display.
func (r *FlashcardRound) Mastery() int {
	w, ok := r.Card()
	if !ok {
		return 0
	}
	return r.rec.Mastery(w.EffectiveCategory(r.category), w.De)
}

// Reveal flips the card face up.
func (r *FlashcardRound) Reveal() { r.revealed = true }

// Next marks the current card seen and advances with wraparound.
func (r *FlashcardRound) Next() {
	if r.Empty() {
		return
	}
	w := r.cards[r.idx]
	r.rec.MarkSeen(w.EffectiveCategory(r.category), w.De)
	r.idx = (r.idx + 1) % len(r.cards)
	r.revealed = false
}

// Prev steps back with wraparound.
func (r *FlashcardRound) Prev() {
	if r.Empty() {
		return
	}
	r.idx = (r.idx - 1 + len(r.cards)) % len(r.cards)
	r.revealed = false
}

// Grade records the learner's self-report for the current card and
// advances. No XP: flashcards are self-graded.
func (r *FlashcardRound) Grade(knew bool) {
	w, ok := r.Card()
	if !ok {
		return
	}
	r.rec.RecordAnswer(w.EffectiveCategory(r.category), w.De, knew)
	r.idx = (r.idx + 1) % len(r.cards)
	r.revealed = false
}
