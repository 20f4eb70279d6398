package session

import (
	"math/rand"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/sampler"
)

// Question is one multiple-choice prompt. Options hold the correct
// answer at a random position among up to three distractors.
type Question struct {
	Word      domain.WordEntry
	Category  string // effective category for progress bookkeeping
	Direction domain.Direction
	Prompt    string
	Options   []string

	correct int
}

// CorrectIndex returns the position of the correct option.
func (q Question) CorrectIndex() int { return q.correct }

// CorrectText returns the correct answer's display text.
func (q Question) CorrectText() string { return q.Options[q.correct] }

// newQuestion builds a multiple-choice question for w against the
// pool. Distractor texts are drawn uniformly from the rest of the
// pool; entries whose display text collides with the answer (or with
// an already-picked distractor) are skipped so options stay distinct.
// Small pools degrade to fewer than four options.
func newQuestion(rng *rand.Rand, pool []domain.WordEntry, w domain.WordEntry, fallbackCategory string, dir domain.Direction) Question {
	optionText := func(e domain.WordEntry) string {
		if dir == domain.EnToDe {
			return e.De
		}
		return e.En
	}

	prompt := w.En
	if dir == domain.DeToEn {
		prompt = w.De
	}
	answer := optionText(w)

	var distractors []string
	taken := map[string]bool{answer: true}
	for _, e := range sampler.Distractors(rng, pool, w, len(pool), fallbackCategory) {
		text := optionText(e)
		if taken[text] {
			continue
		}
		taken[text] = true
		distractors = append(distractors, text)
		if len(distractors) == 3 {
			break
		}
	}

	correct := rng.Intn(len(distractors) + 1)
	options := make([]string, 0, len(distractors)+1)
	options = append(options, distractors[:correct]...)
	options = append(options, answer)
	options = append(options, distractors[correct:]...)

	return Question{
		Word:      w,
		Category:  w.EffectiveCategory(fallbackCategory),
		Direction: dir,
		Prompt:    prompt,
		Options:   options,
		correct:   correct,
	}
}
