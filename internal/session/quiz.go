package session

import (
	"math/rand"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/sampler"
)

// choiceRound is the shared state machine for fixed-length
// multiple-choice rounds (quiz and sentences).
type choiceRound struct {
	mode      domain.Mode
	category  string // display label, may be the merged "all"
	questions []Question
	idx       int
	phase     Phase
	score     int
	xp        int
	rec       Recorder
	rng       *rand.Rand
}

func (r *choiceRound) Mode() domain.Mode { return r.mode }
func (r *choiceRound) Category() string  { return r.category }
func (r *choiceRound) Phase() Phase      { return r.phase }
func (r *choiceRound) Score() int        { return r.score }
func (r *choiceRound) XPEarned() int     { return r.xp }
func (r *choiceRound) Total() int        { return len(r.questions) }

// Number returns the 1-based index of the current question.
func (r *choiceRound) Number() int { return r.idx + 1 }

// Question returns the current question; ok is false at Results.
func (r *choiceRound) Question() (Question, bool) {
	if r.idx >= len(r.questions) {
		return Question{}, false
	}
	return r.questions[r.idx], true
}

// Answer judges the selected option, records the answer, awards XP on
// success, and moves to Judged. Out-of-range selections count as
// wrong. Calls outside the Question phase are ignored.
func (r *choiceRound) Answer(option int) Judgment {
	if r.phase != PhaseQuestion {
		return Judgment{}
	}
	q := r.questions[r.idx]
	correct := option == q.correct

	r.rec.RecordAnswer(q.Category, q.Word.De, correct)
	reward := 0
	if correct {
		r.score++
		reward = Reward(r.mode)
		r.xp += reward
		r.rec.AddXP(reward)
	}
	r.phase = PhaseJudged

	return Judgment{
		Correct:      correct,
		CorrectText:  q.CorrectText(),
		CorrectIndex: q.correct,
		XPAwarded:    reward,
		Feedback:     Feedback(r.rng, correct),
	}
}

// Continue leaves Judged for the next question, or Results when the
// sampled sequence is exhausted.
func (r *choiceRound) Continue() {
	if r.phase != PhaseJudged {
		return
	}
	r.idx++
	if r.idx >= len(r.questions) {
		r.phase = PhaseResults
		return
	}
	r.phase = PhaseQuestion
}

// QuizRound is the multiple-choice quiz: up to ten weighted-sampled
// words, alternating direction (EN→DE on odd questions, DE→EN on
// even), 10 XP per correct answer.
type QuizRound struct {
	choiceRound
}

// NewQuizRound samples the round's questions from pool. An empty or
// too-small pool yields a round already at Results; callers gate on
// ModeAvailable before offering the mode.
func NewQuizRound(rng *rand.Rand, rec Recorder, category string, pool []domain.WordEntry) *QuizRound {
	masteryOf := func(w domain.WordEntry) int {
		return rec.Mastery(w.EffectiveCategory(category), w.De)
	}

	n := RoundSize
	if len(pool) < n {
		n = len(pool)
	}
	words := sampler.WeightedSample(rng, pool, n, masteryOf)

	questions := make([]Question, len(words))
	for i, w := range words {
		dir := domain.EnToDe
		if i%2 == 1 {
			dir = domain.DeToEn
		}
		questions[i] = newQuestion(rng, pool, w, category, dir)
	}

	r := &QuizRound{choiceRound{
		mode:      domain.ModeQuiz,
		category:  category,
		questions: questions,
		phase:     PhaseQuestion,
		rec:       rec,
		rng:       rng,
	}}
	if len(questions) == 0 {
		r.phase = PhaseResults
	}
	return r
}
