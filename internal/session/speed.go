package session

import (
	"math/rand"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/sampler"
)

// DefaultSpeedSeconds is the speed round's time budget in ticks.
const DefaultSpeedSeconds = 60

// SpeedRound redraws one multiple-choice question at a time until the
// tick budget runs out. Each draw is independent (with replacement
// across questions), direction chosen at random. 5 XP per correct
// answer; the final score competes with the persisted high-water mark.
//
// The round owns no timer. A scheduler feeds Tick; expiry and a user
// exit both funnel into Finish, which fires the Results transition
// exactly once no matter how the two race.
type SpeedRound struct {
	category  string
	pool      []domain.WordEntry
	phase     Phase
	remaining int
	score     int
	attempted int
	xp        int
	current   Question
	rec       Recorder
	rng       *rand.Rand
	newBest   bool
	done      bool
}

// NewSpeedRound starts a round over pool with the given tick budget
// (seconds). A non-positive budget falls back to the default.
func NewSpeedRound(rng *rand.Rand, rec Recorder, category string, pool []domain.WordEntry, seconds int) *SpeedRound {
	if seconds <= 0 {
		seconds = DefaultSpeedSeconds
	}
	r := &SpeedRound{
		category:  category,
		pool:      pool,
		phase:     PhaseQuestion,
		remaining: seconds,
		rec:       rec,
		rng:       rng,
	}
	if len(pool) == 0 {
		r.Finish()
		return r
	}
	r.draw()
	return r
}

func (r *SpeedRound) Mode() domain.Mode { return domain.ModeSpeed }
func (r *SpeedRound) Category() string  { return r.category }
func (r *SpeedRound) Phase() Phase      { return r.phase }
func (r *SpeedRound) Score() int        { return r.score }
func (r *SpeedRound) Attempted() int    { return r.attempted }
func (r *SpeedRound) XPEarned() int     { return r.xp }
func (r *SpeedRound) Remaining() int    { return r.remaining }

// Total reports attempted questions so RoundResult records score/total
// like the fixed-length modes.
func (r *SpeedRound) Total() int { return r.attempted }

// NewBest reports whether the finished round beat the stored best.
// Meaningless before Results.
func (r *SpeedRound) NewBest() bool { return r.newBest }

// Question returns the question on screen.
func (r *SpeedRound) Question() (Question, bool) {
	if r.done {
		return Question{}, false
	}
	return r.current, true
}

// Tick consumes one unit of the time budget; at zero the round
// finishes. Ticks after Finish are no-ops.
func (r *SpeedRound) Tick() {
	if r.done {
		return
	}
	r.remaining--
	if r.remaining <= 0 {
		r.Finish()
	}
}

// Answer judges the selected option and moves to Judged. A tick may
// have finished the round already; then the late answer is dropped.
func (r *SpeedRound) Answer(option int) Judgment {
	if r.done || r.phase != PhaseQuestion {
		return Judgment{}
	}
	q := r.current
	correct := option == q.correct
	r.attempted++

	r.rec.RecordAnswer(q.Category, q.Word.De, correct)
	reward := 0
	if correct {
		r.score++
		reward = RewardSpeed
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

// Continue leaves Judged by drawing the next question.
func (r *SpeedRound) Continue() {
	if r.done || r.phase != PhaseJudged {
		return
	}
	r.draw()
	r.phase = PhaseQuestion
}

// Finish ends the round: updates the best-score high-water mark and
// transitions to Results. Idempotent: the timer expiring and the
// learner leaving the mode may both call it without double-firing.
func (r *SpeedRound) Finish() {
	if r.done {
		return
	}
	r.done = true
	r.newBest = r.rec.RecordBestSpeed(r.score)
	r.phase = PhaseResults
}

// draw picks the next word by weight (independent of previous draws)
// and a random direction.
func (r *SpeedRound) draw() {
	masteryOf := func(w domain.WordEntry) int {
		return r.rec.Mastery(w.EffectiveCategory(r.category), w.De)
	}
	word := sampler.WeightedSample(r.rng, r.pool, 1, masteryOf)[0]

	dir := domain.EnToDe
	if r.rng.Intn(2) == 1 {
		dir = domain.DeToEn
	}
	r.current = newQuestion(r.rng, r.pool, word, r.category, dir)
}
