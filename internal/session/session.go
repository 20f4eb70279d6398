// Package session implements the per-mode round state machines. Each
// round walks Setup → Question → Judged → … → Results, judging answers
// and pushing every mutation through the Recorder so progress is
// persisted write-through. Rounds know nothing about rendering; the
// TUI only translates key presses into these transitions.
package session

import "github.com/juliakramer/wortschatz/internal/domain"

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseQuestion
	PhaseJudged
	PhaseResults
)

// Recorder is the progress gateway rounds mutate through. Implemented
// by progress.Store; tests substitute a recording fake.
type Recorder interface {
	Mastery(category, de string) int
	RecordAnswer(category, de string, correct bool)
	AddXP(amount int)
	MarkSeen(category, de string)
	RecordBestSpeed(score int) (newBest bool)
}

// Fixed per-correct XP rewards. Flashcards are self-graded and award
// nothing.
const (
	RewardQuiz      = 10
	RewardTyped     = 15
	RewardSpeed     = 5
	RewardSentences = 10
)

// Reward returns the per-correct XP for a mode.
func Reward(m domain.Mode) int {
	switch m {
	case domain.ModeQuiz:
		return RewardQuiz
	case domain.ModeTyped:
		return RewardTyped
	case domain.ModeSpeed:
		return RewardSpeed
	case domain.ModeSentences:
		return RewardSentences
	}
	return 0
}

// RoundSize caps how many questions a quiz, typed, or sentence round
// asks.
const RoundSize = 10

// MinChoicePool is the smallest pool that can fill one correct option
// plus three distractors. Multiple-choice modes are unavailable below
// it; flashcards and typing stay playable with any non-empty pool.
const MinChoicePool = 4

// ModeAvailable reports whether a mode can run over a pool of the
// given size.
func ModeAvailable(m domain.Mode, poolSize int) bool {
	switch m {
	case domain.ModeQuiz, domain.ModeSpeed, domain.ModeSentences:
		return poolSize >= MinChoicePool
	default:
		return poolSize >= 1
	}
}

// Judgment is the outcome of one judged answer.
type Judgment struct {
	Correct      bool
	CorrectText  string
	CorrectIndex int // index of the correct option, -1 for typed answers
	XPAwarded    int
	Feedback     string
}
