package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliakramer/wortschatz/internal/domain"
)

func TestTypedRound_CorrectAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rec := newFakeRecorder()
	pool := []domain.WordEntry{{De: "Straße", En: "street"}}
	r := NewTypedRound(rng, rec, "places", pool)

	w, ok := r.Word()
	require.True(t, ok)
	require.Equal(t, "Straße", w.De)

	j := r.Answer("  strasse ")
	assert.True(t, j.Correct)
	assert.Equal(t, RewardTyped, j.XPAwarded)
	assert.Equal(t, -1, j.CorrectIndex)
	assert.Equal(t, "Straße", j.CorrectText)

	r.Continue()
	assert.Equal(t, PhaseResults, r.Phase())
	assert.Equal(t, 1, r.Score())
	assert.Equal(t, RewardTyped, rec.xp)
}

func TestTypedRound_WrongAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rec := newFakeRecorder()
	pool := []domain.WordEntry{{De: "Hund", En: "dog"}}
	r := NewTypedRound(rng, rec, "animals", pool)

	j := r.Answer("Katze")
	assert.False(t, j.Correct)
	assert.Zero(t, j.XPAwarded)
	assert.Equal(t, "Hund", j.CorrectText)
	assert.Zero(t, rec.xp)

	require.Len(t, rec.answers, 1)
	assert.False(t, rec.answers[0].correct)
}

func TestTypedRound_FullRound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rec := newFakeRecorder()
	r := NewTypedRound(rng, rec, "numbers", testPool(10))

	for r.Phase() != PhaseResults {
		w, ok := r.Word()
		require.True(t, ok)
		r.Answer(w.De)
		r.Continue()
	}

	assert.Equal(t, 10, r.Score())
	assert.Equal(t, 10, r.Total())
	assert.Equal(t, 10*RewardTyped, r.XPEarned())
	assert.Len(t, rec.answers, 10)
}

func TestTypedRound_SamplesAtMostTen(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	r := NewTypedRound(rng, newFakeRecorder(), "numbers", testPool(20))
	assert.Equal(t, RoundSize, r.Total())
}

func TestTypedRound_MasteredWordStillAwardsXP(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	rec := newFakeRecorder()
	pool := []domain.WordEntry{{De: "eins", En: "one"}}
	rec.mastery[domain.WordKey("numbers", "eins")] = domain.MasteryMax

	r := NewTypedRound(rng, rec, "numbers", pool)
	j := r.Answer("eins")

	assert.True(t, j.Correct)
	assert.Equal(t, RewardTyped, j.XPAwarded)
	assert.Equal(t, RewardTyped, rec.xp)
}

func TestTypedRound_AnswerIgnoredWhileJudged(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	rec := newFakeRecorder()
	r := NewTypedRound(rng, rec, "numbers", testPool(2))

	w, _ := r.Word()
	r.Answer(w.De)
	j := r.Answer(w.De)
	assert.Zero(t, j.XPAwarded)
	assert.Len(t, rec.answers, 1)
}

func TestTypedRound_EmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := NewTypedRound(rng, newFakeRecorder(), "numbers", nil)
	assert.Equal(t, PhaseResults, r.Phase())
	_, ok := r.Word()
	assert.False(t, ok)
}
