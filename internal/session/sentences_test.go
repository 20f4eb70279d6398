package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliakramer/wortschatz/internal/domain"
)

func sentencePool() []domain.WordEntry {
	return []domain.WordEntry{
		{De: "Ich bin müde.", En: "I am tired.", Difficulty: 1},
		{De: "Wo ist der Bahnhof?", En: "Where is the train station?", Difficulty: 1},
		{De: "Das Wetter ist schön.", En: "The weather is nice.", Difficulty: 1},
		{De: "Ich hätte gern einen Kaffee.", En: "I would like a coffee.", Difficulty: 1},
		{De: "Er hat den Zug verpasst.", En: "He missed the train.", Difficulty: 2},
		{De: "Wir treffen uns morgen.", En: "We are meeting tomorrow.", Difficulty: 2},
		{De: "Sie hätte früher kommen sollen.", En: "She should have come earlier.", Difficulty: 3},
		{De: "Obwohl es regnete, gingen wir spazieren.", En: "Although it was raining, we went for a walk.", Difficulty: 3},
	}
}

func TestFilterDifficulty(t *testing.T) {
	pool := sentencePool()

	tests := []struct {
		name string
		tier int
		want int
	}{
		{"tier zero keeps all", 0, len(pool)},
		{"tier one", 1, 4},
		{"tier two", 2, 2},
		{"tier three", 3, 2},
		{"unknown tier empty", 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterDifficulty(pool, tt.tier), tt.want)
		})
	}
}

func TestFilterDifficulty_MissingDefaultsToOne(t *testing.T) {
	pool := []domain.WordEntry{
		{De: "Hallo.", En: "Hello."},
		{De: "Na klar.", En: "Of course.", Difficulty: 2},
	}
	got := FilterDifficulty(pool, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Hallo.", got[0].De)
}

func TestSentenceRound_AlwaysDeToEn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rec := newFakeRecorder()
	r := NewSentenceRound(rng, rec, "sentences", sentencePool(), 0)

	require.Equal(t, len(sentencePool()), r.Total())
	for r.Phase() != PhaseResults {
		q, _ := r.Question()
		assert.Equal(t, domain.DeToEn, q.Direction)
		assert.Equal(t, q.Word.De, q.Prompt)
		r.Answer(q.CorrectIndex())
		r.Continue()
	}
	assert.Equal(t, len(sentencePool())*RewardSentences, r.XPEarned())
}

func TestSentenceRound_TierFiltersQuestionsAndDistractors(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rec := newFakeRecorder()
	r := NewSentenceRound(rng, rec, "sentences", sentencePool(), 1)

	tier1 := make(map[string]bool)
	for _, w := range FilterDifficulty(sentencePool(), 1) {
		tier1[w.En] = true
	}

	require.Equal(t, 4, r.Total())
	assert.Equal(t, 1, r.Tier())
	for r.Phase() != PhaseResults {
		q, _ := r.Question()
		for _, opt := range q.Options {
			assert.True(t, tier1[opt], "option %q outside tier", opt)
		}
		r.Answer(q.CorrectIndex())
		r.Continue()
	}
}

func TestSentenceRound_EmptyTier(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := NewSentenceRound(rng, newFakeRecorder(), "sentences", sentencePool(), 4)
	assert.Equal(t, PhaseResults, r.Phase())
	assert.Zero(t, r.Total())
}
