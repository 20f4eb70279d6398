package sampler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/stretchr/testify/assert"
)

func pool(n int) []domain.WordEntry {
	words := make([]domain.WordEntry, n)
	for i := range words {
		words[i] = domain.WordEntry{
			De:   fmt.Sprintf("wort-%d", i),
			En:   fmt.Sprintf("word-%d", i),
			Hint: "test",
		}
	}
	return words
}

func flatMastery(level int) MasteryFunc {
	return func(domain.WordEntry) int { return level }
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 6.0, Weight(0))
	assert.Equal(t, 1.0, Weight(5))
	assert.Equal(t, 6.0, Weight(-3), "below-range mastery clamps to max weight")
	assert.Equal(t, 1.0, Weight(9), "above-range mastery clamps to min weight")
}

func TestWeightedSample_EmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Empty(t, WeightedSample(rng, nil, 10, flatMastery(0)))
	assert.Empty(t, WeightedSample(rng, pool(3), 0, flatMastery(0)))
}

func TestWeightedSample_CappedAtPoolSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := WeightedSample(rng, pool(4), 10, flatMastery(0))
	assert.Len(t, got, 4)
}

// TestWeightedSample_FullDrawIsPermutation property-tests that drawing
// the whole pool returns every entry exactly once, in some order.
func TestWeightedSample_FullDrawIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		size := rng.Intn(20) + 1
		words := pool(size)
		mastery := func(w domain.WordEntry) int {
			return rng.Intn(6)
		}

		got := WeightedSample(rng, words, size, mastery)
		assert.Len(t, got, size, "trial %d", trial)

		seen := make(map[string]bool, size)
		for _, w := range got {
			assert.False(t, seen[w.De], "trial %d: duplicate %q", trial, w.De)
			seen[w.De] = true
		}
		assert.Len(t, seen, size, "trial %d: full draw must cover the pool", trial)
	}
}

func TestWeightedSample_DoesNotMutatePool(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	words := pool(8)
	before := append([]domain.WordEntry(nil), words...)

	WeightedSample(rng, words, 8, flatMastery(2))
	assert.Equal(t, before, words)
}

// TestWeightedSample_LowMasteryDrawnMoreOften verifies the spaced
// repetition bias: one unseen word among nine mastered ones is drawn
// far more often than any individual mastered word. 1000 single-entry
// draws; the unseen word's weight is 6 against 1, so a 5x margin over
// the busiest mastered word is expected with plenty of slack.
func TestWeightedSample_LowMasteryDrawnMoreOften(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	words := pool(10)
	words[0].De = "eins"
	mastery := func(w domain.WordEntry) int {
		if w.De == "eins" {
			return 0
		}
		return 5
	}

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		got := WeightedSample(rng, words, 1, mastery)
		counts[got[0].De]++
	}

	maxOther := 0
	for de, c := range counts {
		if de != "eins" && c > maxOther {
			maxOther = c
		}
	}
	assert.Greater(t, counts["eins"], 5*maxOther,
		"unseen word drawn %d times, busiest mastered word %d", counts["eins"], maxOther)
	assert.Greater(t, maxOther, 0, "mastered words must remain drawable")
}

func TestDistractors_ExcludesCorrectByKey(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	words := pool(10)

	for trial := 0; trial < 50; trial++ {
		got := Distractors(rng, words, words[3], 3, "numbers")
		assert.Len(t, got, 3)

		seen := make(map[string]bool)
		for _, w := range got {
			assert.NotEqual(t, "wort-3", w.De, "correct entry must be excluded")
			assert.False(t, seen[w.De], "distractors drawn without replacement")
			seen[w.De] = true
		}
	}
}

func TestDistractors_SmallPoolDegrades(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	got := Distractors(rng, pool(3), pool(3)[0], 3, "numbers")
	assert.Len(t, got, 2, "three-entry pool yields only two distractors")

	got = Distractors(rng, pool(1), pool(1)[0], 3, "numbers")
	assert.Empty(t, got)
}

func TestDistractors_MergedPoolKeysByOwnCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	// Same De text in two categories: only the entry with the matching
	// key is excluded.
	words := []domain.WordEntry{
		{De: "rot", En: "red", Hint: "h", Category: "colors"},
		{De: "rot", En: "rotten", Hint: "h", Category: "adjectives"},
		{De: "blau", En: "blue", Hint: "h", Category: "colors"},
	}

	got := Distractors(rng, words, words[0], 3, domain.AllCategories)
	assert.Len(t, got, 2)
	for _, w := range got {
		assert.False(t, w.De == "rot" && w.Category == "colors")
	}
}
