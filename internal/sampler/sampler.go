// Package sampler implements the weighted spaced-repetition draw that
// decides which words a round presents. Low-mastery words are drawn
// proportionally more often, but every word keeps a strictly positive
// weight so nothing ever becomes unreachable.
package sampler

import (
	"math/rand"

	"github.com/juliakramer/wortschatz/internal/domain"
)

// MasteryFunc reports the mastery level for a pool entry.
type MasteryFunc func(w domain.WordEntry) int

// Weight maps a mastery level to its sampling weight: mastery 0 weighs
// 6, mastery 5 weighs 1. Out-of-range input is clamped so the weight
// can never reach zero or go negative.
func Weight(mastery int) float64 {
	if mastery < domain.MasteryMin {
		mastery = domain.MasteryMin
	}
	if mastery > domain.MasteryMax {
		mastery = domain.MasteryMax
	}
	return float64(domain.MasteryMax - mastery + 1)
}

// WeightedSample draws up to n entries from pool without replacement,
// each draw proportional to the entries' current weights. The result
// length is min(n, len(pool)) and contains no duplicates; an empty
// pool yields an empty slice.
func WeightedSample(rng *rand.Rand, pool []domain.WordEntry, n int, mastery MasteryFunc) []domain.WordEntry {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}

	remaining := append([]domain.WordEntry(nil), pool...)
	weights := make([]float64, len(remaining))
	total := 0.0
	for i, w := range remaining {
		weights[i] = Weight(mastery(w))
		total += weights[i]
	}

	result := make([]domain.WordEntry, 0, n)
	for len(result) < n {
		r := rng.Float64() * total

		// Cumulative scan. If float summation drifts and the scan runs
		// off the end, the last candidate wins so a draw never comes
		// up empty.
		idx := len(remaining) - 1
		cum := 0.0
		for i := range remaining {
			cum += weights[i]
			if r < cum {
				idx = i
				break
			}
		}

		result = append(result, remaining[idx])
		total -= weights[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}
	return result
}

// Distractors picks up to n wrong options uniformly at random from the
// pool, excluding the correct entry by its word key. With fewer than
// n+1 entries the result is short; callers degrade to fewer options
// rather than failing.
func Distractors(rng *rand.Rand, pool []domain.WordEntry, correct domain.WordEntry, n int, fallbackCategory string) []domain.WordEntry {
	correctKey := correct.Key(fallbackCategory)

	candidates := make([]domain.WordEntry, 0, len(pool))
	for _, w := range pool {
		if w.Key(fallbackCategory) != correctKey {
			candidates = append(candidates, w)
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
