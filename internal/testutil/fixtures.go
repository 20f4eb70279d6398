package testutil

import "github.com/juliakramer/wortschatz/internal/domain"

// NumbersPool returns a small realistic category pool for tests.
func NumbersPool() []domain.WordEntry {
	return []domain.WordEntry{
		{De: "eins", En: "one", Hint: "the first number"},
		{De: "zwei", En: "two", Hint: "a pair"},
		{De: "drei", En: "three", Hint: "a trio"},
		{De: "vier", En: "four", Hint: "corners of a square"},
		{De: "fünf", En: "five", Hint: "fingers on a hand"},
		{De: "sechs", En: "six", Hint: "half a dozen"},
	}
}

// GreetingsPool returns a second category for merged-play tests.
func GreetingsPool() []domain.WordEntry {
	return []domain.WordEntry{
		{De: "hallo", En: "hello", Hint: "casual"},
		{De: "tschüss", En: "bye", Hint: "casual farewell"},
		{De: "guten Morgen", En: "good morning", Hint: "before noon"},
		{De: "gute Nacht", En: "good night", Hint: "before sleep"},
	}
}
