package session

import "math/rand"

// Feedback lines shown after a judged answer, in the app's German
// voice.
var (
	correctMessages = []string{
		"Sehr gut! 🎉",
		"Richtig! ✓",
		"Perfekt! ⭐",
		"Wunderbar! 🌟",
		"Genau! 👍",
		"Toll! 🚀",
		"Ausgezeichnet! 🏆",
		"Fantastisch! ✨",
	}
	wrongMessages = []string{
		"Nicht ganz, weiter so!",
		"Fast! Versuch es nochmal.",
		"Falsch, aber du lernst!",
		"Keine Sorge, das kommt noch!",
		"Nah dran! Bleib dran.",
	}
)

// Feedback picks a random encouragement line for the judgment.
func Feedback(rng *rand.Rand, correct bool) string {
	if correct {
		return correctMessages[rng.Intn(len(correctMessages))]
	}
	return wrongMessages[rng.Intn(len(wrongMessages))]
}
