package session

// GradeBanner returns the German grade line for a finished round.
func GradeBanner(score, total int) string {
	if total == 0 {
		return "Keine Fragen gespielt."
	}
	pct := score * 100 / total
	switch {
	case pct == 100:
		return "PERFEKT! Ausgezeichnet! 🏆"
	case pct >= 70:
		return "Sehr gut! Weiter so! 🌟"
	case pct >= 50:
		return "Gut gemacht! 💪"
	default:
		return "Weiter üben! Übung macht den Meister. 📚"
	}
}
