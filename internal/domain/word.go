package domain

// WordEntry is a single vocabulary item loaded from a category file.
// Entries are immutable once loaded; progress is tracked separately
// in ProgressState keyed by WordKey.
type WordEntry struct {
	De          string `json:"de"`
	En          string `json:"en"`
	Hint        string `json:"hint"`
	Example     string `json:"example,omitempty"`
	Conjugation string `json:"conjugation,omitempty"`
	Context     string `json:"context,omitempty"`
	Opposite    string `json:"opposite,omitempty"`
	Category    string `json:"category,omitempty"`
	Difficulty  int    `json:"difficulty,omitempty"` // 1-3, sentence decks only
}

// WordKey builds the progress map key for a word within a category.
func WordKey(category, de string) string {
	return category + ":" + de
}

// EffectiveCategory returns the entry's own category when set (merged
// "all categories" pools carry it per entry), falling back otherwise.
func (w WordEntry) EffectiveCategory(fallback string) string {
	if w.Category != "" {
		return w.Category
	}
	return fallback
}

// Key returns the progress map key for this entry, resolving the
// category through EffectiveCategory.
func (w WordEntry) Key(fallbackCategory string) string {
	return WordKey(w.EffectiveCategory(fallbackCategory), w.De)
}
