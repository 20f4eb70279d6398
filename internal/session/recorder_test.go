package session

import (
	"github.com/juliakramer/wortschatz/internal/domain"
)

// fakeRecorder counts every mutation so tests can assert exactly one
// RecordAnswer per judgment and exact XP totals.
type fakeRecorder struct {
	mastery map[string]int
	answers []answerCall
	xp      int
	seen    []string
	best    int
}

type answerCall struct {
	category string
	de       string
	correct  bool
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{mastery: make(map[string]int)}
}

func (f *fakeRecorder) Mastery(category, de string) int {
	return f.mastery[domain.WordKey(category, de)]
}

func (f *fakeRecorder) RecordAnswer(category, de string, correct bool) {
	f.answers = append(f.answers, answerCall{category, de, correct})
}

func (f *fakeRecorder) AddXP(amount int) { f.xp += amount }

func (f *fakeRecorder) MarkSeen(category, de string) {
	f.seen = append(f.seen, domain.WordKey(category, de))
}

func (f *fakeRecorder) RecordBestSpeed(score int) bool {
	if score > f.best {
		f.best = score
		return true
	}
	return false
}

// testPool builds n distinct entries named w0..w(n-1).
func testPool(n int) []domain.WordEntry {
	pool := make([]domain.WordEntry, n)
	for i := range pool {
		pool[i] = domain.WordEntry{
			De: "de" + string(rune('a'+i)),
			En: "en" + string(rune('a'+i)),
		}
	}
	return pool
}
