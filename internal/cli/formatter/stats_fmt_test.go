package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/juliakramer/wortschatz/internal/domain"
)

func TestFormatStats(t *testing.T) {
	state := domain.NewProgressState()
	state.XP = 420
	state.Streak = 7
	state.BestSpeed = 23

	cats := []CategoryStat{
		{Name: "numbers", Words: 10, Learned: 5, Completion: 0.5},
		{Name: "colors", Words: 8, Learned: 8, Completion: 1.0},
	}
	recent := []*domain.RoundResult{
		{
			Mode: domain.ModeQuiz, Category: "numbers",
			Score: 8, Total: 10, XPEarned: 80,
			PlayedAt: time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC),
		},
		{
			Mode: domain.ModeSpeed, Category: "colors",
			Score: 23, Total: 30, XPEarned: 115, NewBest: true,
			PlayedAt: time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC),
		},
	}

	out := FormatStats(state, cats, recent)

	assert.Contains(t, out, "420")
	assert.Contains(t, out, "7 Tage")
	assert.Contains(t, out, "23")
	assert.Contains(t, out, "numbers")
	assert.Contains(t, out, "5/10")
	assert.Contains(t, out, "8/8")
	assert.Contains(t, out, "+80 XP")
	assert.Contains(t, out, "neuer Rekord")
}

func TestFormatStats_Minimal(t *testing.T) {
	out := FormatStats(domain.NewProgressState(), nil, nil)
	assert.Contains(t, out, "FORTSCHRITT")
	assert.NotContains(t, out, "KATEGORIEN")
	assert.NotContains(t, out, "Speed-Run")
}

func TestRelativeDay(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "heute", RelativeDay("2026-08-23", now))
	assert.Equal(t, "gestern", RelativeDay("2026-08-22", now))
	assert.Equal(t, "2026-08-01", RelativeDay("2026-08-01", now))
	assert.Equal(t, "nie", RelativeDay("", now))
}
