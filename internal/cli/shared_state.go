package cli

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/juliakramer/wortschatz/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// RecordRound persists a finished scored round to the history
// database. Failures are logged and swallowed; history is best-effort
// and must never interrupt play.
func (s *SharedState) RecordRound(mode domain.Mode, category string, score, total, xp int, newBest bool) {
	if s.App.Rounds == nil {
		return
	}
	res := &domain.RoundResult{
		ID:       uuid.NewString(),
		Mode:     mode,
		Category: category,
		Score:    score,
		Total:    total,
		XPEarned: xp,
		NewBest:  newBest,
		PlayedAt: time.Now().UTC(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.App.Rounds.Create(ctx, res); err != nil {
		s.App.Logger.Warn("recording round failed", "error", err)
	}
}
