package domain

import "time"

// RoundResult is the durable record of one finished scored round,
// stored in the history database.
type RoundResult struct {
	ID       string
	Mode     Mode
	Category string
	Score    int
	Total    int
	XPEarned int
	NewBest  bool // speed rounds only: score beat the stored best
	PlayedAt time.Time
}
