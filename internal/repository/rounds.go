package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/juliakramer/wortschatz/internal/domain"
)

// RoundRepo persists finished round results.
type RoundRepo interface {
	Create(ctx context.Context, r *domain.RoundResult) error
	GetByID(ctx context.Context, id string) (*domain.RoundResult, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.RoundResult, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]*domain.RoundResult, error)
}

// SQLiteRoundRepo implements RoundRepo using a SQLite database.
type SQLiteRoundRepo struct {
	db *sql.DB
}

// NewSQLiteRoundRepo creates a new SQLiteRoundRepo.
func NewSQLiteRoundRepo(db *sql.DB) *SQLiteRoundRepo {
	return &SQLiteRoundRepo{db: db}
}

func (r *SQLiteRoundRepo) Create(ctx context.Context, res *domain.RoundResult) error {
	query := `INSERT INTO rounds (id, mode, category, score, total, xp_earned, new_best, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	playedAt := nowUTC()
	if !res.PlayedAt.IsZero() {
		playedAt = res.PlayedAt.UTC().Format(time.RFC3339)
	}
	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		string(res.Mode),
		res.Category,
		res.Score,
		res.Total,
		res.XPEarned,
		boolToInt(res.NewBest),
		playedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting round: %w", err)
	}
	return nil
}

func (r *SQLiteRoundRepo) GetByID(ctx context.Context, id string) (*domain.RoundResult, error) {
	query := `SELECT id, mode, category, score, total, xp_earned, new_best, played_at
		FROM rounds WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanRound(row)
}

func (r *SQLiteRoundRepo) ListRecent(ctx context.Context, limit int) ([]*domain.RoundResult, error) {
	query := `SELECT id, mode, category, score, total, xp_earned, new_best, played_at
		FROM rounds ORDER BY played_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent rounds: %w", err)
	}
	defer rows.Close()
	return r.scanRounds(rows)
}

func (r *SQLiteRoundRepo) ListByCategory(ctx context.Context, category string, limit int) ([]*domain.RoundResult, error) {
	query := `SELECT id, mode, category, score, total, xp_earned, new_best, played_at
		FROM rounds WHERE category = ? ORDER BY played_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("listing rounds by category: %w", err)
	}
	defer rows.Close()
	return r.scanRounds(rows)
}

// scanRound scans a single round from a *sql.Row.
func (r *SQLiteRoundRepo) scanRound(row *sql.Row) (*domain.RoundResult, error) {
	var res domain.RoundResult
	var mode string
	var newBest int
	var playedAtStr string

	err := row.Scan(&res.ID, &mode, &res.Category, &res.Score, &res.Total, &res.XPEarned, &newBest, &playedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("round: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning round: %w", err)
	}

	return r.populateRound(&res, mode, newBest, playedAtStr)
}

// scanRounds scans multiple rounds from *sql.Rows.
func (r *SQLiteRoundRepo) scanRounds(rows *sql.Rows) ([]*domain.RoundResult, error) {
	var results []*domain.RoundResult
	for rows.Next() {
		var res domain.RoundResult
		var mode string
		var newBest int
		var playedAtStr string

		if err := rows.Scan(&res.ID, &mode, &res.Category, &res.Score, &res.Total, &res.XPEarned, &newBest, &playedAtStr); err != nil {
			return nil, fmt.Errorf("scanning round: %w", err)
		}
		populated, err := r.populateRound(&res, mode, newBest, playedAtStr)
		if err != nil {
			return nil, err
		}
		results = append(results, populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rounds: %w", err)
	}
	return results, nil
}

func (r *SQLiteRoundRepo) populateRound(res *domain.RoundResult, mode string, newBest int, playedAtStr string) (*domain.RoundResult, error) {
	res.Mode = domain.Mode(mode)
	res.NewBest = intToBool(newBest)

	playedAt, err := time.Parse(time.RFC3339, playedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing played_at: %w", err)
	}
	res.PlayedAt = playedAt
	return res, nil
}
