package sessionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/pg"
)

const columns = `id, competition_id, user_id, score, wrong_clicks, time_remaining, found_targets, status, settled, winnings, started_at, ended_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanSession(row pgx.Row) (*domain.GameSession, error) {
	var s domain.GameSession
	err := row.Scan(
		&s.ID,
		&s.CompetitionID,
		&s.UserID,
		&s.Score,
		&s.WrongClicks,
		&s.TimeRemaining,
		&s.FoundTargets,
		&s.Status,
		&s.Settled,
		&s.Winnings,
		&s.StartedAt,
		&s.EndedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create stores a new session. A second active session for the same user and
// competition is rejected with domain.ErrSessionExists.
func (r *Repository) Create(ctx context.Context, s *domain.GameSession) error {
	query := `
		INSERT INTO game_sessions (id, competition_id, user_id, score, wrong_clicks, time_remaining, found_targets, status, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.CompetitionID, s.UserID, s.Score, s.WrongClicks, s.TimeRemaining, s.FoundTargets, s.Status, s.StartedAt,
	)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return domain.ErrSessionExists
		}
		zap.L().Error("can't save game session", zap.String("id", s.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.GameSession, error) {
	query := `SELECT ` + columns + ` FROM game_sessions WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *Repository) GetActive(ctx context.Context, userID, competitionID string) (*domain.GameSession, error) {
	query := `SELECT ` + columns + ` FROM game_sessions WHERE user_id = $1 AND competition_id = $2 AND status = 'ACTIVE'`
	return r.get(ctx, query, userID, competitionID)
}

func (r *Repository) get(ctx context.Context, query string, args ...any) (*domain.GameSession, error) {
	s, err := scanSession(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get game session", zap.Error(err))
		return nil, err
	}
	return s, nil
}

// Archive writes the terminal state of a session that is still active in storage.
func (r *Repository) Archive(ctx context.Context, s *domain.GameSession) (bool, error) {
	query := `
		UPDATE game_sessions
		SET score = $1, wrong_clicks = $2, time_remaining = $3, found_targets = $4, status = $5, ended_at = $6
		WHERE id = $7 AND status = 'ACTIVE'
	`
	tag, err := r.db.Exec(ctx, query,
		s.Score, s.WrongClicks, s.TimeRemaining, s.FoundTargets, s.Status, s.EndedAt, s.ID,
	)
	if err != nil {
		zap.L().Error("failed to archive game session", zap.String("id", s.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Checkpoint saves the progress of a session that is still active in storage.
func (r *Repository) Checkpoint(ctx context.Context, s *domain.GameSession) (bool, error) {
	query := `
		UPDATE game_sessions
		SET score = $1, wrong_clicks = $2, time_remaining = $3, found_targets = $4
		WHERE id = $5 AND status = 'ACTIVE'
	`
	tag, err := r.db.Exec(ctx, query, s.Score, s.WrongClicks, s.TimeRemaining, s.FoundTargets, s.ID)
	if err != nil {
		zap.L().Error("failed to checkpoint game session", zap.String("id", s.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindForSettlement returns finished, unsettled sessions of competitions in results.
func (r *Repository) FindForSettlement(ctx context.Context, limit uint32) ([]domain.GameSession, error) {
	query := `
		SELECT s.id, s.competition_id, s.user_id, s.score, s.wrong_clicks, s.time_remaining, s.found_targets,
			s.status, s.settled, s.winnings, s.started_at, s.ended_at
		FROM game_sessions s
		JOIN competitions c ON c.id = s.competition_id
		WHERE c.status = 'RESULTS' AND s.status <> 'ACTIVE' AND NOT s.settled
		ORDER BY s.ended_at
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch sessions for settlement", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.GameSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			zap.L().Error("failed to scan game session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func (r *Repository) MarkSettled(ctx context.Context, id string, winnings int64) (bool, error) {
	query := `
		UPDATE game_sessions
		SET settled = TRUE, winnings = $1
		WHERE id = $2 AND status <> 'ACTIVE' AND NOT settled
	`
	tag, err := r.db.Exec(ctx, query, winnings, id)
	if err != nil {
		zap.L().Error("failed to mark session settled", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
