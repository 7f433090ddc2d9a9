package competitionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/pg"
)

const columns = `id, title, game_type, entry_fee, prize_pool, total_spots, participants, status, start_time, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanCompetition(row pgx.Row) (*domain.Competition, error) {
	var c domain.Competition
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.GameType,
		&c.EntryFee,
		&c.PrizePool,
		&c.TotalSpots,
		&c.Participants,
		&c.Status,
		&c.StartTime,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error) {
	query := `
		INSERT INTO competitions (id, title, game_type, entry_fee, prize_pool, total_spots, participants, status, start_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		c.ID, c.Title, c.GameType, c.EntryFee, c.PrizePool, c.TotalSpots, c.Participants, c.Status, c.StartTime,
	).Scan(&c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save competition", zap.String("id", c.ID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Competition, error) {
	query := `SELECT ` + columns + ` FROM competitions WHERE id = $1`
	c, err := scanCompetition(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get competition", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Competition, error) {
	query := `SELECT ` + columns + ` FROM competitions ORDER BY start_time`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch competitions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var competitions []domain.Competition
	for rows.Next() {
		c, err := scanCompetition(rows)
		if err != nil {
			zap.L().Error("failed to scan competition row", zap.Error(err))
			return nil, err
		}
		competitions = append(competitions, *c)
	}
	return competitions, rows.Err()
}

// ReserveSpot takes one spot in a single conditional update. It returns nil
// when the competition is missing, full or already in results.
func (r *Repository) ReserveSpot(ctx context.Context, id string) (*domain.Competition, error) {
	query := `
		UPDATE competitions
		SET participants = participants + 1
		WHERE id = $1 AND participants < total_spots AND status <> 'RESULTS'
		RETURNING ` + columns
	c, err := scanCompetition(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to reserve spot", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) ReleaseSpot(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE competitions
		SET participants = participants - 1
		WHERE id = $1 AND participants > 0
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to release spot", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.CompetitionStatus) (bool, error) {
	query := `
		UPDATE competitions
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update competition status", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
