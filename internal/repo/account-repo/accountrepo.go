package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.UserID,
		&account.Balance,
		&account.IsBanned,
		&account.BanReason,
		&account.BanExpiresAt,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Ensure(ctx context.Context, userID string) error {
	query := `
		INSERT INTO accounts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to ensure account", zap.String("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, userID string) (*domain.Account, error) {
	query := `
		SELECT user_id, balance, is_banned, ban_reason, ban_expires_at, created_at
		FROM accounts
		WHERE user_id = $1
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// ApplyDelta adds delta to the balance unless the result would be negative.
// A refused update returns a nil account and no error.
func (r *Repository) ApplyDelta(ctx context.Context, userID string, delta int64) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE user_id = $2 AND balance + $1 >= 0
		RETURNING user_id, balance, is_banned, ban_reason, ban_expires_at, created_at
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, delta, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to apply balance delta", zap.String("userID", userID), zap.Int64("delta", delta), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) SetBan(ctx context.Context, userID, reason string, expiresAt time.Time) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, is_banned, ban_reason, ban_expires_at)
		VALUES ($1, TRUE, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET is_banned = TRUE, ban_reason = EXCLUDED.ban_reason, ban_expires_at = EXCLUDED.ban_expires_at
		RETURNING user_id, balance, is_banned, ban_reason, ban_expires_at, created_at
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID, reason, expiresAt))
	if err != nil {
		zap.L().Error("failed to ban account", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) ClearBan(ctx context.Context, userID string) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET is_banned = FALSE, ban_reason = '', ban_expires_at = NULL
		WHERE user_id = $1
		RETURNING user_id, balance, is_banned, ban_reason, ban_expires_at, created_at
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to unban account", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// ClearExpiredBan lifts the ban only if it is still set and expired at now.
func (r *Repository) ClearExpiredBan(ctx context.Context, userID string, now time.Time) (bool, error) {
	query := `
		UPDATE accounts
		SET is_banned = FALSE, ban_reason = '', ban_expires_at = NULL
		WHERE user_id = $1 AND is_banned AND ban_expires_at IS NOT NULL AND ban_expires_at <= $2
	`
	tag, err := r.db.Exec(ctx, query, userID, now)
	if err != nil {
		zap.L().Error("failed to clear expired ban", zap.String("userID", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
