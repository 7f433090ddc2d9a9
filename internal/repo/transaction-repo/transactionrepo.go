package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/pg"
)

const columns = `id, user_id, kind, amount, status, competition_id, reference, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Kind,
		&tx.Amount,
		&tx.Status,
		&tx.CompetitionID,
		&tx.Reference,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (id, user_id, kind, amount, status, competition_id, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		tx.ID, tx.UserID, tx.Kind, tx.Amount, tx.Status, tx.CompetitionID, tx.Reference,
	).Scan(&tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.String("userID", tx.UserID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + columns + ` FROM transactions WHERE id = $1`
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get transaction", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// UpdateStatus moves a transaction from one status to another. It returns nil
// when the transaction was not in the expected status.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.TransactionStatus) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING ` + columns
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, to, id, from))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to update transaction status", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + columns + ` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *Repository) ListPendingWithdrawals(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + columns + ` FROM transactions WHERE kind = 'WITHDRAWAL' AND status = 'PENDING' ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
