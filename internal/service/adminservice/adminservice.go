package adminservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
)

//go:generate mockgen -source=adminservice.go -destination=mocks.go -package=adminservice

type Wallet interface {
	Resolve(ctx context.Context, transactionID string, outcome domain.TransactionStatus) (*domain.Transaction, error)
	Adjust(ctx context.Context, userID string, amount int64, reference string) (*domain.Transaction, error)
	ListPendingWithdrawals(ctx context.Context) ([]domain.Transaction, error)
}

// Service is the operator surface over the wallet ledger.
type Service struct {
	wallet Wallet
}

func New(wallet Wallet) *Service {
	return &Service{wallet: wallet}
}

func (s *Service) ApproveWithdrawal(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	tx, err := s.wallet.Resolve(ctx, transactionID, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}
	zap.L().Info("withdrawal approved", zap.String("id", transactionID), zap.String("userID", tx.UserID))
	return tx, nil
}

func (s *Service) DenyWithdrawal(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	tx, err := s.wallet.Resolve(ctx, transactionID, domain.StatusFailed)
	if err != nil {
		return nil, err
	}
	zap.L().Info("withdrawal denied", zap.String("id", transactionID), zap.String("userID", tx.UserID))
	return tx, nil
}

// AdjustBalance posts a manual correction. Credits are deposits, debits are
// completed withdrawals that may not overdraw the account.
func (s *Service) AdjustBalance(ctx context.Context, userID string, amount int64, reason string) (*domain.Transaction, error) {
	if amount == 0 {
		return nil, domain.ErrInvalidAmount
	}
	tx, err := s.wallet.Adjust(ctx, userID, amount, reason)
	if err != nil {
		return nil, err
	}
	zap.L().Info("balance adjusted", zap.String("userID", userID), zap.Int64("amount", amount))
	return tx, nil
}

func (s *Service) ListPendingWithdrawals(ctx context.Context) ([]domain.Transaction, error) {
	return s.wallet.ListPendingWithdrawals(ctx)
}
