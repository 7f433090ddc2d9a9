package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/pg"
)

//go:generate mockgen -source=walletservice.go -destination=mocks.go -package=walletservice

type AccountRepo interface {
	Ensure(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*domain.Account, error)
	ApplyDelta(ctx context.Context, userID string, delta int64) (*domain.Account, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.TransactionStatus) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListPendingWithdrawals(ctx context.Context) ([]domain.Transaction, error)
}

// Service is the wallet ledger. Every balance change is posted together with
// its transaction record inside one database transaction.
type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	newID           func() string
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		newID:           uuid.NewString,
	}
}

type posting struct {
	userID        string
	kind          domain.TransactionKind
	amount        int64
	status        domain.TransactionStatus
	competitionID string
	reference     string
}

func (s *Service) post(ctx context.Context, p posting) (*domain.Transaction, error) {
	var created *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.Ensure(ctx, p.userID); err != nil {
			return err
		}
		account, err := s.accountRepo.ApplyDelta(ctx, p.userID, p.amount)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrInsufficientFunds
		}
		created, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			ID:            s.newID(),
			UserID:        p.userID,
			Kind:          p.kind,
			Amount:        p.amount,
			Status:        p.status,
			CompetitionID: p.competitionID,
			Reference:     p.reference,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			zap.L().Error("failed to post transaction",
				zap.String("userID", p.userID), zap.String("kind", string(p.kind)), zap.Error(err))
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) Deposit(ctx context.Context, userID string, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.post(ctx, posting{
		userID: userID,
		kind:   domain.KindDeposit,
		amount: amount,
		status: domain.StatusCompleted,
	})
}

// RequestWithdrawal escrows amount immediately and records a pending withdrawal.
func (s *Service) RequestWithdrawal(ctx context.Context, userID string, amount int64, destination string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.post(ctx, posting{
		userID:    userID,
		kind:      domain.KindWithdrawal,
		amount:    -amount,
		status:    domain.StatusPending,
		reference: destination,
	})
}

// Resolve settles a pending withdrawal. A failed withdrawal refunds the escrow.
func (s *Service) Resolve(ctx context.Context, transactionID string, outcome domain.TransactionStatus) (*domain.Transaction, error) {
	if outcome != domain.StatusCompleted && outcome != domain.StatusFailed {
		return nil, domain.ErrInvalidTransactionState
	}

	var resolved *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.transactionRepo.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrTransactionNotFound
		}
		if tx.Kind != domain.KindWithdrawal || tx.Status != domain.StatusPending {
			return domain.ErrInvalidTransactionState
		}

		resolved, err = s.transactionRepo.UpdateStatus(ctx, transactionID, domain.StatusPending, outcome)
		if err != nil {
			return err
		}
		if resolved == nil {
			return domain.ErrInvalidTransactionState
		}

		if outcome == domain.StatusFailed {
			account, err := s.accountRepo.ApplyDelta(ctx, tx.UserID, -tx.Amount)
			if err != nil {
				return err
			}
			if account == nil {
				return fmt.Errorf("refund of withdrawal %s was refused", transactionID)
			}
		}
		return nil
	})
	if err != nil {
		if !isBusinessError(err) {
			zap.L().Error("failed to resolve withdrawal", zap.String("id", transactionID), zap.Error(err))
		}
		return nil, err
	}
	return resolved, nil
}

// PostFeeAndCredit charges a competition entry fee.
func (s *Service) PostFeeAndCredit(ctx context.Context, userID string, entryFee int64, competitionID string) (*domain.Transaction, error) {
	if entryFee < 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.post(ctx, posting{
		userID:        userID,
		kind:          domain.KindEntryFee,
		amount:        -entryFee,
		status:        domain.StatusCompleted,
		competitionID: competitionID,
	})
}

func (s *Service) CreditWinnings(ctx context.Context, userID string, amount int64, competitionID string) (*domain.Transaction, error) {
	if amount < 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.post(ctx, posting{
		userID:        userID,
		kind:          domain.KindWinnings,
		amount:        amount,
		status:        domain.StatusCompleted,
		competitionID: competitionID,
	})
}

// Adjust posts a manual correction: credits become deposits, debits become
// completed withdrawals.
func (s *Service) Adjust(ctx context.Context, userID string, amount int64, reference string) (*domain.Transaction, error) {
	if amount == 0 {
		return nil, domain.ErrInvalidAmount
	}
	kind := domain.KindDeposit
	if amount < 0 {
		kind = domain.KindWithdrawal
	}
	return s.post(ctx, posting{
		userID:    userID,
		kind:      kind,
		amount:    amount,
		status:    domain.StatusCompleted,
		reference: reference,
	})
}

func (s *Service) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return &domain.Account{UserID: userID}, nil
	}
	return account, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txs, err := s.transactionRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (s *Service) ListPendingWithdrawals(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.transactionRepo.ListPendingWithdrawals(ctx)
	if err != nil {
		zap.L().Error("failed to fetch pending withdrawals", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, domain.ErrTransactionNotFound) ||
		errors.Is(err, domain.ErrInvalidTransactionState) ||
		errors.Is(err, domain.ErrInsufficientFunds)
}
