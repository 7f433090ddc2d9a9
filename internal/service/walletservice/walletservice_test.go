package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/pg"
	"github.com/GlebRadaev/gamearena/internal/testutil"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	testutil.PassthroughTX(txManager)

	service := New(accountRepo, transactionRepo, txManager)
	service.newID = func() string { return "tx-1" }
	return service, accountRepo, transactionRepo
}

func echoCreate(transactionRepo *MockTransactionRepo) *gomock.Call {
	return transactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			return tx, nil
		})
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name          string
		amount        int64
		prepareMock   func(*MockAccountRepo, *MockTransactionRepo)
		expectedError error
		expectedTx    *domain.Transaction
	}{
		{
			name:   "Deposit increments balance and records a completed transaction",
			amount: 10000,
			prepareMock: func(accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				accountRepo.EXPECT().Ensure(gomock.Any(), "u1").Return(nil)
				accountRepo.EXPECT().ApplyDelta(gomock.Any(), "u1", int64(10000)).
					Return(testutil.CreateTestAccount("u1", 10000), nil)
				echoCreate(transactionRepo)
			},
			expectedTx: &domain.Transaction{
				ID:     "tx-1",
				UserID: "u1",
				Kind:   domain.KindDeposit,
				Amount: 10000,
				Status: domain.StatusCompleted,
			},
		},
		{
			name:          "Zero amount is rejected",
			amount:        0,
			prepareMock:   func(*MockAccountRepo, *MockTransactionRepo) {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative amount is rejected",
			amount:        -5,
			prepareMock:   func(*MockAccountRepo, *MockTransactionRepo) {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:   "Storage error is returned",
			amount: 100,
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockTransactionRepo) {
				accountRepo.EXPECT().Ensure(gomock.Any(), "u1").Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, transactionRepo := NewMock(t)
			tt.prepareMock(accountRepo, transactionRepo)

			tx, err := service.Deposit(context.Background(), "u1", tt.amount)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, tx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTx, tx)
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	tests := []struct {
		name          string
		amount        int64
		prepareMock   func(*MockAccountRepo, *MockTransactionRepo)
		expectedError error
	}{
		{
			name:   "Withdrawal escrows funds as pending",
			amount: 3000,
			prepareMock: func(accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				accountRepo.EXPECT().Ensure(gomock.Any(), "u1").Return(nil)
				accountRepo.EXPECT().ApplyDelta(gomock.Any(), "u1", int64(-3000)).
					Return(testutil.CreateTestAccount("u1", 7000), nil)
				echoCreate(transactionRepo)
			},
		},
		{
			name:   "Insufficient funds leaves no transaction",
			amount: 3000,
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockTransactionRepo) {
				accountRepo.EXPECT().Ensure(gomock.Any(), "u1").Return(nil)
				accountRepo.EXPECT().ApplyDelta(gomock.Any(), "u1", int64(-3000)).Return(nil, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:          "Invalid amount",
			amount:        0,
			prepareMock:   func(*MockAccountRepo, *MockTransactionRepo) {},
			expectedError: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, transactionRepo := NewMock(t)
			tt.prepareMock(accountRepo, transactionRepo)

			tx, err := service.RequestWithdrawal(context.Background(), "u1", tt.amount, "4539578763621486")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.KindWithdrawal, tx.Kind)
			assert.Equal(t, domain.StatusPending, tx.Status)
			assert.Equal(t, -tt.amount, tx.Amount)
			assert.Equal(t, "4539578763621486", tx.Reference)
		})
	}
}

func TestResolve(t *testing.T) {
	pending := &domain.Transaction{
		ID: "w1", UserID: "u1", Kind: domain.KindWithdrawal, Amount: -3000, Status: domain.StatusPending,
	}

	tests := []struct {
		name          string
		outcome       domain.TransactionStatus
		prepareMock   func(*MockAccountRepo, *MockTransactionRepo)
		expectedError error
	}{
		{
			name:    "Failed withdrawal refunds escrow",
			outcome: domain.StatusFailed,
			prepareMock: func(accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				transactionRepo.EXPECT().GetByID(gomock.Any(), "w1").Return(pending, nil)
				failed := *pending
				failed.Status = domain.StatusFailed
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), "w1", domain.StatusPending, domain.StatusFailed).
					Return(&failed, nil)
				accountRepo.EXPECT().ApplyDelta(gomock.Any(), "u1", int64(3000)).
					Return(testutil.CreateTestAccount("u1", 3000), nil)
			},
		},
		{
			name:    "Completed withdrawal leaves balance untouched",
			outcome: domain.StatusCompleted,
			prepareMock: func(_ *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				transactionRepo.EXPECT().GetByID(gomock.Any(), "w1").Return(pending, nil)
				done := *pending
				done.Status = domain.StatusCompleted
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), "w1", domain.StatusPending, domain.StatusCompleted).
					Return(&done, nil)
			},
		},
		{
			name:    "Unknown transaction",
			outcome: domain.StatusCompleted,
			prepareMock: func(_ *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				transactionRepo.EXPECT().GetByID(gomock.Any(), "w1").Return(nil, nil)
			},
			expectedError: domain.ErrTransactionNotFound,
		},
		{
			name:    "Deposit cannot be resolved",
			outcome: domain.StatusFailed,
			prepareMock: func(_ *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				transactionRepo.EXPECT().GetByID(gomock.Any(), "w1").Return(&domain.Transaction{
					ID: "w1", UserID: "u1", Kind: domain.KindDeposit, Amount: 100, Status: domain.StatusCompleted,
				}, nil)
			},
			expectedError: domain.ErrInvalidTransactionState,
		},
		{
			name:    "Already resolved by a concurrent call",
			outcome: domain.StatusFailed,
			prepareMock: func(_ *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				transactionRepo.EXPECT().GetByID(gomock.Any(), "w1").Return(pending, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), "w1", domain.StatusPending, domain.StatusFailed).
					Return(nil, nil)
			},
			expectedError: domain.ErrInvalidTransactionState,
		},
		{
			name:          "Pending is not an outcome",
			outcome:       domain.StatusPending,
			prepareMock:   func(*MockAccountRepo, *MockTransactionRepo) {},
			expectedError: domain.ErrInvalidTransactionState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, transactionRepo := NewMock(t)
			tt.prepareMock(accountRepo, transactionRepo)

			tx, err := service.Resolve(context.Background(), "w1", tt.outcome)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, tx.Status)
		})
	}
}

func TestPostFeeAndCredit(t *testing.T) {
	t.Run("Fee is recorded as a negative entry fee", func(t *testing.T) {
		service, accountRepo, transactionRepo := NewMock(t)
		accountRepo.EXPECT().Ensure(gomock.Any(), "u1").Return(nil)
		accountRepo.EXPECT().ApplyDelta(gomock.Any(), "u1", int64(-5000)).
			Return(testutil.CreateTestAccount("u1", 5000), nil)
		echoCreate(transactionRepo)

		tx, err := service.PostFeeAndCredit(context.Background(), "u1", 5000, "c1")
		require.NoError(t, err)
		assert.Equal(t, domain.KindEntryFee, tx.Kind)
		assert.Equal(t, int64(-5000), tx.Amount)
		assert.Equal(t, "c1", tx.CompetitionID)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		service, accountRepo, _ := NewMock(t)
		accountRepo.EXPECT().Ensure(gomock.Any(), "u1").Return(nil)
		accountRepo.EXPECT().ApplyDelta(gomock.Any(), "u1", int64(-5000)).Return(nil, nil)

		_, err := service.PostFeeAndCredit(context.Background(), "u1", 5000, "c1")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("Negative fee", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, err := service.PostFeeAndCredit(context.Background(), "u1", -1, "c1")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestCreditWinnings(t *testing.T) {
	service, accountRepo, transactionRepo := NewMock(t)
	accountRepo.EXPECT().Ensure(gomock.Any(), "u1").Return(nil)
	accountRepo.EXPECT().ApplyDelta(gomock.Any(), "u1", int64(50000)).
		Return(testutil.CreateTestAccount("u1", 50000), nil)
	echoCreate(transactionRepo)

	tx, err := service.CreditWinnings(context.Background(), "u1", 50000, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.KindWinnings, tx.Kind)
	assert.Equal(t, domain.StatusCompleted, tx.Status)

	_, err = service.CreditWinnings(context.Background(), "u1", -1, "c1")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name         string
		amount       int64
		expectedKind domain.TransactionKind
	}{
		{name: "Credit adjustment is a deposit", amount: 700, expectedKind: domain.KindDeposit},
		{name: "Debit adjustment is a completed withdrawal", amount: -700, expectedKind: domain.KindWithdrawal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, transactionRepo := NewMock(t)
			accountRepo.EXPECT().Ensure(gomock.Any(), "u1").Return(nil)
			accountRepo.EXPECT().ApplyDelta(gomock.Any(), "u1", tt.amount).
				Return(testutil.CreateTestAccount("u1", 1000), nil)
			echoCreate(transactionRepo)

			tx, err := service.Adjust(context.Background(), "u1", tt.amount, "support ticket 12")
			require.NoError(t, err)
			assert.Equal(t, tt.expectedKind, tx.Kind)
			assert.Equal(t, domain.StatusCompleted, tx.Status)
			assert.Equal(t, tt.amount, tx.Amount)
		})
	}

	service, _, _ := NewMock(t)
	_, err := service.Adjust(context.Background(), "u1", 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestGetAccount(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	accountRepo.EXPECT().Get(gomock.Any(), "new-user").Return(nil, nil)
	account, err := service.GetAccount(context.Background(), "new-user")
	require.NoError(t, err)
	assert.Equal(t, &domain.Account{UserID: "new-user"}, account)

	accountRepo.EXPECT().Get(gomock.Any(), "u1").Return(nil, errors.New("db error"))
	_, err = service.GetAccount(context.Background(), "u1")
	assert.Error(t, err)
}
