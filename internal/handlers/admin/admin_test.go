package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/dto"
	"github.com/GlebRadaev/gamearena/internal/settlement"
	"github.com/GlebRadaev/gamearena/internal/testutil"
)

type mocks struct {
	reconciler   *MockReconciler
	bans         *MockBans
	competitions *MockCompetitions
	settlement   *MockSettlement
}

func NewMock(t *testing.T) (*AdminHandler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		reconciler:   NewMockReconciler(ctrl),
		bans:         NewMockBans(ctrl),
		competitions: NewMockCompetitions(ctrl),
		settlement:   NewMockSettlement(ctrl),
	}
	return New(m.reconciler, m.bans, m.competitions, m.settlement), m
}

func serve(method, pattern, target string, body io.Reader, h http.HandlerFunc) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, h)
	r := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestListPendingWithdrawalsHandler(t *testing.T) {
	handler, m := NewMock(t)

	m.reconciler.EXPECT().ListPendingWithdrawals(gomock.Any()).Return([]domain.Transaction{
		{ID: "w1", UserID: "u1", Kind: domain.KindWithdrawal, Amount: -3000, Status: domain.StatusPending},
	}, nil)

	w := serve(http.MethodGet, "/api/admin/withdrawals", "/api/admin/withdrawals", nil, handler.ListPendingWithdrawals)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.TransactionResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, "PENDING", body[0].Status)
}

func TestResolveWithdrawalHandlers(t *testing.T) {
	handler, m := NewMock(t)
	tests := []struct {
		name          string
		action        string
		handle        http.HandlerFunc
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Approve",
			action: "approve",
			handle: handler.ApproveWithdrawal,
			prepareMock: func() {
				m.reconciler.EXPECT().ApproveWithdrawal(gomock.Any(), "w1").
					Return(&domain.Transaction{ID: "w1", Kind: domain.KindWithdrawal, Amount: -3000, Status: domain.StatusCompleted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Deny",
			action: "deny",
			handle: handler.DenyWithdrawal,
			prepareMock: func() {
				m.reconciler.EXPECT().DenyWithdrawal(gomock.Any(), "w1").
					Return(&domain.Transaction{ID: "w1", Kind: domain.KindWithdrawal, Amount: -3000, Status: domain.StatusFailed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Already resolved",
			action: "approve",
			handle: handler.ApproveWithdrawal,
			prepareMock: func() {
				m.reconciler.EXPECT().ApproveWithdrawal(gomock.Any(), "w1").Return(nil, domain.ErrInvalidTransactionState)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrInvalidTransactionState.Error(),
		},
		{
			name:   "Unknown transaction",
			action: "deny",
			handle: handler.DenyWithdrawal,
			prepareMock: func() {
				m.reconciler.EXPECT().DenyWithdrawal(gomock.Any(), "w1").Return(nil, domain.ErrTransactionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrTransactionNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := serve(http.MethodPost, "/api/admin/withdrawals/{id}/"+tt.action, "/api/admin/withdrawals/w1/"+tt.action, nil, tt.handle)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestAdjustBalanceHandler(t *testing.T) {
	handler, m := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Compensating debit",
			body: `{"amount":"-25","reason":"chargeback"}`,
			prepareMock: func() {
				m.reconciler.EXPECT().AdjustBalance(gomock.Any(), "u1", int64(-2500), "chargeback").
					Return(&domain.Transaction{ID: "a1", Kind: domain.KindWithdrawal, Amount: -2500, Status: domain.StatusCompleted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Zero amount",
			body: `{"amount":"0","reason":"noop"}`,
			prepareMock: func() {
				m.reconciler.EXPECT().AdjustBalance(gomock.Any(), "u1", int64(0), "noop").Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidAmount.Error(),
		},
		{
			name: "Would go negative",
			body: `{"amount":"-1000","reason":"chargeback"}`,
			prepareMock: func() {
				m.reconciler.EXPECT().AdjustBalance(gomock.Any(), "u1", int64(-100000), "chargeback").Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: domain.ErrInsufficientFunds.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `[]`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := serve(http.MethodPost, "/api/admin/users/{id}/adjust", "/api/admin/users/u1/adjust", bytes.NewBufferString(tt.body), handler.AdjustBalance)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestBanHandlers(t *testing.T) {
	handler, m := NewMock(t)
	expires := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("Ban", func(t *testing.T) {
		m.bans.EXPECT().Ban(gomock.Any(), "u1", "repeated cheating", 3).
			Return(&domain.Account{UserID: "u1", IsBanned: true, BanReason: "repeated cheating", BanExpiresAt: &expires}, nil)

		w := serve(http.MethodPost, "/api/admin/users/{id}/ban", "/api/admin/users/u1/ban",
			bytes.NewBufferString(`{"reason":"repeated cheating","duration_days":3}`), handler.Ban)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.BalanceResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.True(t, body.IsBanned)
		assert.Equal(t, expires, *body.BanExpiresAt)
	})

	t.Run("Short reason", func(t *testing.T) {
		m.bans.EXPECT().Ban(gomock.Any(), "u1", "spam", 3).Return(nil, domain.ErrInvalidBan)

		w := serve(http.MethodPost, "/api/admin/users/{id}/ban", "/api/admin/users/u1/ban",
			bytes.NewBufferString(`{"reason":"spam","duration_days":3}`), handler.Ban)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrInvalidBan.Error())
	})

	t.Run("Unban", func(t *testing.T) {
		m.bans.EXPECT().Unban(gomock.Any(), "u1").Return(&domain.Account{UserID: "u1"}, nil)

		w := serve(http.MethodDelete, "/api/admin/users/{id}/ban", "/api/admin/users/u1/ban", nil, handler.Unban)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_banned":false`)
	})
}

func TestCreateCompetitionHandler(t *testing.T) {
	handler, m := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: `{"id":"c1","title":"Daily Cup","entry_fee":"50","prize_pool":"1000","total_spots":10,"start_time":"2024-03-01T18:00:00Z"}`,
			prepareMock: func() {
				m.competitions.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, c *domain.Competition) (*domain.Competition, error) {
						assert.Equal(t, int64(5000), c.EntryFee)
						assert.Equal(t, int64(100000), c.PrizePool)
						assert.Equal(t, 10, c.TotalSpots)
						created := *c
						created.Status = domain.CompetitionUpcoming
						return &created, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Invalid competition",
			body: `{"title":"Broken","entry_fee":"50","prize_pool":"0","total_spots":0}`,
			prepareMock: func() {
				m.competitions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidCompetition)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidCompetition.Error(),
		},
		{
			name:          "Fee with sub-paisa precision",
			body:          `{"title":"Broken","entry_fee":"0.001","prize_pool":"0","total_spots":1}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "fractional digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := serve(http.MethodPost, "/api/admin/competitions", "/api/admin/competitions", bytes.NewBufferString(tt.body), handler.CreateCompetition)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestSetCompetitionStatusHandler(t *testing.T) {
	handler, m := NewMock(t)

	t.Run("Advanced", func(t *testing.T) {
		c := testutil.CreateTestCompetition("c1", 5000, 10, 4)
		c.Status = domain.CompetitionResults
		m.competitions.EXPECT().SetStatus(gomock.Any(), "c1", domain.CompetitionResults).Return(c, nil)

		w := serve(http.MethodPost, "/api/admin/competitions/{id}/status", "/api/admin/competitions/c1/status",
			bytes.NewBufferString(`{"status":"RESULTS"}`), handler.SetCompetitionStatus)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"RESULTS"`)
	})

	t.Run("Backward", func(t *testing.T) {
		m.competitions.EXPECT().SetStatus(gomock.Any(), "c1", domain.CompetitionUpcoming).Return(nil, domain.ErrInvalidStatusTransition)

		w := serve(http.MethodPost, "/api/admin/competitions/{id}/status", "/api/admin/competitions/c1/status",
			bytes.NewBufferString(`{"status":"UPCOMING"}`), handler.SetCompetitionStatus)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRunSettlementHandler(t *testing.T) {
	handler, m := NewMock(t)

	t.Run("Report", func(t *testing.T) {
		m.settlement.EXPECT().RunOnce(gomock.Any()).Return(settlement.Report{Settled: 3, Credited: 55000}, nil)

		w := serve(http.MethodPost, "/api/admin/settlements", "/api/admin/settlements", nil, handler.RunSettlement)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.SettlementResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 3, body.Settled)
		assert.Equal(t, "550", body.Credited.String())
	})

	t.Run("Failure", func(t *testing.T) {
		m.settlement.EXPECT().RunOnce(gomock.Any()).Return(settlement.Report{}, errors.New("db down"))

		w := serve(http.MethodPost, "/api/admin/settlements", "/api/admin/settlements", nil, handler.RunSettlement)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
