package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/internal/repo"
	"github.com/GlebRadaev/gamearena/internal/service"
	"github.com/GlebRadaev/gamearena/internal/service/banservice"
	"github.com/GlebRadaev/gamearena/pkg/auth"
)

const secret = "test-secret"

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := service.New(repo.NewMemory(), banservice.NewMockNotifier(ctrl), service.Options{Rules: game.DefaultRules()})
	t.Cleanup(services.Engine.Shutdown)
	t.Cleanup(services.Settlement.Close)

	h := New(services, auth.NewJWTService(secret))
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.CompetitionHandler)
	assert.NotNil(t, h.SessionHandler)
	assert.NotNil(t, h.AdminHandler)
}

func token(t *testing.T, role string) string {
	tok, err := auth.NewJWTService(secret).GenerateJWT("u1", role, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	return "Bearer " + tok
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	wallet := NewMockWalletHandler(ctrl)
	wallet.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	wallet.EXPECT().Deposit(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	wallet.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	wallet.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	competitions := NewMockCompetitionHandler(ctrl)
	competitions.EXPECT().List(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	competitions.EXPECT().Get(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	competitions.EXPECT().Join(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	sessions := NewMockSessionHandler(ctrl)
	sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	sessions.EXPECT().Result(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	sessions.EXPECT().Hit(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	sessions.EXPECT().Miss(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	sessions.EXPECT().Tick(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	sessions.EXPECT().Forfeit(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	sessions.EXPECT().Pause(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	sessions.EXPECT().Resume(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	admin := NewMockAdminHandler(ctrl)
	admin.EXPECT().ListPendingWithdrawals(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	admin.EXPECT().ApproveWithdrawal(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	admin.EXPECT().DenyWithdrawal(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	admin.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	admin.EXPECT().Ban(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	admin.EXPECT().Unban(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	admin.EXPECT().CreateCompetition(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	admin.EXPECT().SetCompetitionStatus(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	admin.EXPECT().RunSettlement(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	h := &Handlers{
		WalletHandler:      wallet,
		CompetitionHandler: competitions,
		SessionHandler:     sessions,
		AdminHandler:       admin,
		Validator:          auth.NewJWTService(secret),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	player := token(t, auth.RolePlayer)
	operator := token(t, auth.RoleAdmin)

	tests := []struct {
		method string
		url    string
		auth   string
		status int
	}{
		{"GET", "/api/user/balance", "", http.StatusUnauthorized},
		{"GET", "/api/user/balance", "Bearer garbage", http.StatusUnauthorized},
		{"GET", "/api/user/balance", player, http.StatusOK},
		{"POST", "/api/user/balance/deposit", player, http.StatusOK},
		{"POST", "/api/user/balance/withdraw", player, http.StatusOK},
		{"GET", "/api/user/transactions", player, http.StatusOK},
		{"GET", "/api/competitions", player, http.StatusOK},
		{"GET", "/api/competitions/c1", player, http.StatusOK},
		{"POST", "/api/competitions/c1/join", player, http.StatusOK},
		{"GET", "/api/sessions/s1", player, http.StatusOK},
		{"GET", "/api/sessions/s1/result", player, http.StatusOK},
		{"POST", "/api/sessions/s1/hit", player, http.StatusOK},
		{"POST", "/api/sessions/s1/miss", player, http.StatusOK},
		{"POST", "/api/sessions/s1/tick", player, http.StatusOK},
		{"POST", "/api/sessions/s1/forfeit", player, http.StatusOK},
		{"POST", "/api/sessions/s1/pause", player, http.StatusOK},
		{"POST", "/api/sessions/s1/resume", player, http.StatusOK},
		{"GET", "/api/admin/withdrawals", player, http.StatusForbidden},
		{"GET", "/api/admin/withdrawals", operator, http.StatusOK},
		{"POST", "/api/admin/withdrawals/w1/approve", operator, http.StatusOK},
		{"POST", "/api/admin/withdrawals/w1/deny", operator, http.StatusOK},
		{"POST", "/api/admin/users/u2/adjust", operator, http.StatusOK},
		{"POST", "/api/admin/users/u2/ban", operator, http.StatusOK},
		{"DELETE", "/api/admin/users/u2/ban", operator, http.StatusOK},
		{"POST", "/api/admin/competitions", operator, http.StatusOK},
		{"POST", "/api/admin/competitions/c1/status", operator, http.StatusOK},
		{"POST", "/api/admin/settlements", operator, http.StatusOK},
		{"POST", "/api/admin/settlements", player, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
