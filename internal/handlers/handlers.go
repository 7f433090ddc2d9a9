package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gamearena/docs"
	adminhandlers "github.com/GlebRadaev/gamearena/internal/handlers/admin"
	competitionhandlers "github.com/GlebRadaev/gamearena/internal/handlers/competitions"
	sessionhandlers "github.com/GlebRadaev/gamearena/internal/handlers/sessions"
	wallethandlers "github.com/GlebRadaev/gamearena/internal/handlers/wallet"
	"github.com/GlebRadaev/gamearena/internal/service"
	"github.com/GlebRadaev/gamearena/pkg/auth"
)

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type CompetitionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Result(w http.ResponseWriter, r *http.Request)
	Hit(w http.ResponseWriter, r *http.Request)
	Miss(w http.ResponseWriter, r *http.Request)
	Tick(w http.ResponseWriter, r *http.Request)
	Forfeit(w http.ResponseWriter, r *http.Request)
	Pause(w http.ResponseWriter, r *http.Request)
	Resume(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListPendingWithdrawals(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	DenyWithdrawal(w http.ResponseWriter, r *http.Request)
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	Ban(w http.ResponseWriter, r *http.Request)
	Unban(w http.ResponseWriter, r *http.Request)
	CreateCompetition(w http.ResponseWriter, r *http.Request)
	SetCompetitionStatus(w http.ResponseWriter, r *http.Request)
	RunSettlement(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler      WalletHandler
	CompetitionHandler CompetitionHandler
	SessionHandler     SessionHandler
	AdminHandler       AdminHandler
	Validator          auth.TokenValidator
}

func New(s *service.Services, validator auth.TokenValidator) *Handlers {
	return &Handlers{
		WalletHandler:      wallethandlers.New(s.WalletService),
		CompetitionHandler: competitionhandlers.New(s.CompetitionService, s.AdmissionService),
		SessionHandler:     sessionhandlers.New(s.Engine),
		AdminHandler:       adminhandlers.New(s.AdminService, s.BanService, s.CompetitionService, s.Settlement),
		Validator:          validator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.Validator))

		r.Route("/user", func(r chi.Router) {
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})
			r.Get("/transactions", h.WalletHandler.GetTransactions)
		})

		r.Route("/competitions", func(r chi.Router) {
			r.Get("/", h.CompetitionHandler.List)
			r.Get("/{id}", h.CompetitionHandler.Get)
			r.Post("/{id}/join", h.CompetitionHandler.Join)
		})

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.SessionHandler.Get)
			r.Get("/result", h.SessionHandler.Result)
			r.Post("/hit", h.SessionHandler.Hit)
			r.Post("/miss", h.SessionHandler.Miss)
			r.Post("/tick", h.SessionHandler.Tick)
			r.Post("/forfeit", h.SessionHandler.Forfeit)
			r.Post("/pause", h.SessionHandler.Pause)
			r.Post("/resume", h.SessionHandler.Resume)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AdminOnly)
			r.Get("/withdrawals", h.AdminHandler.ListPendingWithdrawals)
			r.Post("/withdrawals/{id}/approve", h.AdminHandler.ApproveWithdrawal)
			r.Post("/withdrawals/{id}/deny", h.AdminHandler.DenyWithdrawal)
			r.Post("/users/{id}/adjust", h.AdminHandler.AdjustBalance)
			r.Post("/users/{id}/ban", h.AdminHandler.Ban)
			r.Delete("/users/{id}/ban", h.AdminHandler.Unban)
			r.Post("/competitions", h.AdminHandler.CreateCompetition)
			r.Post("/competitions/{id}/status", h.AdminHandler.SetCompetitionStatus)
			r.Post("/settlements", h.AdminHandler.RunSettlement)
		})
	})

	return r
}
