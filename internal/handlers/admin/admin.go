package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/dto"
	"github.com/GlebRadaev/gamearena/internal/handlers/apierr"
	"github.com/GlebRadaev/gamearena/internal/settlement"
	"github.com/GlebRadaev/gamearena/pkg/money"
	"github.com/GlebRadaev/gamearena/pkg/utils"
)

type Reconciler interface {
	ApproveWithdrawal(ctx context.Context, transactionID string) (*domain.Transaction, error)
	DenyWithdrawal(ctx context.Context, transactionID string) (*domain.Transaction, error)
	AdjustBalance(ctx context.Context, userID string, amount int64, reason string) (*domain.Transaction, error)
	ListPendingWithdrawals(ctx context.Context) ([]domain.Transaction, error)
}

type Bans interface {
	Ban(ctx context.Context, userID, reason string, durationDays int) (*domain.Account, error)
	Unban(ctx context.Context, userID string) (*domain.Account, error)
}

type Competitions interface {
	Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error)
	SetStatus(ctx context.Context, id string, status domain.CompetitionStatus) (*domain.Competition, error)
}

type Settlement interface {
	RunOnce(ctx context.Context) (settlement.Report, error)
}

type AdminHandler struct {
	reconciler   Reconciler
	bans         Bans
	competitions Competitions
	settlement   Settlement
}

func New(reconciler Reconciler, bans Bans, competitions Competitions, settlement Settlement) *AdminHandler {
	return &AdminHandler{
		reconciler:   reconciler,
		bans:         bans,
		competitions: competitions,
		settlement:   settlement,
	}
}

// ListPendingWithdrawals godoc
//
//	@Summary		List pending withdrawals
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Pending withdrawals, oldest first"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Admin role required"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	txs, err := h.reconciler.ListPendingWithdrawals(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransactions(txs))
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a pending withdrawal
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Transaction id"
//	@Success		200	{object}	dto.TransactionResponseDTO	"Completed withdrawal"
//	@Failure		403	{object}	utils.Response				"Admin role required"
//	@Failure		404	{object}	utils.Response				"Transaction not found"
//	@Failure		409	{object}	utils.Response				"Transaction is not a pending withdrawal"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	tx, err := h.reconciler.ApproveWithdrawal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransaction(tx))
}

// DenyWithdrawal godoc
//
//	@Summary		Deny a pending withdrawal
//	@Description	Marks the withdrawal FAILED and refunds the escrowed amount.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Transaction id"
//	@Success		200	{object}	dto.TransactionResponseDTO	"Failed withdrawal"
//	@Failure		403	{object}	utils.Response				"Admin role required"
//	@Failure		404	{object}	utils.Response				"Transaction not found"
//	@Failure		409	{object}	utils.Response				"Transaction is not a pending withdrawal"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/deny [post]
func (h *AdminHandler) DenyWithdrawal(w http.ResponseWriter, r *http.Request) {
	tx, err := h.reconciler.DenyWithdrawal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransaction(tx))
}

// AdjustBalance godoc
//
//	@Summary		Adjust a user balance
//	@Description	Positive amounts post a deposit, negative amounts a completed compensating withdrawal.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		dto.AdjustRequestDTO		true	"Adjustment"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Posted adjustment"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		403		{object}	utils.Response				"Admin role required"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/users/{id}/adjust [post]
func (h *AdminHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := money.ToMinor(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tx, err := h.reconciler.AdjustBalance(r.Context(), chi.URLParam(r, "id"), amount, req.Reason)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransaction(tx))
}

// Ban godoc
//
//	@Summary		Ban a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User id"
//	@Param			request	body		dto.BanRequestDTO		true	"Ban"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Banned account"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		403		{object}	utils.Response			"Admin role required"
//	@Failure		422		{object}	utils.Response			"Reason too short or duration below one day"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/users/{id}/ban [post]
func (h *AdminHandler) Ban(w http.ResponseWriter, r *http.Request) {
	var req dto.BanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.bans.Ban(r.Context(), chi.URLParam(r, "id"), req.Reason, req.DurationDays)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAccount(account))
}

// Unban godoc
//
//	@Summary		Lift a user ban
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User id"
//	@Success		200	{object}	dto.BalanceResponseDTO	"Restored account"
//	@Failure		403	{object}	utils.Response			"Admin role required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/users/{id}/ban [delete]
func (h *AdminHandler) Unban(w http.ResponseWriter, r *http.Request) {
	account, err := h.bans.Unban(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAccount(account))
}

// CreateCompetition godoc
//
//	@Summary		Create a competition
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCompetitionRequestDTO	true	"Competition"
//	@Success		201		{object}	dto.CompetitionResponseDTO		"Created competition"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		403		{object}	utils.Response					"Admin role required"
//	@Failure		422		{object}	utils.Response					"Invalid competition"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/competitions [post]
func (h *AdminHandler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompetitionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fee, err := money.ToMinor(req.EntryFee)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	prize, err := money.ToMinor(req.PrizePool)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	c, err := h.competitions.Create(r.Context(), &domain.Competition{
		ID:         req.ID,
		Title:      req.Title,
		GameType:   req.GameType,
		EntryFee:   fee,
		PrizePool:  prize,
		TotalSpots: req.TotalSpots,
		StartTime:  req.StartTime,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromCompetition(c))
}

// SetCompetitionStatus godoc
//
//	@Summary		Advance a competition status
//	@Description	Statuses only move forward: UPCOMING, LIVE, RESULTS.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Competition id"
//	@Param			request	body		dto.CompetitionStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.CompetitionResponseDTO		"Updated competition"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		403		{object}	utils.Response					"Admin role required"
//	@Failure		404		{object}	utils.Response					"Competition not found"
//	@Failure		409		{object}	utils.Response					"Invalid status transition"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/competitions/{id}/status [post]
func (h *AdminHandler) SetCompetitionStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.CompetitionStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.competitions.SetStatus(r.Context(), chi.URLParam(r, "id"), domain.CompetitionStatus(req.Status))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCompetition(c))
}

// RunSettlement godoc
//
//	@Summary		Run one settlement pass
//	@Description	Credits winnings for finished sessions of competitions in RESULTS status.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettlementResponseDTO	"Settlement report"
//	@Failure		403	{object}	utils.Response				"Admin role required"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settlements [post]
func (h *AdminHandler) RunSettlement(w http.ResponseWriter, r *http.Request) {
	report, err := h.settlement.RunOnce(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromReport(report))
}
