package wallet

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/dto"
	"github.com/GlebRadaev/gamearena/internal/handlers/apierr"
	"github.com/GlebRadaev/gamearena/pkg/auth"
	"github.com/GlebRadaev/gamearena/pkg/money"
	"github.com/GlebRadaev/gamearena/pkg/utils"
	"github.com/GlebRadaev/gamearena/pkg/validate"
)

type Service interface {
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	Deposit(ctx context.Context, userID string, amount int64) (*domain.Transaction, error)
	RequestWithdrawal(ctx context.Context, userID string, amount int64, destination string) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the wallet balance and ban state of the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	account, err := h.walletService.GetAccount(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAccount(account))
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Description	Credit the wallet of the authenticated user. Amounts are rupees with at most two decimals.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO		true	"Deposit payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Completed deposit"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/balance/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := money.ToMinor(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tx, err := h.walletService.Deposit(r.Context(), userID, amount)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransaction(tx))
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Escrow funds for a payout to the given card. The withdrawal stays PENDING until an admin resolves it.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO		true	"Withdrawal payload"
//	@Success		202		{object}	dto.TransactionResponseDTO	"Pending withdrawal"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		422		{object}	utils.Response				"Invalid amount or card number"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validate.IsCardNumber(req.Card) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	amount, err := money.ToMinor(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tx, err := h.walletService.RequestWithdrawal(r.Context(), userID, amount, req.Card)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.FromTransaction(tx))
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List all ledger entries of the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transactions"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	txs, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	if len(txs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransactions(txs))
}
