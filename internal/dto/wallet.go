package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/pkg/money"
)

type BalanceResponseDTO struct {
	UserID       string          `json:"user_id" example:"u-42"`
	Balance      decimal.Decimal `json:"balance" swaggertype:"string" example:"150.50"`
	IsBanned     bool            `json:"is_banned" example:"false"`
	BanReason    string          `json:"ban_reason,omitempty" example:"repeated cheating"`
	BanExpiresAt *time.Time      `json:"ban_expires_at,omitempty" example:"2024-03-04T10:00:00Z"`
}

type DepositRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
}

type WithdrawRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"30"`
	Card   string          `json:"card" example:"4539578763621486"`
}

type TransactionResponseDTO struct {
	ID            string          `json:"id" example:"9b2f7c1e-6a0e-4c55-9d7e-3f1b8e2a0c11"`
	Kind          string          `json:"kind" example:"ENTRY_FEE"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"-50"`
	Status        string          `json:"status" example:"COMPLETED"`
	CompetitionID string          `json:"competition_id,omitempty" example:"daily-cup"`
	Reference     string          `json:"reference,omitempty"`
	CreatedAt     time.Time       `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

func FromAccount(a *domain.Account) BalanceResponseDTO {
	return BalanceResponseDTO{
		UserID:       a.UserID,
		Balance:      money.FromMinor(a.Balance),
		IsBanned:     a.IsBanned,
		BanReason:    a.BanReason,
		BanExpiresAt: a.BanExpiresAt,
	}
}

func FromTransaction(tx *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:            tx.ID,
		Kind:          string(tx.Kind),
		Amount:        money.FromMinor(tx.Amount),
		Status:        string(tx.Status),
		CompetitionID: tx.CompetitionID,
		Reference:     tx.Reference,
		CreatedAt:     tx.CreatedAt,
	}
}

func FromTransactions(txs []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, 0, len(txs))
	for i := range txs {
		out = append(out, FromTransaction(&txs[i]))
	}
	return out
}
