package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gamearena/internal/settlement"
	"github.com/GlebRadaev/gamearena/pkg/money"
)

type AdjustRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"-25"`
	Reason string          `json:"reason" example:"chargeback #118"`
}

type BanRequestDTO struct {
	Reason       string `json:"reason" example:"repeated cheating"`
	DurationDays int    `json:"duration_days" example:"3"`
}

type SettlementResponseDTO struct {
	Settled  int             `json:"settled" example:"12"`
	Credited decimal.Decimal `json:"credited" swaggertype:"string" example:"850"`
	Failed   int             `json:"failed" example:"0"`
}

func FromReport(r settlement.Report) SettlementResponseDTO {
	return SettlementResponseDTO{
		Settled:  r.Settled,
		Credited: money.FromMinor(r.Credited),
		Failed:   r.Failed,
	}
}
