package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/pkg/money"
)

type SessionResponseDTO struct {
	ID            string     `json:"id" example:"5d1c0f8e-2b7a-4f0e-8c61-0a9d3e4b7f21"`
	CompetitionID string     `json:"competition_id" example:"daily-cup"`
	Score         int        `json:"score" example:"318"`
	WrongClicks   int        `json:"wrong_clicks" example:"1"`
	TimeRemaining int        `json:"time_remaining" example:"42"`
	FoundTargets  []int32    `json:"found_targets"`
	Status        string     `json:"status" example:"ACTIVE"`
	Paused        bool       `json:"paused" example:"false"`
	StartedAt     time.Time  `json:"started_at" example:"2024-03-01T18:00:05Z"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
}

type HitRequestDTO struct {
	TargetID int32 `json:"target_id" example:"3"`
}

type ResultResponseDTO struct {
	SessionID string          `json:"session_id" example:"5d1c0f8e-2b7a-4f0e-8c61-0a9d3e4b7f21"`
	Status    string          `json:"status" example:"WON"`
	Score     int             `json:"score" example:"1620"`
	Rank      string          `json:"rank" example:"1"`
	Winnings  decimal.Decimal `json:"winnings" swaggertype:"string" example:"500"`
	Settled   bool            `json:"settled" example:"false"`
}

func FromSession(s *domain.GameSession) SessionResponseDTO {
	found := s.FoundTargets
	if found == nil {
		found = []int32{}
	}
	return SessionResponseDTO{
		ID:            s.ID,
		CompetitionID: s.CompetitionID,
		Score:         s.Score,
		WrongClicks:   s.WrongClicks,
		TimeRemaining: s.TimeRemaining,
		FoundTargets:  found,
		Status:        string(s.Status),
		Paused:        s.Paused,
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
	}
}

func FromResult(s *domain.GameSession, r game.Result) ResultResponseDTO {
	return ResultResponseDTO{
		SessionID: s.ID,
		Status:    string(s.Status),
		Score:     s.Score,
		Rank:      r.Rank,
		Winnings:  money.FromMinor(r.Winnings),
		Settled:   s.Settled,
	}
}
