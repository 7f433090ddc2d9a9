package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/pkg/money"
)

type CompetitionResponseDTO struct {
	ID           string          `json:"id" example:"daily-cup"`
	Title        string          `json:"title" example:"Daily Cup"`
	GameType     string          `json:"game_type" example:"Find the Difference"`
	EntryFee     decimal.Decimal `json:"entry_fee" swaggertype:"string" example:"50"`
	PrizePool    decimal.Decimal `json:"prize_pool" swaggertype:"string" example:"1000"`
	TotalSpots   int             `json:"total_spots" example:"100"`
	Participants int             `json:"participants" example:"42"`
	SpotsLeft    int             `json:"spots_left" example:"58"`
	Status       string          `json:"status" example:"LIVE"`
	StartTime    time.Time       `json:"start_time" example:"2024-03-01T18:00:00Z"`
}

type CreateCompetitionRequestDTO struct {
	ID         string          `json:"id,omitempty" example:"daily-cup"`
	Title      string          `json:"title" example:"Daily Cup"`
	GameType   string          `json:"game_type,omitempty" example:"Find the Difference"`
	EntryFee   decimal.Decimal `json:"entry_fee" swaggertype:"string" example:"50"`
	PrizePool  decimal.Decimal `json:"prize_pool" swaggertype:"string" example:"1000"`
	TotalSpots int             `json:"total_spots" example:"100"`
	StartTime  time.Time       `json:"start_time" example:"2024-03-01T18:00:00Z"`
}

type CompetitionStatusRequestDTO struct {
	Status string `json:"status" example:"RESULTS"`
}

func FromCompetition(c *domain.Competition) CompetitionResponseDTO {
	return CompetitionResponseDTO{
		ID:           c.ID,
		Title:        c.Title,
		GameType:     c.GameType,
		EntryFee:     money.FromMinor(c.EntryFee),
		PrizePool:    money.FromMinor(c.PrizePool),
		TotalSpots:   c.TotalSpots,
		Participants: c.Participants,
		SpotsLeft:    max(0, c.TotalSpots-c.Participants),
		Status:       string(c.Status),
		StartTime:    c.StartTime,
	}
}

func FromCompetitions(cs []domain.Competition) []CompetitionResponseDTO {
	out := make([]CompetitionResponseDTO, 0, len(cs))
	for i := range cs {
		out = append(out, FromCompetition(&cs[i]))
	}
	return out
}
