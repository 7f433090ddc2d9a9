// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/pg"
)

// PassthroughTX makes the mock run every transaction body inline.
func PassthroughTX(m *pg.MockTXManager) {
	m.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func CreateTestAccount(userID string, balance int64) *domain.Account {
	return &domain.Account{
		UserID:    userID,
		Balance:   balance,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func CreateTestCompetition(id string, entryFee int64, totalSpots, participants int) *domain.Competition {
	return &domain.Competition{
		ID:           id,
		Title:        "Find the Difference " + id,
		GameType:     "Find the Difference",
		EntryFee:     entryFee,
		PrizePool:    100000,
		TotalSpots:   totalSpots,
		Participants: participants,
		Status:       domain.CompetitionLive,
		StartTime:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func CreateTestSession(id, userID, competitionID string) *domain.GameSession {
	return &domain.GameSession{
		ID:            id,
		CompetitionID: competitionID,
		UserID:        userID,
		TimeRemaining: 60,
		FoundTargets:  []int32{},
		Status:        domain.SessionActive,
		StartedAt:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}
