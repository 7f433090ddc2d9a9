package competitionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gamearena/internal/domain"
)

var competitionColumns = []string{
	"id", "title", "game_type", "entry_fee", "prize_pool", "total_spots", "participants", "status", "start_time", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func competitionRow(participants int, status domain.CompetitionStatus, at time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(competitionColumns).
		AddRow("c1", "Daily Cup", "Find the Difference", int64(5000), int64(100000), 2, participants, status, at, at)
}

func TestRepository_Create(t *testing.T) {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &domain.Competition{
		ID: "c1", Title: "Daily Cup", GameType: "Find the Difference", EntryFee: 5000, PrizePool: 100000,
		TotalSpots: 2, Status: domain.CompetitionUpcoming, StartTime: at,
	}

	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO competitions`)).
		WithArgs("c1", "Daily Cup", "Find the Difference", int64(5000), int64(100000), 2, 0, domain.CompetitionUpcoming, at).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(at))

	created, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, at, created.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO competitions`)).
		WillReturnError(errors.New("database error"))
	_, err = repo.Create(context.Background(), c)
	assert.Error(t, err)
}

func TestRepository_ReserveSpot(t *testing.T) {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SET participants = participants + 1 WHERE id = $1 AND participants < total_spots AND status <> 'RESULTS'`)

	tests := []struct {
		name         string
		mockSetup    func(mock pgxmock.PgxPoolIface)
		expectErr    bool
		participants int
		reserved     bool
	}{
		{
			name: "Spot reserved",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("c1").
					WillReturnRows(competitionRow(1, domain.CompetitionLive, at))
			},
			participants: 1,
			reserved:     true,
		},
		{
			name: "Full or closed",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("c1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("c1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			c, err := repo.ReserveSpot(context.Background(), "c1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if !tt.reserved {
				assert.Nil(t, c)
				return
			}
			assert.Equal(t, tt.participants, c.Participants)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ReleaseSpotAndStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET participants = participants - 1 WHERE id = $1 AND participants > 0`)).
		WithArgs("c1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	released, err := repo.ReleaseSpot(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, released)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE competitions SET status = $1 WHERE id = $2 AND status = $3`)).
		WithArgs(domain.CompetitionResults, "c1", domain.CompetitionLive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	updated, err := repo.UpdateStatus(context.Background(), "c1", domain.CompetitionLive, domain.CompetitionResults)
	require.NoError(t, err)
	assert.False(t, updated)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAndList(t *testing.T) {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM competitions WHERE id = $1`)).
		WithArgs("c1").
		WillReturnRows(competitionRow(0, domain.CompetitionUpcoming, at))
	c, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Daily Cup", c.Title)
	assert.Equal(t, domain.CompetitionUpcoming, c.Status)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM competitions WHERE id = $1`)).
		WithArgs("c2").
		WillReturnError(pgx.ErrNoRows)
	c, err = repo.GetByID(context.Background(), "c2")
	assert.NoError(t, err)
	assert.Nil(t, c)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM competitions ORDER BY start_time`)).
		WillReturnRows(competitionRow(1, domain.CompetitionLive, at))
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
