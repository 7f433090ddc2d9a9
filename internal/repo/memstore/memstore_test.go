package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/testutil"
)

func TestBegin_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := New()
	accounts, transactions := store.Accounts(), store.Transactions()

	require.NoError(t, accounts.Ensure(ctx, "u1"))
	_, err := accounts.ApplyDelta(ctx, "u1", 1000)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.Begin(ctx, func(ctx context.Context) error {
		if _, err := accounts.ApplyDelta(ctx, "u1", -400); err != nil {
			return err
		}
		if _, err := transactions.Create(ctx, &domain.Transaction{ID: "t1", UserID: "u1", Amount: -400}); err != nil {
			return err
		}
		require.NoError(t, accounts.Ensure(ctx, "u2"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	account, _ := accounts.Get(ctx, "u1")
	assert.Equal(t, int64(1000), account.Balance)
	missing, _ := accounts.Get(ctx, "u2")
	assert.Nil(t, missing)
	tx, _ := transactions.GetByID(ctx, "t1")
	assert.Nil(t, tx)
	txs, _ := transactions.ListByUserID(ctx, "u1")
	assert.Empty(t, txs)
}

func TestBegin_NestedJoinsOuter(t *testing.T) {
	ctx := context.Background()
	store := New()
	accounts := store.Accounts()

	err := store.Begin(ctx, func(ctx context.Context) error {
		return store.Begin(ctx, func(ctx context.Context) error {
			return accounts.Ensure(ctx, "u1")
		})
	})
	require.NoError(t, err)

	account, _ := accounts.Get(ctx, "u1")
	assert.NotNil(t, account)
}

func TestAccountRepo_ApplyDeltaRefusesOverdraft(t *testing.T) {
	ctx := context.Background()
	accounts := New().Accounts()

	refused, err := accounts.ApplyDelta(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Nil(t, refused)

	require.NoError(t, accounts.Ensure(ctx, "u1"))
	refused, err = accounts.ApplyDelta(ctx, "u1", -1)
	require.NoError(t, err)
	assert.Nil(t, refused)
}

func TestAccountRepo_Bans(t *testing.T) {
	ctx := context.Background()
	accounts := New().Accounts()
	expires := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	banned, err := accounts.SetBan(ctx, "u1", "repeated cheating", expires)
	require.NoError(t, err)
	assert.True(t, banned.IsBanned)

	cleared, err := accounts.ClearExpiredBan(ctx, "u1", expires.Add(-time.Second))
	require.NoError(t, err)
	assert.False(t, cleared)

	cleared, err = accounts.ClearExpiredBan(ctx, "u1", expires)
	require.NoError(t, err)
	assert.True(t, cleared)

	account, _ := accounts.Get(ctx, "u1")
	assert.False(t, account.IsBanned)
	assert.Nil(t, account.BanExpiresAt)
}

func TestTransactionRepo_UpdateStatusIsConditional(t *testing.T) {
	ctx := context.Background()
	transactions := New().Transactions()

	_, err := transactions.Create(ctx, &domain.Transaction{
		ID: "w1", UserID: "u1", Kind: domain.KindWithdrawal, Amount: -10, Status: domain.StatusPending,
	})
	require.NoError(t, err)

	pending, _ := transactions.ListPendingWithdrawals(ctx)
	assert.Len(t, pending, 1)

	tx, err := transactions.UpdateStatus(ctx, "w1", domain.StatusPending, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, tx.Status)

	tx, err = transactions.UpdateStatus(ctx, "w1", domain.StatusPending, domain.StatusFailed)
	require.NoError(t, err)
	assert.Nil(t, tx)

	pending, _ = transactions.ListPendingWithdrawals(ctx)
	assert.Empty(t, pending)
}

func TestCompetitionRepo_Spots(t *testing.T) {
	ctx := context.Background()
	competitions := New().Competitions()

	_, err := competitions.Create(ctx, testutil.CreateTestCompetition("c1", 100, 1, 0))
	require.NoError(t, err)

	c, err := competitions.ReserveSpot(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Participants)

	c, err = competitions.ReserveSpot(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, c)

	released, _ := competitions.ReleaseSpot(ctx, "c1")
	assert.True(t, released)
	released, _ = competitions.ReleaseSpot(ctx, "c1")
	assert.False(t, released)

	updated, _ := competitions.UpdateStatus(ctx, "c1", domain.CompetitionLive, domain.CompetitionResults)
	assert.True(t, updated)
	c, _ = competitions.ReserveSpot(ctx, "c1")
	assert.Nil(t, c)
}

func TestSessionRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := New()
	competitions, sessions := store.Competitions(), store.Sessions()

	_, err := competitions.Create(ctx, testutil.CreateTestCompetition("c1", 100, 5, 0))
	require.NoError(t, err)

	require.NoError(t, sessions.Create(ctx, testutil.CreateTestSession("s1", "u1", "c1")))
	err = sessions.Create(ctx, testutil.CreateTestSession("s2", "u1", "c1"))
	assert.ErrorIs(t, err, domain.ErrSessionExists)

	active, _ := sessions.GetActive(ctx, "u1", "c1")
	require.NotNil(t, active)
	assert.Equal(t, "s1", active.ID)

	progress := active.Clone()
	progress.Score = 160
	progress.TimeRemaining = 42
	progress.FoundTargets = []int32{3}
	saved, _ := sessions.Checkpoint(ctx, progress)
	assert.True(t, saved)
	active, _ = sessions.GetByID(ctx, "s1")
	assert.Equal(t, 160, active.Score)
	assert.Equal(t, 42, active.TimeRemaining)
	assert.Equal(t, domain.SessionActive, active.Status)

	ended := time.Now()
	done := active.Clone()
	done.Status = domain.SessionWon
	done.Score = 1600
	done.EndedAt = &ended
	archived, _ := sessions.Archive(ctx, done)
	assert.True(t, archived)
	archived, _ = sessions.Archive(ctx, done)
	assert.False(t, archived)
	saved, _ = sessions.Checkpoint(ctx, progress)
	assert.False(t, saved)

	due, _ := sessions.FindForSettlement(ctx, 10)
	assert.Empty(t, due)

	_, _ = competitions.UpdateStatus(ctx, "c1", domain.CompetitionLive, domain.CompetitionResults)
	due, _ = sessions.FindForSettlement(ctx, 10)
	require.Len(t, due, 1)

	marked, _ := sessions.MarkSettled(ctx, "s1", 50000)
	assert.True(t, marked)
	marked, _ = sessions.MarkSettled(ctx, "s1", 50000)
	assert.False(t, marked)

	require.NoError(t, sessions.Create(ctx, testutil.CreateTestSession("s3", "u1", "c1")))
}
