package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamearena/internal/pg"
	accountrepo "github.com/GlebRadaev/gamearena/internal/repo/account-repo"
	competitionrepo "github.com/GlebRadaev/gamearena/internal/repo/competition-repo"
	"github.com/GlebRadaev/gamearena/internal/repo/memstore"
	sessionrepo "github.com/GlebRadaev/gamearena/internal/repo/session-repo"
	transactionrepo "github.com/GlebRadaev/gamearena/internal/repo/transaction-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, pg.NewMockTXManager(ctrl)), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &accountrepo.Repository{}, repo.Accounts)
	assert.IsType(t, &transactionrepo.Repository{}, repo.Transactions)
	assert.IsType(t, &competitionrepo.Repository{}, repo.Competitions)
	assert.IsType(t, &sessionrepo.Repository{}, repo.Sessions)
	assert.NotNil(t, repo.TxManager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNewMemory(t *testing.T) {
	repo := NewMemory()

	assert.IsType(t, &memstore.AccountRepo{}, repo.Accounts)
	assert.IsType(t, &memstore.TransactionRepo{}, repo.Transactions)
	assert.IsType(t, &memstore.CompetitionRepo{}, repo.Competitions)
	assert.IsType(t, &memstore.SessionRepo{}, repo.Sessions)
	assert.IsType(t, &memstore.Store{}, repo.TxManager)
}
