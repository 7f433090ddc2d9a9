package repo

import (
	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/internal/pg"
	accountrepo "github.com/GlebRadaev/gamearena/internal/repo/account-repo"
	competitionrepo "github.com/GlebRadaev/gamearena/internal/repo/competition-repo"
	"github.com/GlebRadaev/gamearena/internal/repo/memstore"
	sessionrepo "github.com/GlebRadaev/gamearena/internal/repo/session-repo"
	transactionrepo "github.com/GlebRadaev/gamearena/internal/repo/transaction-repo"
	"github.com/GlebRadaev/gamearena/internal/service/admissionservice"
	"github.com/GlebRadaev/gamearena/internal/service/banservice"
	"github.com/GlebRadaev/gamearena/internal/service/competitionservice"
	"github.com/GlebRadaev/gamearena/internal/service/walletservice"
	"github.com/GlebRadaev/gamearena/internal/settlement"
)

type AccountRepo interface {
	walletservice.AccountRepo
	banservice.Repo
}

type SessionRepo interface {
	admissionservice.SessionRepo
	game.Repo
	settlement.SessionRepo
}

type Repositories struct {
	Accounts     AccountRepo
	Transactions walletservice.TransactionRepo
	Competitions competitionservice.Repo
	Sessions     SessionRepo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Accounts:     accountrepo.New(conn),
		Transactions: transactionrepo.New(conn),
		Competitions: competitionrepo.New(conn),
		Sessions:     sessionrepo.New(conn),
		TxManager:    txManager,
	}
}

// NewMemory keeps all state in process. Data is lost on restart.
func NewMemory() *Repositories {
	store := memstore.New()
	return &Repositories{
		Accounts:     store.Accounts(),
		Transactions: store.Transactions(),
		Competitions: store.Competitions(),
		Sessions:     store.Sessions(),
		TxManager:    store,
	}
}
