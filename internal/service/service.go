package service

import (
	"time"

	"github.com/GlebRadaev/gamearena/internal/game"
	adminhandlers "github.com/GlebRadaev/gamearena/internal/handlers/admin"
	competitionhandlers "github.com/GlebRadaev/gamearena/internal/handlers/competitions"
	wallethandlers "github.com/GlebRadaev/gamearena/internal/handlers/wallet"
	"github.com/GlebRadaev/gamearena/internal/repo"
	"github.com/GlebRadaev/gamearena/internal/service/adminservice"
	"github.com/GlebRadaev/gamearena/internal/service/admissionservice"
	"github.com/GlebRadaev/gamearena/internal/service/banservice"
	"github.com/GlebRadaev/gamearena/internal/service/competitionservice"
	"github.com/GlebRadaev/gamearena/internal/service/walletservice"
	"github.com/GlebRadaev/gamearena/internal/settlement"
)

type Options struct {
	Rules              game.Rules
	TickInterval       time.Duration
	SettlementInterval time.Duration
	SettlementWorkers  int
}

type Services struct {
	WalletService      wallethandlers.Service
	CompetitionService *competitionservice.Service
	AdmissionService   competitionhandlers.Admission
	BanService         adminhandlers.Bans
	AdminService       adminhandlers.Reconciler
	Engine             *game.Engine
	Settlement         *settlement.Service
}

func New(repo *repo.Repositories, notifier banservice.Notifier, opts Options) *Services {
	walletService := walletservice.New(repo.Accounts, repo.Transactions, repo.TxManager)
	competitionService := competitionservice.New(repo.Competitions)
	banService := banservice.New(repo.Accounts, notifier)
	engine := game.NewEngine(opts.Rules, opts.TickInterval, repo.Sessions)
	admissionService := admissionservice.New(
		banService,
		competitionService,
		walletService,
		repo.Sessions,
		engine,
		repo.TxManager,
	)

	return &Services{
		WalletService:      walletService,
		CompetitionService: competitionService,
		AdmissionService:   admissionService,
		BanService:         banService,
		AdminService:       adminservice.New(walletService),
		Engine:             engine,
		Settlement: settlement.New(
			opts.SettlementInterval,
			opts.SettlementWorkers,
			repo.Sessions,
			walletService,
			repo.TxManager,
		),
	}
}
