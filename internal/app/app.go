package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/config"
	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/internal/handlers"
	"github.com/GlebRadaev/gamearena/internal/pg"
	"github.com/GlebRadaev/gamearena/internal/repo"
	"github.com/GlebRadaev/gamearena/internal/service"
	"github.com/GlebRadaev/gamearena/pkg/auth"
	"github.com/GlebRadaev/gamearena/pkg/clients"
	"github.com/GlebRadaev/gamearena/pkg/logger"
	"github.com/GlebRadaev/gamearena/pkg/notify"
	"github.com/GlebRadaev/gamearena/pkg/workerpool"
)

const notifyTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	db         *pgxpool.Pool
	nc         *nats.Conn
	notifyPool *workerpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if err := a.initRepositories(ctx); err != nil {
		return err
	}

	dispatcher, err := a.initNotifier()
	if err != nil {
		return fmt.Errorf("can't init notifier: %w", err)
	}

	a.srv = service.New(a.repo, dispatcher, options(cfg))
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSettlement(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", cfg.Storage))
	return nil
}

func options(cfg *config.Config) service.Options {
	return service.Options{
		Rules: game.Rules{
			Duration:       cfg.GameDuration,
			MaxWrongClicks: cfg.GameMaxWrongClicks,
			Targets:        cfg.GameTargets,
		},
		TickInterval:       cfg.GameTickInterval,
		SettlementInterval: cfg.SettlementInterval,
		SettlementWorkers:  cfg.SettlementWorkers,
	}
}

func (a *Application) initRepositories(ctx context.Context) error {
	if a.cfg.Storage == config.StorageMemory {
		zap.L().Warn("using in-memory storage, state is lost on restart")
		a.repo = repo.NewMemory()
		return nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}

	a.db = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

// initNotifier fans notifications out to every configured sender. The log
// sender is always present.
func (a *Application) initNotifier() (*notify.Dispatcher, error) {
	senders := []notify.Sender{notify.LogSender{}}

	if a.cfg.NotifyWebhookURL != "" {
		senders = append(senders, notify.NewWebhookSender(clients.NewHTTPClient(), a.cfg.NotifyWebhookURL))
	}
	if a.cfg.NotifyNATSURL != "" {
		nc, err := notify.ConnectNATS(a.cfg.NotifyNATSURL)
		if err != nil {
			return nil, err
		}
		a.nc = nc
		senders = append(senders, notify.NewNATSSender(nc, a.cfg.NotifyNATSSubject))
	}

	a.notifyPool = workerpool.New(a.cfg.NotifyWorkers, a.cfg.NotifyWorkers*16)
	return notify.NewDispatcher(a.notifyPool, notifyTimeout, senders...), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSettlement(ctx context.Context) {
	a.srv.Settlement.Start(ctx)
}

// release stops background work in dependency order: no new game events, no
// new settlements, then drain notifications and close connections.
func (a *Application) release() {
	if a.srv != nil {
		a.srv.Engine.Shutdown()
		a.srv.Settlement.Close()
	}
	if a.notifyPool != nil {
		a.notifyPool.Close()
	}
	if a.nc != nil {
		if err := a.nc.Drain(); err != nil {
			zap.L().Error("NATS drain failed", zap.Error(err))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.release()

	return appErr
}
