package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/config"
	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/internal/repo"
	"github.com/GlebRadaev/gamearena/internal/service"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	zap.ReplaceGlobals(zap.NewNop())
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestOptions() {
	cfg := &config.Config{
		GameDuration:       90,
		GameMaxWrongClicks: 3,
		GameTargets:        7,
		GameTickInterval:   time.Second,
		SettlementInterval: time.Minute,
		SettlementWorkers:  2,
	}

	opts := options(cfg)

	s.Equal(game.Rules{Duration: 90, MaxWrongClicks: 3, Targets: 7}, opts.Rules)
	s.Equal(time.Second, opts.TickInterval)
	s.Equal(time.Minute, opts.SettlementInterval)
	s.Equal(2, opts.SettlementWorkers)
}

func (s *ApplicationSuite) TestMemoryStorage() {
	s.app.cfg = &config.Config{Storage: config.StorageMemory}

	s.Require().NoError(s.app.initRepositories(context.Background()))

	s.Nil(s.app.db)
	s.NotNil(s.app.repo.Accounts)
}

func (s *ApplicationSuite) TestNotifierWithoutExternalSenders() {
	s.app.cfg = &config.Config{NotifyWorkers: 1}

	dispatcher, err := s.app.initNotifier()

	s.Require().NoError(err)
	s.NotNil(dispatcher)
	s.Nil(s.app.nc)
	dispatcher.Notify(context.Background(), "u1", "Account Restored", "Welcome back")
	s.app.notifyPool.Close()
}

func (s *ApplicationSuite) TestReleaseKeepsSessionsActive() {
	s.app.cfg = &config.Config{NotifyWorkers: 1}
	dispatcher, err := s.app.initNotifier()
	s.Require().NoError(err)

	s.app.repo = repo.NewMemory()
	s.app.srv = service.New(s.app.repo, dispatcher, service.Options{Rules: game.DefaultRules(), TickInterval: time.Hour})

	ctx := context.Background()
	_, err = s.app.srv.CompetitionService.Create(ctx, &domain.Competition{ID: "c1", Title: "Cup", TotalSpots: 2})
	s.Require().NoError(err)
	session, err := s.app.srv.AdmissionService.Join(ctx, "u1", "c1")
	s.Require().NoError(err)
	s.Equal(1, s.app.srv.Engine.Live())
	_, err = s.app.srv.Engine.Hit(ctx, session.ID, 1)
	s.Require().NoError(err)

	s.app.release()

	stored, err := s.app.repo.Sessions.GetByID(ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(domain.SessionActive, stored.Status)
	s.Equal(160, stored.Score)
	s.Equal([]int32{1}, stored.FoundTargets)
}
