// Package settlement credits winnings for finished sessions of competitions
// that have moved to results.
package settlement

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/internal/pg"
	"github.com/GlebRadaev/gamearena/pkg/workerpool"
)

//go:generate mockgen -source=settlement.go -destination=mocks.go -package=settlement

const defaultLimit = 1000

type SessionRepo interface {
	FindForSettlement(ctx context.Context, limit uint32) ([]domain.GameSession, error)
	MarkSettled(ctx context.Context, id string, winnings int64) (bool, error)
}

type Wallet interface {
	CreditWinnings(ctx context.Context, userID string, amount int64, competitionID string) (*domain.Transaction, error)
}

type Report struct {
	Settled  int   `json:"settled"`
	Credited int64 `json:"credited"`
	Failed   int   `json:"failed"`
}

type Service struct {
	sessionRepo SessionRepo
	wallet      Wallet
	txManager   pg.TXManager
	bands       game.Bands
	pool        *workerpool.Pool
	limit       uint32
	interval    time.Duration

	processing sync.Map
}

func New(interval time.Duration, workers int, sessionRepo SessionRepo, wallet Wallet, txManager pg.TXManager) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		wallet:      wallet,
		txManager:   txManager,
		bands:       game.DefaultBands,
		pool:        workerpool.New(workers, workers),
		limit:       defaultLimit,
		interval:    interval,
	}
}

// Start runs a settlement pass every interval until ctx is done.
func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("Settlement ticker disabled")
		return
	}
	zap.L().Info("Settlement service started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				zap.L().Error("Settlement pass failed", zap.Error(err))
			}
		}
	}
}

// RunOnce settles every due session and waits for the result.
func (s *Service) RunOnce(ctx context.Context) (Report, error) {
	sessions, err := s.sessionRepo.FindForSettlement(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch sessions for settlement", zap.Error(err))
		return Report{}, err
	}

	var (
		settled, failed atomic.Int32
		credited        atomic.Int64
		done            sync.WaitGroup
		g               errgroup.Group
	)
	for _, session := range sessions {
		session := session

		if _, loaded := s.processing.LoadOrStore(session.ID, struct{}{}); loaded {
			continue
		}

		done.Add(1)
		g.Go(func() error {
			err := s.pool.Submit(ctx, func() error {
				defer done.Done()
				defer s.processing.Delete(session.ID)

				amount, ok, err := s.settle(ctx, session)
				switch {
				case err != nil:
					failed.Add(1)
					return fmt.Errorf("failed to settle session %s: %w", session.ID, err)
				case ok:
					settled.Add(1)
					credited.Add(amount)
				}
				return nil
			})
			if err != nil {
				done.Done()
				s.processing.Delete(session.ID)
				failed.Add(1)
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	done.Wait()

	report := Report{Settled: int(settled.Load()), Credited: credited.Load(), Failed: int(failed.Load())}
	if report.Settled > 0 || report.Failed > 0 {
		zap.L().Info("Settlement pass finished",
			zap.Int("settled", report.Settled), zap.Int64("credited", report.Credited), zap.Int("failed", report.Failed))
	}
	return report, err
}

// settle marks one session settled and credits its winnings in a single
// transaction. ok is false when another pass already settled it.
func (s *Service) settle(ctx context.Context, session domain.GameSession) (amount int64, ok bool, err error) {
	result := s.bands.Results(session.Score)

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		marked, err := s.sessionRepo.MarkSettled(ctx, session.ID, result.Winnings)
		if err != nil || !marked {
			return err
		}
		ok = true
		if result.Winnings > 0 {
			_, err = s.wallet.CreditWinnings(ctx, session.UserID, result.Winnings, session.CompetitionID)
		}
		return err
	})
	if err != nil {
		return 0, false, err
	}
	if ok {
		zap.L().Info("Session settled",
			zap.String("sessionID", session.ID),
			zap.String("userID", session.UserID),
			zap.String("rank", result.Rank),
			zap.Int64("winnings", result.Winnings))
	}
	return result.Winnings, ok, nil
}

func (s *Service) Close() {
	s.pool.Close()
}
