package admissionservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/internal/pg"
)

//go:generate mockgen -source=admissionservice.go -destination=mocks.go -package=admissionservice

type BanChecker interface {
	IsActive(ctx context.Context, userID string) (bool, error)
}

type Competitions interface {
	ReserveSpot(ctx context.Context, id string) (*domain.Competition, error)
	ReleaseSpot(ctx context.Context, id string) error
}

type Wallet interface {
	PostFeeAndCredit(ctx context.Context, userID string, entryFee int64, competitionID string) (*domain.Transaction, error)
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.GameSession) error
	GetActive(ctx context.Context, userID, competitionID string) (*domain.GameSession, error)
}

type Engine interface {
	Start(ctx context.Context, s *domain.GameSession) (*domain.GameSession, error)
	Rules() game.Rules
}

// Service admits users into competitions. A join reserves a spot first and
// releases it again if charging the fee or creating the session fails.
type Service struct {
	bans         BanChecker
	competitions Competitions
	wallet       Wallet
	sessionRepo  SessionRepo
	engine       Engine
	txManager    pg.TXManager

	group singleflight.Group
	newID func() string
	now   func() time.Time
}

func New(
	bans BanChecker,
	competitions Competitions,
	wallet Wallet,
	sessionRepo SessionRepo,
	engine Engine,
	txManager pg.TXManager,
) *Service {
	return &Service{
		bans:         bans,
		competitions: competitions,
		wallet:       wallet,
		sessionRepo:  sessionRepo,
		engine:       engine,
		txManager:    txManager,
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

// Join returns the active session of userID in competitionID, creating and
// charging for it if none exists. Concurrent joins with the same key share
// one execution.
func (s *Service) Join(ctx context.Context, userID, competitionID string) (*domain.GameSession, error) {
	v, err, _ := s.group.Do(joinKey(userID, competitionID), func() (any, error) {
		return s.join(ctx, userID, competitionID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.GameSession).Clone(), nil
}

// joinKey quotes both ids so no pair of ids can produce another pair's key.
func joinKey(userID, competitionID string) string {
	return strconv.Quote(userID) + strconv.Quote(competitionID)
}

func (s *Service) join(ctx context.Context, userID, competitionID string) (*domain.GameSession, error) {
	banned, err := s.bans.IsActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, domain.ErrUserBanned
	}

	existing, err := s.sessionRepo.GetActive(ctx, userID, competitionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.engine.Start(ctx, existing)
	}

	competition, err := s.competitions.ReserveSpot(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	session := game.NewSession(s.newID(), competitionID, userID, s.engine.Rules(), s.now().UTC())
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.wallet.PostFeeAndCredit(ctx, userID, competition.EntryFee, competitionID); err != nil {
			return err
		}
		return s.sessionRepo.Create(ctx, session)
	})
	if err != nil {
		s.release(ctx, competitionID)

		if errors.Is(err, domain.ErrSessionExists) {
			existing, getErr := s.sessionRepo.GetActive(ctx, userID, competitionID)
			if getErr == nil && existing != nil {
				return s.engine.Start(ctx, existing)
			}
		}
		return nil, err
	}

	zap.L().Info("user joined competition",
		zap.String("userID", userID),
		zap.String("competitionID", competitionID),
		zap.String("sessionID", session.ID),
		zap.Int64("entryFee", competition.EntryFee))
	return s.engine.Start(ctx, session)
}

func (s *Service) release(ctx context.Context, competitionID string) {
	if err := s.competitions.ReleaseSpot(context.WithoutCancel(ctx), competitionID); err != nil {
		zap.L().Error("failed to release reserved spot", zap.String("competitionID", competitionID), zap.Error(err))
	}
}
