package competitionservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
)

//go:generate mockgen -source=competitionservice.go -destination=mocks.go -package=competitionservice

type Repo interface {
	Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error)
	GetByID(ctx context.Context, id string) (*domain.Competition, error)
	List(ctx context.Context) ([]domain.Competition, error)
	ReserveSpot(ctx context.Context, id string) (*domain.Competition, error)
	ReleaseSpot(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.CompetitionStatus) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Create registers a competition in UPCOMING status with no participants.
func (s *Service) Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error) {
	if c.Title == "" || c.EntryFee < 0 || c.PrizePool < 0 || c.TotalSpots <= 0 {
		return nil, domain.ErrInvalidCompetition
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.GameType == "" {
		c.GameType = "Find the Difference"
	}
	c.Participants = 0
	c.Status = domain.CompetitionUpcoming

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		zap.L().Error("failed to create competition", zap.String("id", c.ID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Competition, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCompetitionNotFound
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Competition, error) {
	return s.repo.List(ctx)
}

// ReserveSpot atomically takes one spot. When the conditional update is
// refused the competition is re-read to tell the caller why.
func (s *Service) ReserveSpot(ctx context.Context, id string) (*domain.Competition, error) {
	c, err := s.repo.ReserveSpot(ctx, id)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch {
	case current == nil:
		return nil, domain.ErrCompetitionNotFound
	case current.Status == domain.CompetitionResults:
		return nil, domain.ErrCompetitionClosed
	default:
		return nil, domain.ErrCompetitionFull
	}
}

func (s *Service) ReleaseSpot(ctx context.Context, id string) error {
	released, err := s.repo.ReleaseSpot(ctx, id)
	if err != nil {
		return err
	}
	if !released {
		zap.L().Warn("release of spot had nothing to release", zap.String("competitionID", id))
	}
	return nil
}

// SetStatus moves the competition forward through UPCOMING, LIVE and RESULTS.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.CompetitionStatus) (*domain.Competition, error) {
	if status.Rank() == 0 {
		return nil, domain.ErrInvalidStatusTransition
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if status.Rank() < current.Status.Rank() {
		return nil, domain.ErrInvalidStatusTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, current.Status, status)
	if err != nil {
		zap.L().Error("failed to update competition status", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if !updated {
		return nil, domain.ErrInvalidStatusTransition
	}

	zap.L().Info("competition status changed",
		zap.String("id", id), zap.String("from", string(current.Status)), zap.String("to", string(status)))
	current.Status = status
	return current, nil
}
