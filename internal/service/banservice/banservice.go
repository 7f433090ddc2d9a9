package banservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
)

//go:generate mockgen -source=banservice.go -destination=mocks.go -package=banservice

const (
	minReasonLength = 10
	minDurationDays = 1
)

type Repo interface {
	Get(ctx context.Context, userID string) (*domain.Account, error)
	SetBan(ctx context.Context, userID, reason string, expiresAt time.Time) (*domain.Account, error)
	ClearBan(ctx context.Context, userID string) (*domain.Account, error)
	ClearExpiredBan(ctx context.Context, userID string, now time.Time) (bool, error)
}

// Notifier delivers a message to a user without reporting failures back.
type Notifier interface {
	Notify(ctx context.Context, userID, title, message string)
}

type Service struct {
	repo     Repo
	notifier Notifier
	now      func() time.Time
}

func New(repo Repo, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Ban suspends a user for durationDays and notifies them.
func (s *Service) Ban(ctx context.Context, userID, reason string, durationDays int) (*domain.Account, error) {
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) < minReasonLength || durationDays < minDurationDays {
		return nil, domain.ErrInvalidBan
	}

	expiresAt := s.now().UTC().AddDate(0, 0, durationDays)
	account, err := s.repo.SetBan(ctx, userID, reason, expiresAt)
	if err != nil {
		return nil, err
	}

	zap.L().Info("user banned", zap.String("userID", userID), zap.Time("expiresAt", expiresAt))
	s.notifier.Notify(ctx, userID, "Account Suspended", fmt.Sprintf(
		"Your account has been temporarily suspended for %d days. Reason: %s. Your access will be restored on %s.",
		durationDays, reason, expiresAt.Format("2006-01-02"),
	))
	return account, nil
}

func (s *Service) Unban(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.repo.ClearBan(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return &domain.Account{UserID: userID}, nil
	}

	zap.L().Info("user unbanned", zap.String("userID", userID))
	s.notifier.Notify(ctx, userID, "Account Restored", "Your account suspension has been lifted. Welcome back!")
	return account, nil
}

// IsActive reports whether userID is currently banned. An expired ban is
// cleared on the way.
func (s *Service) IsActive(ctx context.Context, userID string) (bool, error) {
	account, err := s.repo.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	if account == nil || !account.IsBanned {
		return false, nil
	}

	now := s.now()
	if account.BanExpiresAt == nil || now.Before(*account.BanExpiresAt) {
		return true, nil
	}

	if _, err := s.repo.ClearExpiredBan(ctx, userID, now); err != nil {
		zap.L().Error("failed to clear expired ban", zap.String("userID", userID), zap.Error(err))
		return false, err
	}
	zap.L().Info("ban expired", zap.String("userID", userID))
	return false, nil
}
