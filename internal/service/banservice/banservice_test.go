package banservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamearena/internal/domain"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(repo, notifier)
	service.now = func() time.Time { return now }
	return service, repo, notifier
}

func TestBan(t *testing.T) {
	tests := []struct {
		name          string
		reason        string
		days          int
		prepareMock   func(*MockRepo, *MockNotifier)
		expectedError error
	}{
		{
			name:   "Ban sets expiry and notifies",
			reason: "repeated cheating",
			days:   3,
			prepareMock: func(repo *MockRepo, notifier *MockNotifier) {
				expires := now.AddDate(0, 0, 3)
				repo.EXPECT().SetBan(gomock.Any(), "u1", "repeated cheating", expires).
					Return(&domain.Account{UserID: "u1", IsBanned: true, BanReason: "repeated cheating", BanExpiresAt: &expires}, nil)
				notifier.EXPECT().Notify(gomock.Any(), "u1", "Account Suspended", gomock.Any())
			},
		},
		{
			name:          "Short reason",
			reason:        "cheater",
			days:          3,
			prepareMock:   func(*MockRepo, *MockNotifier) {},
			expectedError: domain.ErrInvalidBan,
		},
		{
			name:          "Zero days",
			reason:        "repeated cheating",
			days:          0,
			prepareMock:   func(*MockRepo, *MockNotifier) {},
			expectedError: domain.ErrInvalidBan,
		},
		{
			name:   "Storage error skips notification",
			reason: "repeated cheating",
			days:   1,
			prepareMock: func(repo *MockRepo, _ *MockNotifier) {
				repo.EXPECT().SetBan(gomock.Any(), "u1", "repeated cheating", gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, notifier := NewMock(t)
			tt.prepareMock(repo, notifier)

			account, err := service.Ban(context.Background(), "u1", tt.reason, tt.days)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.True(t, account.IsBanned)
		})
	}
}

func TestUnban(t *testing.T) {
	service, repo, notifier := NewMock(t)

	repo.EXPECT().ClearBan(gomock.Any(), "u1").Return(&domain.Account{UserID: "u1"}, nil)
	notifier.EXPECT().Notify(gomock.Any(), "u1", "Account Restored", gomock.Any())

	account, err := service.Unban(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, account.IsBanned)
}

func TestIsActive(t *testing.T) {
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name        string
		prepareMock func(*MockRepo)
		expected    bool
		expectErr   bool
	}{
		{
			name: "Unknown user is not banned",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
			},
		},
		{
			name: "Ban in force",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), "u1").
					Return(&domain.Account{UserID: "u1", IsBanned: true, BanExpiresAt: &future}, nil)
			},
			expected: true,
		},
		{
			name: "Expired ban is cleared lazily",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), "u1").
					Return(&domain.Account{UserID: "u1", IsBanned: true, BanExpiresAt: &past}, nil)
				repo.EXPECT().ClearExpiredBan(gomock.Any(), "u1", now).Return(true, nil)
			},
		},
		{
			name: "Storage error",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), "u1").Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			active, err := service.IsActive(context.Background(), "u1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, active)
		})
	}
}
