package domain

import "time"

type TransactionKind string

const (
	KindDeposit    TransactionKind = "DEPOSIT"
	KindWithdrawal TransactionKind = "WITHDRAWAL"
	KindEntryFee   TransactionKind = "ENTRY_FEE"
	KindWinnings   TransactionKind = "WINNINGS"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

type CompetitionStatus string

const (
	CompetitionUpcoming CompetitionStatus = "UPCOMING"
	CompetitionLive     CompetitionStatus = "LIVE"
	CompetitionResults  CompetitionStatus = "RESULTS"
)

// Rank orders competition statuses; transitions may only move to a higher rank.
func (s CompetitionStatus) Rank() int {
	switch s {
	case CompetitionUpcoming:
		return 1
	case CompetitionLive:
		return 2
	case CompetitionResults:
		return 3
	}
	return 0
}

type SessionStatus string

const (
	SessionActive    SessionStatus = "ACTIVE"
	SessionWon       SessionStatus = "WON"
	SessionTimedOut  SessionStatus = "TIMED_OUT"
	SessionLost      SessionStatus = "LOST"
	SessionForfeited SessionStatus = "FORFEITED"
)

func (s SessionStatus) Terminal() bool {
	return s != SessionActive
}

// Amounts are minor currency units (paise).
type Account struct {
	UserID       string     `db:"user_id"`
	Balance      int64      `db:"balance"`
	IsBanned     bool       `db:"is_banned"`
	BanReason    string     `db:"ban_reason"`
	BanExpiresAt *time.Time `db:"ban_expires_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Transaction struct {
	ID            string            `db:"id"`
	UserID        string            `db:"user_id"`
	Kind          TransactionKind   `db:"kind"`
	Amount        int64             `db:"amount"`
	Status        TransactionStatus `db:"status"`
	CompetitionID string            `db:"competition_id"`
	Reference     string            `db:"reference"`
	CreatedAt     time.Time         `db:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at"`
}

type Competition struct {
	ID           string            `db:"id"`
	Title        string            `db:"title"`
	GameType     string            `db:"game_type"`
	EntryFee     int64             `db:"entry_fee"`
	PrizePool    int64             `db:"prize_pool"`
	TotalSpots   int               `db:"total_spots"`
	Participants int               `db:"participants"`
	Status       CompetitionStatus `db:"status"`
	StartTime    time.Time         `db:"start_time"`
	CreatedAt    time.Time         `db:"created_at"`
}

type GameSession struct {
	ID            string        `db:"id"`
	CompetitionID string        `db:"competition_id"`
	UserID        string        `db:"user_id"`
	Score         int           `db:"score"`
	WrongClicks   int           `db:"wrong_clicks"`
	TimeRemaining int           `db:"time_remaining"`
	FoundTargets  []int32       `db:"found_targets"`
	Status        SessionStatus `db:"status"`
	Paused        bool          `db:"-"`
	Settled       bool          `db:"settled"`
	Winnings      int64         `db:"winnings"`
	StartedAt     time.Time     `db:"started_at"`
	EndedAt       *time.Time    `db:"ended_at"`
}

// Clone returns a copy that shares no slices with s.
func (s *GameSession) Clone() *GameSession {
	c := *s
	c.FoundTargets = append([]int32(nil), s.FoundTargets...)
	if s.EndedAt != nil {
		t := *s.EndedAt
		c.EndedAt = &t
	}
	return &c
}
