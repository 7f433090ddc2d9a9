// Package game implements the scoring state machine of a single game session
// and the engine that drives sessions in real time.
package game

import (
	"time"

	"github.com/GlebRadaev/gamearena/internal/domain"
)

const (
	hitBase     = 100
	missPenalty = 20
)

type Rules struct {
	Duration       int
	MaxWrongClicks int
	Targets        int
}

func DefaultRules() Rules {
	return Rules{
		Duration:       60,
		MaxWrongClicks: 4,
		Targets:        5,
	}
}

type EventKind int

const (
	EventHit EventKind = iota + 1
	EventMiss
	EventTick
	EventForfeit
)

func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventTick:
		return "tick"
	case EventForfeit:
		return "forfeit"
	}
	return "unknown"
}

type Event struct {
	Kind     EventKind
	TargetID int32
}

func Hit(targetID int32) Event { return Event{Kind: EventHit, TargetID: targetID} }
func Miss() Event              { return Event{Kind: EventMiss} }
func Tick() Event              { return Event{Kind: EventTick} }
func Forfeit() Event           { return Event{Kind: EventForfeit} }

// NewSession returns an active session with the full clock.
func NewSession(id, competitionID, userID string, rules Rules, now time.Time) *domain.GameSession {
	return &domain.GameSession{
		ID:            id,
		CompetitionID: competitionID,
		UserID:        userID,
		TimeRemaining: rules.Duration,
		FoundTargets:  []int32{},
		Status:        domain.SessionActive,
		StartedAt:     now,
	}
}

// Transition applies ev to s and returns the resulting session. s is never
// modified. Terminal sessions reject every event.
func Transition(s *domain.GameSession, ev Event, rules Rules, now time.Time) (*domain.GameSession, error) {
	if s.Status.Terminal() {
		return nil, domain.ErrSessionAlreadyTerminal
	}

	next := s.Clone()
	switch ev.Kind {
	case EventHit:
		if ev.TargetID < 1 || int(ev.TargetID) > rules.Targets {
			return nil, domain.ErrInvalidTarget
		}
		if found(next.FoundTargets, ev.TargetID) {
			return next, nil
		}
		next.FoundTargets = append(next.FoundTargets, ev.TargetID)
		next.Score += hitBase + next.TimeRemaining
		if len(next.FoundTargets) >= rules.Targets {
			finish(next, domain.SessionWon, now)
		}

	case EventMiss:
		next.WrongClicks++
		next.Score = max(0, next.Score-missPenalty)
		if next.WrongClicks >= rules.MaxWrongClicks {
			next.Score = 0
			finish(next, domain.SessionLost, now)
		}

	case EventTick:
		if next.TimeRemaining > 0 {
			next.TimeRemaining--
		}
		if next.TimeRemaining == 0 {
			if len(next.FoundTargets) >= rules.Targets {
				finish(next, domain.SessionWon, now)
			} else {
				finish(next, domain.SessionTimedOut, now)
			}
		}

	case EventForfeit:
		next.Score = 0
		finish(next, domain.SessionForfeited, now)

	default:
		return nil, domain.ErrInvalidTarget
	}
	return next, nil
}

func finish(s *domain.GameSession, status domain.SessionStatus, now time.Time) {
	s.Status = status
	s.Paused = false
	s.EndedAt = &now
}

func found(targets []int32, id int32) bool {
	for _, t := range targets {
		if t == id {
			return true
		}
	}
	return false
}
