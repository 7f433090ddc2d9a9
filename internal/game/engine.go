package game

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
)

//go:generate mockgen -source=engine.go -destination=mocks.go -package=game

const checkpointTimeout = 5 * time.Second

type Repo interface {
	GetByID(ctx context.Context, id string) (*domain.GameSession, error)
	Archive(ctx context.Context, s *domain.GameSession) (bool, error)
	Checkpoint(ctx context.Context, s *domain.GameSession) (bool, error)
}

// actor owns one live session. All events for the session are serialised
// through mu.
type actor struct {
	mu       sync.Mutex
	session  *domain.GameSession
	gen      uint64
	stop     chan struct{}
	archived bool

	// anchor is when the clock last started or ticked. carry is the part of
	// the current tick interval already used before the clock was stopped.
	anchor time.Time
	carry  time.Duration
}

// Engine drives live sessions. Each session gets its own ticker goroutine
// when tickInterval is positive.
type Engine struct {
	rules        Rules
	tickInterval time.Duration
	repo         Repo
	now          func() time.Time

	mu     sync.Mutex
	actors map[string]*actor
	wg     sync.WaitGroup
}

func NewEngine(rules Rules, tickInterval time.Duration, repo Repo) *Engine {
	return &Engine{
		rules:        rules,
		tickInterval: tickInterval,
		repo:         repo,
		now:          time.Now,
		actors:       make(map[string]*actor),
	}
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// Start registers an active session and starts its clock. Starting a session
// the engine already drives returns the live snapshot.
func (e *Engine) Start(ctx context.Context, s *domain.GameSession) (*domain.GameSession, error) {
	if s.Status.Terminal() {
		return nil, domain.ErrSessionAlreadyTerminal
	}
	e.mu.Lock()
	a := e.register(s)
	e.mu.Unlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Clone(), nil
}

// register must be called with e.mu held.
func (e *Engine) register(s *domain.GameSession) *actor {
	if a, ok := e.actors[s.ID]; ok {
		return a
	}
	a := &actor{session: s.Clone()}
	a.session.Paused = false
	e.actors[s.ID] = a

	a.mu.Lock()
	e.startClock(a)
	a.mu.Unlock()

	zap.L().Debug("session started", zap.String("sessionID", s.ID), zap.String("userID", s.UserID))
	return a
}

// Get returns a snapshot of a live session, or the stored one.
func (e *Engine) Get(ctx context.Context, id string) (*domain.GameSession, error) {
	if a := e.lookup(id); a != nil {
		a.mu.Lock()
		defer a.mu.Unlock()
		return a.session.Clone(), nil
	}

	s, err := e.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (e *Engine) Hit(ctx context.Context, id string, targetID int32) (*domain.GameSession, error) {
	return e.apply(ctx, id, Hit(targetID))
}

func (e *Engine) Miss(ctx context.Context, id string) (*domain.GameSession, error) {
	return e.apply(ctx, id, Miss())
}

func (e *Engine) Tick(ctx context.Context, id string) (*domain.GameSession, error) {
	return e.apply(ctx, id, Tick())
}

func (e *Engine) Forfeit(ctx context.Context, id string) (*domain.GameSession, error) {
	return e.apply(ctx, id, Forfeit())
}

// Pause suspends the clock so the remaining time is kept exactly.
func (e *Engine) Pause(ctx context.Context, id string) (*domain.GameSession, error) {
	a, err := e.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	if a.session.Status.Terminal() {
		return nil, domain.ErrSessionAlreadyTerminal
	}
	if !a.session.Paused {
		a.session.Paused = true
		e.stopClock(a)
	}
	return a.session.Clone(), nil
}

func (e *Engine) Resume(ctx context.Context, id string) (*domain.GameSession, error) {
	a, err := e.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	if a.session.Status.Terminal() {
		return nil, domain.ErrSessionAlreadyTerminal
	}
	if a.session.Paused {
		a.session.Paused = false
		e.startClock(a)
	}
	return a.session.Clone(), nil
}

func (e *Engine) apply(ctx context.Context, id string, ev Event) (*domain.GameSession, error) {
	a, err := e.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer a.mu.Unlock()
	return e.applyLocked(ctx, a, ev)
}

func (e *Engine) applyLocked(ctx context.Context, a *actor, ev Event) (*domain.GameSession, error) {
	if a.session.Status.Terminal() {
		if !a.archived {
			e.archive(ctx, a)
		}
		return nil, domain.ErrSessionAlreadyTerminal
	}
	if a.session.Paused && ev.Kind != EventForfeit {
		return nil, domain.ErrSessionPaused
	}

	next, err := Transition(a.session, ev, e.rules, e.now().UTC())
	if err != nil {
		return nil, err
	}
	a.session = next

	if next.Status.Terminal() {
		e.stopClock(a)
		zap.L().Info("session finished",
			zap.String("sessionID", next.ID),
			zap.String("status", string(next.Status)),
			zap.Int("score", next.Score),
			zap.Stringer("event", ev.Kind))
		e.archive(ctx, a)
	}
	return next.Clone(), nil
}

// archive persists the terminal state and evicts the actor. On failure the
// actor stays resident so later events still see the terminal state.
func (e *Engine) archive(ctx context.Context, a *actor) {
	if _, err := e.repo.Archive(context.WithoutCancel(ctx), a.session.Clone()); err != nil {
		zap.L().Error("failed to archive session", zap.String("sessionID", a.session.ID), zap.Error(err))
		return
	}
	a.archived = true

	e.mu.Lock()
	if e.actors[a.session.ID] == a {
		delete(e.actors, a.session.ID)
	}
	e.mu.Unlock()
}

// acquire returns the locked actor for id, restoring an active session from
// storage if the engine does not hold it.
func (e *Engine) acquire(ctx context.Context, id string) (*actor, error) {
	a := e.lookup(id)
	if a == nil {
		var err error
		if a, err = e.restore(ctx, id); err != nil {
			return nil, err
		}
	}
	a.mu.Lock()
	return a, nil
}

// restore reads the stored session under e.mu, so a session archived and
// evicted by a concurrent caller is seen as terminal rather than revived.
func (e *Engine) restore(ctx context.Context, id string) (*actor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if a, ok := e.actors[id]; ok {
		return a, nil
	}
	s, err := e.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrSessionNotFound
	}
	if s.Status.Terminal() {
		return nil, domain.ErrSessionAlreadyTerminal
	}
	zap.L().Info("restoring session from storage", zap.String("sessionID", id))
	return e.register(s), nil
}

func (e *Engine) lookup(id string) *actor {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.actors[id]
}

// startClock must be called with a.mu held.
func (e *Engine) startClock(a *actor) {
	if e.tickInterval <= 0 || a.stop != nil {
		return
	}
	a.gen++
	stop := make(chan struct{})
	a.stop = stop
	a.anchor = time.Now()

	// the first tick after a resume only waits out the rest of the interval
	wait := e.tickInterval - a.carry
	if wait < 0 {
		wait = 0
	}
	e.wg.Add(1)
	go e.runClock(a, a.gen, stop, wait)
}

// stopClock must be called with a.mu held.
func (e *Engine) stopClock(a *actor) {
	if a.stop == nil {
		return
	}
	close(a.stop)
	a.stop = nil
	a.gen++

	a.carry += time.Since(a.anchor)
	if a.carry > e.tickInterval {
		a.carry = e.tickInterval
	}
}

func (e *Engine) runClock(a *actor, gen uint64, stop <-chan struct{}, wait time.Duration) {
	defer e.wg.Done()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
			a.mu.Lock()
			if a.gen != gen {
				a.mu.Unlock()
				return
			}
			a.carry = 0
			a.anchor = time.Now()
			_, err := e.applyLocked(context.Background(), a, Tick())
			a.mu.Unlock()
			if err != nil {
				return
			}
			timer.Reset(e.tickInterval)
		}
	}
}

// Shutdown stops every session clock, waits for the clock goroutines and
// checkpoints the progress of live sessions. Sessions remain active in
// storage and are restored on the next event.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	actors := make([]*actor, 0, len(e.actors))
	for _, a := range e.actors {
		actors = append(actors, a)
	}
	e.mu.Unlock()

	for _, a := range actors {
		a.mu.Lock()
		e.stopClock(a)
		a.mu.Unlock()
	}
	e.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), checkpointTimeout)
	defer cancel()
	for _, a := range actors {
		a.mu.Lock()
		if !a.archived && !a.session.Status.Terminal() {
			e.checkpoint(ctx, a)
		}
		a.mu.Unlock()
	}
}

func (e *Engine) checkpoint(ctx context.Context, a *actor) {
	saved, err := e.repo.Checkpoint(ctx, a.session.Clone())
	if err != nil {
		zap.L().Error("failed to checkpoint session", zap.String("sessionID", a.session.ID), zap.Error(err))
		return
	}
	if saved {
		zap.L().Debug("session checkpointed",
			zap.String("sessionID", a.session.ID),
			zap.Int("timeRemaining", a.session.TimeRemaining))
	}
}

// Live reports how many sessions the engine currently drives.
func (e *Engine) Live() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.actors)
}
