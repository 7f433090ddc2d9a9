// Package memstore is an in-process implementation of every repository used by
// the services. It serialises all access behind one lock and supports
// transactions through an undo log.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/gamearena/internal/domain"
)

type txKey struct{}

type txState struct {
	store *Store
	undo  []func()
}

func (t *txState) record(undo func()) {
	if t != nil {
		t.undo = append(t.undo, undo)
	}
}

type Store struct {
	mu  sync.Mutex
	now func() time.Time

	accounts     map[string]*domain.Account
	transactions map[string]*domain.Transaction
	txOrder      []string
	competitions map[string]*domain.Competition
	sessions     map[string]*domain.GameSession
}

func New() *Store {
	return &Store{
		now:          time.Now,
		accounts:     make(map[string]*domain.Account),
		transactions: make(map[string]*domain.Transaction),
		competitions: make(map[string]*domain.Competition),
		sessions:     make(map[string]*domain.GameSession),
	}
}

// Begin runs fn with the store locked. Changes made by fn are rolled back if
// it returns an error. A nested Begin joins the outer transaction.
func (s *Store) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if t, ok := ctx.Value(txKey{}).(*txState); ok && t.store == s {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &txState{store: s}
	err := fn(context.WithValue(ctx, txKey{}, t))
	if err != nil {
		for i := len(t.undo) - 1; i >= 0; i-- {
			t.undo[i]()
		}
	}
	return err
}

// do runs fn under the store lock unless ctx already holds it.
func (s *Store) do(ctx context.Context, fn func(t *txState)) {
	if t, ok := ctx.Value(txKey{}).(*txState); ok && t.store == s {
		fn(t)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(nil)
}

func (s *Store) Accounts() *AccountRepo         { return &AccountRepo{s: s} }
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }
func (s *Store) Competitions() *CompetitionRepo { return &CompetitionRepo{s: s} }
func (s *Store) Sessions() *SessionRepo         { return &SessionRepo{s: s} }

type AccountRepo struct{ s *Store }

func (r *AccountRepo) Ensure(ctx context.Context, userID string) error {
	r.s.do(ctx, func(t *txState) {
		r.s.ensureLocked(t, userID)
	})
	return nil
}

func (s *Store) ensureLocked(t *txState, userID string) *domain.Account {
	if a, ok := s.accounts[userID]; ok {
		return a
	}
	a := &domain.Account{UserID: userID, CreatedAt: s.now().UTC()}
	s.accounts[userID] = a
	t.record(func() { delete(s.accounts, userID) })
	return a
}

// setAccount replaces the stored account and records the previous value.
func (s *Store) setAccount(t *txState, next *domain.Account) {
	prev := s.accounts[next.UserID]
	s.accounts[next.UserID] = next
	t.record(func() {
		if prev == nil {
			delete(s.accounts, next.UserID)
			return
		}
		s.accounts[next.UserID] = prev
	})
}

func copyAccount(a *domain.Account) *domain.Account {
	c := *a
	if a.BanExpiresAt != nil {
		e := *a.BanExpiresAt
		c.BanExpiresAt = &e
	}
	return &c
}

func (r *AccountRepo) Get(ctx context.Context, userID string) (*domain.Account, error) {
	var out *domain.Account
	r.s.do(ctx, func(*txState) {
		if a, ok := r.s.accounts[userID]; ok {
			out = copyAccount(a)
		}
	})
	return out, nil
}

func (r *AccountRepo) ApplyDelta(ctx context.Context, userID string, delta int64) (*domain.Account, error) {
	var out *domain.Account
	r.s.do(ctx, func(t *txState) {
		a, ok := r.s.accounts[userID]
		if !ok || a.Balance+delta < 0 {
			return
		}
		next := copyAccount(a)
		next.Balance += delta
		r.s.setAccount(t, next)
		out = copyAccount(next)
	})
	return out, nil
}

func (r *AccountRepo) SetBan(ctx context.Context, userID, reason string, expiresAt time.Time) (*domain.Account, error) {
	var out *domain.Account
	r.s.do(ctx, func(t *txState) {
		next := copyAccount(r.s.ensureLocked(t, userID))
		next.IsBanned = true
		next.BanReason = reason
		next.BanExpiresAt = &expiresAt
		r.s.setAccount(t, next)
		out = copyAccount(next)
	})
	return out, nil
}

func (r *AccountRepo) ClearBan(ctx context.Context, userID string) (*domain.Account, error) {
	var out *domain.Account
	r.s.do(ctx, func(t *txState) {
		a, ok := r.s.accounts[userID]
		if !ok {
			return
		}
		next := copyAccount(a)
		next.IsBanned = false
		next.BanReason = ""
		next.BanExpiresAt = nil
		r.s.setAccount(t, next)
		out = copyAccount(next)
	})
	return out, nil
}

func (r *AccountRepo) ClearExpiredBan(ctx context.Context, userID string, now time.Time) (bool, error) {
	var cleared bool
	r.s.do(ctx, func(t *txState) {
		a, ok := r.s.accounts[userID]
		if !ok || !a.IsBanned || a.BanExpiresAt == nil || a.BanExpiresAt.After(now) {
			return
		}
		next := copyAccount(a)
		next.IsBanned = false
		next.BanReason = ""
		next.BanExpiresAt = nil
		r.s.setAccount(t, next)
		cleared = true
	})
	return cleared, nil
}

type TransactionRepo struct{ s *Store }

func (r *TransactionRepo) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	r.s.do(ctx, func(t *txState) {
		now := r.s.now().UTC()
		tx.CreatedAt = now
		tx.UpdatedAt = now
		stored := *tx
		r.s.transactions[tx.ID] = &stored
		r.s.txOrder = append(r.s.txOrder, tx.ID)
		t.record(func() {
			delete(r.s.transactions, tx.ID)
			r.s.txOrder = r.s.txOrder[:len(r.s.txOrder)-1]
		})
	})
	return tx, nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var out *domain.Transaction
	r.s.do(ctx, func(*txState) {
		if tx, ok := r.s.transactions[id]; ok {
			c := *tx
			out = &c
		}
	})
	return out, nil
}

func (r *TransactionRepo) UpdateStatus(ctx context.Context, id string, from, to domain.TransactionStatus) (*domain.Transaction, error) {
	var out *domain.Transaction
	r.s.do(ctx, func(t *txState) {
		tx, ok := r.s.transactions[id]
		if !ok || tx.Status != from {
			return
		}
		prev := *tx
		tx.Status = to
		tx.UpdatedAt = r.s.now().UTC()
		t.record(func() { *tx = prev })
		c := *tx
		out = &c
	})
	return out, nil
}

func (r *TransactionRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return r.list(ctx, true, func(tx *domain.Transaction) bool { return tx.UserID == userID }), nil
}

func (r *TransactionRepo) ListPendingWithdrawals(ctx context.Context) ([]domain.Transaction, error) {
	return r.list(ctx, false, func(tx *domain.Transaction) bool {
		return tx.Kind == domain.KindWithdrawal && tx.Status == domain.StatusPending
	}), nil
}

func (r *TransactionRepo) list(ctx context.Context, newestFirst bool, match func(*domain.Transaction) bool) []domain.Transaction {
	var out []domain.Transaction
	r.s.do(ctx, func(*txState) {
		for _, id := range r.s.txOrder {
			if tx := r.s.transactions[id]; match(tx) {
				out = append(out, *tx)
			}
		}
	})
	if newestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

type CompetitionRepo struct{ s *Store }

func (r *CompetitionRepo) Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error) {
	var err error
	r.s.do(ctx, func(t *txState) {
		if _, ok := r.s.competitions[c.ID]; ok {
			err = domain.ErrInvalidCompetition
			return
		}
		c.CreatedAt = r.s.now().UTC()
		stored := *c
		r.s.competitions[c.ID] = &stored
		t.record(func() { delete(r.s.competitions, c.ID) })
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CompetitionRepo) GetByID(ctx context.Context, id string) (*domain.Competition, error) {
	var out *domain.Competition
	r.s.do(ctx, func(*txState) {
		if c, ok := r.s.competitions[id]; ok {
			cp := *c
			out = &cp
		}
	})
	return out, nil
}

func (r *CompetitionRepo) List(ctx context.Context) ([]domain.Competition, error) {
	var out []domain.Competition
	r.s.do(ctx, func(*txState) {
		for _, c := range r.s.competitions {
			out = append(out, *c)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *CompetitionRepo) ReserveSpot(ctx context.Context, id string) (*domain.Competition, error) {
	var out *domain.Competition
	r.s.do(ctx, func(t *txState) {
		c, ok := r.s.competitions[id]
		if !ok || c.Participants >= c.TotalSpots || c.Status == domain.CompetitionResults {
			return
		}
		c.Participants++
		t.record(func() { c.Participants-- })
		cp := *c
		out = &cp
	})
	return out, nil
}

func (r *CompetitionRepo) ReleaseSpot(ctx context.Context, id string) (bool, error) {
	var released bool
	r.s.do(ctx, func(t *txState) {
		c, ok := r.s.competitions[id]
		if !ok || c.Participants <= 0 {
			return
		}
		c.Participants--
		t.record(func() { c.Participants++ })
		released = true
	})
	return released, nil
}

func (r *CompetitionRepo) UpdateStatus(ctx context.Context, id string, from, to domain.CompetitionStatus) (bool, error) {
	var updated bool
	r.s.do(ctx, func(t *txState) {
		c, ok := r.s.competitions[id]
		if !ok || c.Status != from {
			return
		}
		c.Status = to
		t.record(func() { c.Status = from })
		updated = true
	})
	return updated, nil
}

type SessionRepo struct{ s *Store }

func (r *SessionRepo) Create(ctx context.Context, gs *domain.GameSession) error {
	var err error
	r.s.do(ctx, func(t *txState) {
		for _, other := range r.s.sessions {
			if other.Status == domain.SessionActive &&
				other.UserID == gs.UserID && other.CompetitionID == gs.CompetitionID {
				err = domain.ErrSessionExists
				return
			}
		}
		r.s.sessions[gs.ID] = gs.Clone()
		t.record(func() { delete(r.s.sessions, gs.ID) })
	})
	return err
}

func (r *SessionRepo) GetByID(ctx context.Context, id string) (*domain.GameSession, error) {
	var out *domain.GameSession
	r.s.do(ctx, func(*txState) {
		if gs, ok := r.s.sessions[id]; ok {
			out = gs.Clone()
		}
	})
	return out, nil
}

func (r *SessionRepo) GetActive(ctx context.Context, userID, competitionID string) (*domain.GameSession, error) {
	var out *domain.GameSession
	r.s.do(ctx, func(*txState) {
		for _, gs := range r.s.sessions {
			if gs.Status == domain.SessionActive && gs.UserID == userID && gs.CompetitionID == competitionID {
				out = gs.Clone()
				return
			}
		}
	})
	return out, nil
}

func (r *SessionRepo) Archive(ctx context.Context, gs *domain.GameSession) (bool, error) {
	var archived bool
	r.s.do(ctx, func(t *txState) {
		prev, ok := r.s.sessions[gs.ID]
		if !ok || prev.Status != domain.SessionActive {
			return
		}
		next := gs.Clone()
		next.Paused = false
		next.Settled = prev.Settled
		next.Winnings = prev.Winnings
		r.s.sessions[gs.ID] = next
		t.record(func() { r.s.sessions[gs.ID] = prev })
		archived = true
	})
	return archived, nil
}

func (r *SessionRepo) Checkpoint(ctx context.Context, gs *domain.GameSession) (bool, error) {
	var saved bool
	r.s.do(ctx, func(t *txState) {
		prev, ok := r.s.sessions[gs.ID]
		if !ok || prev.Status != domain.SessionActive {
			return
		}
		next := prev.Clone()
		next.Score = gs.Score
		next.WrongClicks = gs.WrongClicks
		next.TimeRemaining = gs.TimeRemaining
		next.FoundTargets = append([]int32{}, gs.FoundTargets...)
		r.s.sessions[gs.ID] = next
		t.record(func() { r.s.sessions[gs.ID] = prev })
		saved = true
	})
	return saved, nil
}

func (r *SessionRepo) FindForSettlement(ctx context.Context, limit uint32) ([]domain.GameSession, error) {
	var out []domain.GameSession
	r.s.do(ctx, func(*txState) {
		for _, gs := range r.s.sessions {
			c, ok := r.s.competitions[gs.CompetitionID]
			if !ok || c.Status != domain.CompetitionResults || !gs.Status.Terminal() || gs.Settled {
				continue
			}
			out = append(out, *gs.Clone())
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if uint32(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *SessionRepo) MarkSettled(ctx context.Context, id string, winnings int64) (bool, error) {
	var marked bool
	r.s.do(ctx, func(t *txState) {
		gs, ok := r.s.sessions[id]
		if !ok || !gs.Status.Terminal() || gs.Settled {
			return
		}
		gs.Settled = true
		gs.Winnings = winnings
		t.record(func() {
			gs.Settled = false
			gs.Winnings = 0
		})
		marked = true
	})
	return marked, nil
}
