package guest_repo

import (
	"sync"
	"time"

	"slot_backend/internal/config"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"

	"github.com/google/uuid"
)

// GuestRepo holds guest sessions in a mutex-guarded map. Sessions start
// with the configured chip balance, live only in this process and are
// dropped after the configured idle TTL.
type GuestRepo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.GuestSession

	startingChips int
	ttl           time.Duration
	now           func() time.Time
}

func NewGuestRepository(cfg config.SlotConfig) repository.GuestRepository {
	return &GuestRepo{
		sessions:      make(map[string]*model.GuestSession),
		startingChips: cfg.StartingChips(),
		ttl:           cfg.GuestSessionTTL(),
		now:           time.Now,
	}
}

func (r *GuestRepo) Create() *model.GuestSession {
	now := r.now()
	sess := &model.GuestSession{
		ID:        uuid.NewString(),
		Chips:     r.startingChips,
		CreatedAt: now,
		LastSeen:  now,
	}

	r.mtx.Lock()
	r.sessions[sess.ID] = sess
	r.mtx.Unlock()

	copied := *sess
	return &copied
}

// Get returns a copy of the session, or model.ErrNotFound.
func (r *GuestRepo) Get(id string) (*model.GuestSession, error) {
	r.mtx.RLock()
	sess, ok := r.sessions[id]
	r.mtx.RUnlock()
	if !ok {
		return nil, model.ErrNotFound
	}

	copied := *sess
	return &copied, nil
}

// ApplyResult mirrors the ledger write for guests: set the balance, bump
// one counter, refresh the idle stamp.
func (r *GuestRepo) ApplyResult(id string, chips int, win bool) (*model.GuestSession, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	sess.Chips = chips
	if win {
		sess.TotalWins++
	} else {
		sess.TotalLosses++
	}
	sess.LastSeen = r.now()

	copied := *sess
	return &copied, nil
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (r *GuestRepo) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mtx.Lock()
	defer r.mtx.Unlock()

	removed := 0
	for id, sess := range r.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
