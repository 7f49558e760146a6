package guest_repo

import (
	"errors"
	"testing"
	"time"

	"slot_backend/internal/model"
)

type testConfig struct{}

func (testConfig) Symbols() []string           { return []string{"🍒"} }
func (testConfig) Multipliers() map[string]int { return map[string]int{"🍒": 2} }
func (testConfig) DefaultWinProbability() int  { return 25 }
func (testConfig) MinWinProbability() int      { return 1 }
func (testConfig) MaxWinProbability() int      { return 50 }
func (testConfig) Bets() []int                 { return []int{1} }
func (testConfig) LossRedrawAttempts() int     { return 50 }
func (testConfig) StartingChips() int          { return 100 }
func (testConfig) LeaderboardLimit() int       { return 10 }
func (testConfig) GuestSessionTTL() time.Duration {
	return 30 * time.Minute
}

func TestCreateAndGet(t *testing.T) {
	r := NewGuestRepository(testConfig{})

	sess := r.Create()
	if sess.ID == "" {
		t.Fatal("session id must not be empty")
	}
	if sess.Chips != 100 {
		t.Errorf("starting chips = %d, want 100", sess.Chips)
	}

	got, err := r.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != sess.ID || got.Chips != sess.Chips {
		t.Errorf("Get returned %+v, want %+v", got, sess)
	}
}

func TestGet_Unknown(t *testing.T) {
	r := NewGuestRepository(testConfig{})

	_, err := r.Get("missing")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyResult(t *testing.T) {
	r := NewGuestRepository(testConfig{})
	sess := r.Create()

	updated, err := r.ApplyResult(sess.ID, 97, false)
	if err != nil {
		t.Fatalf("ApplyResult failed: %v", err)
	}
	if updated.Chips != 97 || updated.TotalLosses != 1 || updated.TotalWins != 0 {
		t.Errorf("after loss: %+v", updated)
	}

	updated, err = r.ApplyResult(sess.ID, 103, true)
	if err != nil {
		t.Fatalf("ApplyResult failed: %v", err)
	}
	if updated.Chips != 103 || updated.TotalWins != 1 || updated.TotalLosses != 1 {
		t.Errorf("after win: %+v", updated)
	}
}

func TestApplyResult_Unknown(t *testing.T) {
	r := NewGuestRepository(testConfig{})

	_, err := r.ApplyResult("missing", 50, true)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	r := NewGuestRepository(testConfig{})
	sess := r.Create()

	got, err := r.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got.Chips = 9999

	again, err := r.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again.Chips != 100 {
		t.Error("mutating a returned session must not affect the stored one")
	}
}

func TestSweep(t *testing.T) {
	r := NewGuestRepository(testConfig{}).(*GuestRepo)

	now := time.Now()
	r.now = func() time.Time { return now }
	stale := r.Create()
	fresh := r.Create()

	// Age only the first session past the TTL.
	r.now = func() time.Time { return now.Add(10 * time.Minute) }
	if _, err := r.ApplyResult(fresh.ID, 100, true); err != nil {
		t.Fatalf("ApplyResult failed: %v", err)
	}

	r.now = func() time.Time { return now.Add(35 * time.Minute) }
	if removed := r.Sweep(); removed != 1 {
		t.Errorf("swept %d sessions, want 1", removed)
	}

	if _, err := r.Get(stale.ID); !errors.Is(err, model.ErrNotFound) {
		t.Error("stale session must be gone after sweep")
	}
	if _, err := r.Get(fresh.ID); err != nil {
		t.Errorf("fresh session must survive sweep: %v", err)
	}
}
