package settings_repo

import (
	"sync"

	"slot_backend/internal/config"
	"slot_backend/internal/repository"
)

// SettingsRepo keeps the admin-adjustable win probability in memory. The
// value is process-wide mutable state, so reads and writes go through an
// RWMutex rather than a bare package variable.
type SettingsRepo struct {
	mtx sync.RWMutex

	winProbability int
	minProbability int
	maxProbability int
}

func NewSettingsRepository(cfg config.SlotConfig) repository.SettingsRepository {
	return &SettingsRepo{
		winProbability: cfg.DefaultWinProbability(),
		minProbability: cfg.MinWinProbability(),
		maxProbability: cfg.MaxWinProbability(),
	}
}

func (r *SettingsRepo) WinProbability() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.winProbability
}

// SetWinProbability clamps p to the configured admin range and stores it.
// Returns the value actually applied.
func (r *SettingsRepo) SetWinProbability(p int) int {
	if p < r.minProbability {
		p = r.minProbability
	}
	if p > r.maxProbability {
		p = r.maxProbability
	}

	r.mtx.Lock()
	r.winProbability = p
	r.mtx.Unlock()

	return p
}
