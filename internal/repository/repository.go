package repository

import (
	"context"

	"slot_backend/internal/model"
)

// AccountRepository owns the persisted accounts table. Every method that
// touches more than one row of state is expected to run inside a
// transaction managed by the caller.
type AccountRepository interface {
	EnsureSchema(ctx context.Context) error

	GetByPlayerID(ctx context.Context, playerID string) (*model.Account, error)
	Create(ctx context.Context, playerID string, chips int) (*model.Account, error)
	TouchLastLogin(ctx context.Context, playerID string) error

	// ApplyResult sets the balance and increments exactly one of the
	// win/loss counters. Returns model.ErrNotFound for an unknown player.
	ApplyResult(ctx context.Context, playerID string, chips int, win bool) error

	Leaderboard(ctx context.Context, limit int) ([]model.Account, error)
}

// SettingsRepository holds the process-wide, admin-adjustable win
// probability.
type SettingsRepository interface {
	WinProbability() int
	// SetWinProbability clamps to the configured bounds and returns the
	// value actually applied.
	SetWinProbability(p int) int
}

// GuestRepository holds ephemeral guest sessions in memory. Nothing here is
// ever persisted.
type GuestRepository interface {
	Create() *model.GuestSession
	Get(id string) (*model.GuestSession, error)
	ApplyResult(id string, chips int, win bool) (*model.GuestSession, error)
	Sweep() int
}
