package service

import (
	"context"

	"slot_backend/internal/model"
)

// AccountService is the ledger over persisted player accounts.
type AccountService interface {
	LoginOrCreate(ctx context.Context, playerID string) (*model.LoginResult, error)
	ApplyResult(ctx context.Context, playerID string, chips int, win bool) (*model.Account, error)
	Stats(ctx context.Context, playerID string) (*model.AccountStats, error)
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

// SpinService settles server-resolved spins for accounts and guest
// sessions, and exposes the admin probability self-test.
type SpinService interface {
	SpinAccount(ctx context.Context, playerID string, bet int) (*model.SpinResult, error)
	StartGuest(ctx context.Context) (*model.GuestSession, error)
	SpinGuest(ctx context.Context, guestID string, bet int) (*model.SpinResult, error)
	// ProbabilityTest returns the observed win count, the number of trials
	// actually run and the probability in effect.
	ProbabilityTest(trials int) (wins, ran, probability int)
}
