package account

import (
	"context"

	"slot_backend/internal/model"
)

// Leaderboard recomputes the ranking from the ledger on every call: top
// accounts by balance descending, ties in arbitrary order. A non-positive
// limit falls back to the configured default.
func (s *serv) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = s.cfg.LeaderboardLimit()
	}

	accounts, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, len(accounts))
	for i, acc := range accounts {
		entries[i] = model.LeaderboardEntry{
			PlayerID:    acc.PlayerID,
			Chips:       acc.Chips,
			TotalWins:   acc.TotalWins,
			TotalLosses: acc.TotalLosses,
			WinRate:     model.WinRate(acc.TotalWins, acc.TotalLosses),
		}
	}
	return entries, nil
}
