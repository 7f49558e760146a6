package account

import (
	"context"

	"slot_backend/internal/model"
)

// Stats returns the stats projection for one player, including the win rate
// rounded to one decimal.
func (s *serv) Stats(ctx context.Context, playerID string) (*model.AccountStats, error) {
	id, err := model.NormalizePlayerID(playerID)
	if err != nil {
		return nil, err
	}

	acc, err := s.repo.GetByPlayerID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.AccountStats{
		PlayerID:    acc.PlayerID,
		Chips:       acc.Chips,
		TotalWins:   acc.TotalWins,
		TotalLosses: acc.TotalLosses,
		WinRate:     model.WinRate(acc.TotalWins, acc.TotalLosses),
		CreatedAt:   acc.CreatedAt,
		LastLogin:   acc.LastLogin,
	}, nil
}
