package account

import (
	"context"

	"slot_backend/internal/model"
)

// ApplyResult records one finished spin for a logged-in player: the balance
// is set to the value the caller computed (last write wins) and exactly one
// of the win/loss counters goes up by 1.
func (s *serv) ApplyResult(ctx context.Context, playerID string, chips int, win bool) (*model.Account, error) {
	id, err := model.NormalizePlayerID(playerID)
	if err != nil {
		return nil, err
	}
	if chips < 0 {
		return nil, model.NewValidationError("chips", "must not be negative")
	}

	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	var acc *model.Account
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.ApplyResult(txCtx, id, chips, win); err != nil {
			return err
		}
		updated, err := s.repo.GetByPlayerID(txCtx, id)
		if err != nil {
			return err
		}
		acc = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debugw("result applied", "player_id", id, "chips", chips, "win", win)
	return acc, nil
}
