package account

import (
	"context"
	"errors"

	"slot_backend/internal/model"
)

// LoginOrCreate upserts an account: a first login creates it with the
// starting balance and zero counters, every later login only stamps
// last_login. The Created flag tells the caller which path was taken.
func (s *serv) LoginOrCreate(ctx context.Context, playerID string) (*model.LoginResult, error) {
	id, err := model.NormalizePlayerID(playerID)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	var result model.LoginResult
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := s.repo.GetByPlayerID(txCtx, id)
		if errors.Is(err, model.ErrNotFound) {
			created, err := s.repo.Create(txCtx, id, s.cfg.StartingChips())
			if err != nil {
				return err
			}
			result = model.LoginResult{Account: *created, Created: true}
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.repo.TouchLastLogin(txCtx, id); err != nil {
			return err
		}
		// Re-read so the returned account carries the fresh timestamp.
		touched, err := s.repo.GetByPlayerID(txCtx, id)
		if err != nil {
			return err
		}
		result = model.LoginResult{Account: *touched, Created: false}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		s.log.Infow("account created", "player_id", id, "chips", result.Account.Chips)
	} else {
		s.log.Debugw("account login", "player_id", id)
	}

	return &result, nil
}
