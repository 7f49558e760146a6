package spin

import (
	"context"

	"slot_backend/internal/model"
)

// SpinAccount runs one spin for a logged-in player: debit the bet, resolve
// the outcome under the current win probability, credit the payout and
// record the result, all inside one transaction serialized per player.
func (s *serv) SpinAccount(ctx context.Context, playerID string, bet int) (*model.SpinResult, error) {
	id, err := model.NormalizePlayerID(playerID)
	if err != nil {
		return nil, err
	}
	if err := s.validateBet(bet); err != nil {
		return nil, err
	}

	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	var result *model.SpinResult
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		acc, err := s.accounts.GetByPlayerID(txCtx, id)
		if err != nil {
			return err
		}
		if acc.Chips < bet {
			return model.NewValidationError("bet", "insufficient chips")
		}

		outcome, err := s.machine.Resolve(bet, s.settings.WinProbability(), s.src)
		if err != nil {
			return err
		}

		newChips := settledBalance(acc, bet, outcome)
		if err := s.accounts.ApplyResult(txCtx, id, newChips, outcome.Win); err != nil {
			return err
		}

		wins, losses := acc.TotalWins, acc.TotalLosses
		if outcome.Win {
			wins++
		} else {
			losses++
		}
		result = &model.SpinResult{
			Outcome:     outcome,
			Balance:     newChips,
			TotalWins:   wins,
			TotalLosses: losses,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome.ForcedLossWin {
		s.log.Warnw("loss redraw bound exhausted on a winning triple",
			"player_id", id, "combination", result.Outcome.Combination.Key())
	}
	s.log.Debugw("spin settled",
		"player_id", id, "bet", bet, "win", result.Outcome.Win,
		"payout", result.Outcome.Payout, "balance", result.Balance)

	return result, nil
}
