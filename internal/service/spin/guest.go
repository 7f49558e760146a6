package spin

import (
	"context"

	"slot_backend/internal/model"
)

// StartGuest opens a fresh in-memory session with the starting balance.
func (s *serv) StartGuest(_ context.Context) (*model.GuestSession, error) {
	sess := s.guests.Create()
	s.log.Debugw("guest session started", "guest_id", sess.ID)
	return sess, nil
}

// SpinGuest settles a spin against an ephemeral session. No storage is
// involved, so this path works with the database unavailable.
func (s *serv) SpinGuest(_ context.Context, guestID string, bet int) (*model.SpinResult, error) {
	if err := s.validateBet(bet); err != nil {
		return nil, err
	}

	s.locks.Lock(guestID)
	defer s.locks.Unlock(guestID)

	sess, err := s.guests.Get(guestID)
	if err != nil {
		return nil, err
	}
	if sess.Chips < bet {
		return nil, model.NewValidationError("bet", "insufficient chips")
	}

	outcome, err := s.machine.Resolve(bet, s.settings.WinProbability(), s.src)
	if err != nil {
		return nil, err
	}

	updated, err := s.guests.ApplyResult(guestID, settledBalance(sess, bet, outcome), outcome.Win)
	if err != nil {
		return nil, err
	}

	return &model.SpinResult{
		Outcome:     outcome,
		Balance:     updated.Chips,
		TotalWins:   updated.TotalWins,
		TotalLosses: updated.TotalLosses,
	}, nil
}
