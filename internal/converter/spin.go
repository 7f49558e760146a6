package converter

import (
	dto "slot_backend/internal/api/dto/spin"
	"slot_backend/internal/model"
)

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Reels:         [3]string(res.Outcome.Combination),
		Win:           res.Outcome.Win,
		Payout:        res.Outcome.Payout,
		Chips:         res.Balance,
		TotalWins:     res.TotalWins,
		TotalLosses:   res.TotalLosses,
		ForcedLossWin: res.Outcome.ForcedLossWin,
	}
}

func ToGuestResponse(sess model.GuestSession) dto.GuestResponse {
	return dto.GuestResponse{
		GuestID: sess.ID,
		Chips:   sess.Chips,
	}
}
