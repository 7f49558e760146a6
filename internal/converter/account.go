package converter

import (
	dto "slot_backend/internal/api/dto/account"
	"slot_backend/internal/model"
)

func ToLoginResponse(res model.LoginResult) dto.LoginResponse {
	return dto.LoginResponse{
		Success: true,
		User: dto.UserPayload{
			StudentID:   res.Account.PlayerID,
			Chips:       res.Account.Chips,
			TotalWins:   res.Account.TotalWins,
			TotalLosses: res.Account.TotalLosses,
			IsNew:       res.Created,
		},
	}
}

func ToStatsResponse(stats model.AccountStats) dto.StatsResponse {
	return dto.StatsResponse{
		StudentID:   stats.PlayerID,
		Chips:       stats.Chips,
		TotalWins:   stats.TotalWins,
		TotalLosses: stats.TotalLosses,
		WinRate:     stats.WinRate,
		CreatedAt:   stats.CreatedAt,
		LastLogin:   stats.LastLogin,
	}
}

func ToRankingResponse(entries []model.LeaderboardEntry) []dto.RankingEntry {
	result := make([]dto.RankingEntry, len(entries))
	for i, e := range entries {
		result[i] = dto.RankingEntry{
			StudentID:   e.PlayerID,
			Chips:       e.Chips,
			TotalWins:   e.TotalWins,
			TotalLosses: e.TotalLosses,
			WinRate:     e.WinRate,
		}
	}
	return result
}
