package account

import "time"

type LoginRequest struct {
	StudentID string `json:"studentId"` // Player identifier, a bare string
}

type UserPayload struct {
	StudentID   string `json:"studentId"`
	Chips       int    `json:"chips"`
	TotalWins   int    `json:"totalWins"`
	TotalLosses int    `json:"totalLosses"`
	IsNew       bool   `json:"isNew"` // true when this login created the account
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    UserPayload `json:"user"`
}

type UpdateChipsRequest struct {
	StudentID string `json:"studentId"`
	Chips     int    `json:"chips"` // New balance, computed by the client
	IsWin     bool   `json:"isWin"`
}

type UpdateChipsResponse struct {
	Success bool `json:"success"`
	Chips   int  `json:"chips"`
}

type StatsResponse struct {
	StudentID   string    `json:"studentId"`
	Chips       int       `json:"chips"`
	TotalWins   int       `json:"totalWins"`
	TotalLosses int       `json:"totalLosses"`
	WinRate     float64   `json:"winRate"` // Percentage, one decimal
	CreatedAt   time.Time `json:"createdAt"`
	LastLogin   time.Time `json:"lastLogin"`
}

// RankingEntry keeps the original snake_case ranking row shape.
type RankingEntry struct {
	StudentID   string  `json:"student_id"`
	Chips       int     `json:"chips"`
	TotalWins   int     `json:"total_wins"`
	TotalLosses int     `json:"total_losses"`
	WinRate     float64 `json:"win_rate"`
}
