package model

import (
	"math"
	"strings"
	"time"
	"unicode"
)

const maxPlayerIDLen = 64

// Account is the persisted per-player ledger record. It is created on first
// login and never deleted; chips and both counters stay non-negative.
type Account struct {
	ID          int
	PlayerID    string
	Chips       int
	TotalWins   int
	TotalLosses int
	CreatedAt   time.Time
	LastLogin   time.Time
}

func (a Account) CurrentBalance() int {
	return a.Chips
}

// AccountStats is the read projection returned by the stats endpoint.
type AccountStats struct {
	PlayerID    string
	Chips       int
	TotalWins   int
	TotalLosses int
	WinRate     float64
	CreatedAt   time.Time
	LastLogin   time.Time
}

// LeaderboardEntry is a read-only ranking row derived from an Account.
type LeaderboardEntry struct {
	PlayerID    string
	Chips       int
	TotalWins   int
	TotalLosses int
	WinRate     float64
}

// LoginResult carries the account returned from login together with the
// flag telling whether it was created by this call.
type LoginResult struct {
	Account Account
	Created bool
}

// NormalizePlayerID trims and validates a player identifier. The identifier
// is a bare string, not a credential.
func NormalizePlayerID(playerID string) (string, error) {
	id := strings.TrimSpace(playerID)
	if id == "" {
		return "", NewValidationError("playerId", "must not be empty")
	}
	if len(id) > maxPlayerIDLen {
		return "", NewValidationError("playerId", "too long")
	}
	for _, r := range id {
		if r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return "", NewValidationError("playerId", "contains invalid characters")
	}
	return id, nil
}

// WinRate returns wins/(wins+losses) as a percentage rounded to one
// decimal, or 0 when no spins were recorded yet.
func WinRate(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	rate := float64(wins) / float64(total) * 100
	return math.Round(rate*10) / 10
}
