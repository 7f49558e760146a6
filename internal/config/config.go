package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// SlotConfig describes the machine: the symbol set, the payout multipliers
// for the all-equal triples and the tuning knobs of the outcome engine.
type SlotConfig interface {
	Symbols() []string
	Multipliers() map[string]int
	DefaultWinProbability() int
	MinWinProbability() int
	MaxWinProbability() int
	Bets() []int
	LossRedrawAttempts() int
	StartingChips() int
	LeaderboardLimit() int
	GuestSessionTTL() time.Duration
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type AdminConfig interface {
	Secret() string
}
