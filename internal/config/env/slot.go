package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"slot_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// slotYAML mirrors the slot section of config.yaml.
type slotYAML struct {
	Slot struct {
		Symbols            []string       `yaml:"symbols"`
		Payouts            map[string]int `yaml:"payouts"`
		WinProbability     int            `yaml:"win_probability"`
		MinWinProbability  int            `yaml:"min_win_probability"`
		MaxWinProbability  int            `yaml:"max_win_probability"`
		Bets               []int          `yaml:"bets"`
		LossRedrawAttempts int            `yaml:"loss_redraw_attempts"`
		StartingChips      int            `yaml:"starting_chips"`
		LeaderboardLimit   int            `yaml:"leaderboard_limit"`
		GuestTTLMinutes    int            `yaml:"guest_ttl_minutes"`
	} `yaml:"slot"`
}

type slotConfig struct {
	symbols            []string
	multipliers        map[string]int
	winProbability     int
	minWinProbability  int
	maxWinProbability  int
	bets               []int
	lossRedrawAttempts int
	startingChips      int
	leaderboardLimit   int
	guestTTL           time.Duration
}

// NewSlotConfigFromYAML reads the machine configuration from a YAML file
// and validates the payout table against the symbol set.
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw slotYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	s := raw.Slot

	if len(s.Symbols) == 0 {
		return nil, errors.New("slot config: no symbols")
	}
	seen := make(map[string]bool, len(s.Symbols))
	for _, sym := range s.Symbols {
		if sym == "" {
			return nil, errors.New("slot config: empty symbol")
		}
		if seen[sym] {
			return nil, fmt.Errorf("slot config: duplicate symbol %q", sym)
		}
		seen[sym] = true
	}
	if len(s.Payouts) == 0 {
		return nil, errors.New("slot config: no payouts")
	}
	for sym, mult := range s.Payouts {
		if !seen[sym] {
			return nil, fmt.Errorf("slot config: payout for unknown symbol %q", sym)
		}
		if mult <= 0 {
			return nil, fmt.Errorf("slot config: non-positive multiplier for %q", sym)
		}
	}
	if s.WinProbability < 0 || s.WinProbability > 100 {
		return nil, fmt.Errorf("slot config: win_probability %d out of [0,100]", s.WinProbability)
	}
	if s.MinWinProbability < 0 || s.MaxWinProbability > 100 || s.MinWinProbability > s.MaxWinProbability {
		return nil, errors.New("slot config: invalid win probability bounds")
	}
	if len(s.Bets) == 0 {
		return nil, errors.New("slot config: no bets")
	}
	for _, b := range s.Bets {
		if b <= 0 {
			return nil, fmt.Errorf("slot config: non-positive bet %d", b)
		}
	}
	if s.LossRedrawAttempts <= 0 {
		return nil, errors.New("slot config: loss_redraw_attempts must be positive")
	}
	if s.StartingChips < 0 {
		return nil, errors.New("slot config: negative starting_chips")
	}
	if s.LeaderboardLimit <= 0 {
		return nil, errors.New("slot config: leaderboard_limit must be positive")
	}
	if s.GuestTTLMinutes <= 0 {
		return nil, errors.New("slot config: guest_ttl_minutes must be positive")
	}

	return &slotConfig{
		symbols:            s.Symbols,
		multipliers:        s.Payouts,
		winProbability:     s.WinProbability,
		minWinProbability:  s.MinWinProbability,
		maxWinProbability:  s.MaxWinProbability,
		bets:               s.Bets,
		lossRedrawAttempts: s.LossRedrawAttempts,
		startingChips:      s.StartingChips,
		leaderboardLimit:   s.LeaderboardLimit,
		guestTTL:           time.Duration(s.GuestTTLMinutes) * time.Minute,
	}, nil
}

func (cfg *slotConfig) Symbols() []string              { return cfg.symbols }
func (cfg *slotConfig) Multipliers() map[string]int    { return cfg.multipliers }
func (cfg *slotConfig) DefaultWinProbability() int     { return cfg.winProbability }
func (cfg *slotConfig) MinWinProbability() int         { return cfg.minWinProbability }
func (cfg *slotConfig) MaxWinProbability() int         { return cfg.maxWinProbability }
func (cfg *slotConfig) Bets() []int                    { return cfg.bets }
func (cfg *slotConfig) LossRedrawAttempts() int        { return cfg.lossRedrawAttempts }
func (cfg *slotConfig) StartingChips() int             { return cfg.startingChips }
func (cfg *slotConfig) LeaderboardLimit() int          { return cfg.leaderboardLimit }
func (cfg *slotConfig) GuestSessionTTL() time.Duration { return cfg.guestTTL }
