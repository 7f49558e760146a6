package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
slot:
  symbols: ["🍎", "🍊", "🍋", "🍇", "🍒", "⭐", "💎", "🔔"]
  payouts:
    "🍒": 2
    "🍋": 2
    "🍊": 2
    "🍇": 2
    "🍎": 3
    "⭐": 3
    "💎": 3
    "🔔": 3
  win_probability: 25
  min_win_probability: 1
  max_win_probability: 50
  bets: [1, 2, 3]
  loss_redraw_attempts: 50
  starting_chips: 100
  leaderboard_limit: 10
  guest_ttl_minutes: 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewSlotConfigFromYAML(t *testing.T) {
	cfg, err := NewSlotConfigFromYAML(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(cfg.Symbols()) != 8 {
		t.Errorf("symbols = %d, want 8", len(cfg.Symbols()))
	}
	if len(cfg.Multipliers()) != 8 {
		t.Errorf("multipliers = %d, want 8", len(cfg.Multipliers()))
	}
	if cfg.DefaultWinProbability() != 25 {
		t.Errorf("default probability = %d, want 25", cfg.DefaultWinProbability())
	}
	if cfg.MinWinProbability() != 1 || cfg.MaxWinProbability() != 50 {
		t.Errorf("probability bounds = [%d,%d], want [1,50]", cfg.MinWinProbability(), cfg.MaxWinProbability())
	}
	if cfg.LossRedrawAttempts() != 50 {
		t.Errorf("loss redraw attempts = %d, want 50", cfg.LossRedrawAttempts())
	}
	if cfg.StartingChips() != 100 {
		t.Errorf("starting chips = %d, want 100", cfg.StartingChips())
	}
	if cfg.GuestSessionTTL() != 30*time.Minute {
		t.Errorf("guest ttl = %v, want 30m", cfg.GuestSessionTTL())
	}
}

func TestNewSlotConfigFromYAML_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing file":   "",
		"no symbols":     "slot:\n  payouts:\n    \"🍒\": 2\n  win_probability: 25\n",
		"unknown payout": "slot:\n  symbols: [\"🍒\"]\n  payouts:\n    \"🍋\": 2\n",
		"zero multiplier": `
slot:
  symbols: ["🍒"]
  payouts:
    "🍒": 0
  win_probability: 25
  min_win_probability: 1
  max_win_probability: 50
  bets: [1]
  loss_redraw_attempts: 50
  starting_chips: 100
  leaderboard_limit: 10
  guest_ttl_minutes: 30
`,
		"probability out of range": `
slot:
  symbols: ["🍒"]
  payouts:
    "🍒": 2
  win_probability: 101
  min_win_probability: 1
  max_win_probability: 50
  bets: [1]
  loss_redraw_attempts: 50
  starting_chips: 100
  leaderboard_limit: 10
  guest_ttl_minutes: 30
`,
		"duplicate symbol": `
slot:
  symbols: ["🍒", "🍒"]
  payouts:
    "🍒": 2
  win_probability: 25
  min_win_probability: 1
  max_win_probability: 50
  bets: [1]
  loss_redraw_attempts: 50
  starting_chips: 100
  leaderboard_limit: 10
  guest_ttl_minutes: 30
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if content != "" {
				path = writeConfig(t, content)
			}
			if _, err := NewSlotConfigFromYAML(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
