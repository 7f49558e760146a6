package slot

import (
	"errors"
	"math"
	"testing"
	"time"

	"slot_backend/internal/model"
	"slot_backend/pkg/rng"
)

type testConfig struct{}

func (testConfig) Symbols() []string {
	return []string{"🍎", "🍊", "🍋", "🍇", "🍒", "⭐", "💎", "🔔"}
}

func (testConfig) Multipliers() map[string]int {
	return map[string]int{
		"🍒": 2, "🍋": 2, "🍊": 2, "🍇": 2,
		"🍎": 3, "⭐": 3, "💎": 3, "🔔": 3,
	}
}

func (testConfig) DefaultWinProbability() int       { return 25 }
func (testConfig) MinWinProbability() int           { return 1 }
func (testConfig) MaxWinProbability() int           { return 50 }
func (testConfig) Bets() []int                      { return []int{1, 2, 3} }
func (testConfig) LossRedrawAttempts() int          { return 50 }
func (testConfig) StartingChips() int               { return 100 }
func (testConfig) LeaderboardLimit() int            { return 10 }
func (testConfig) GuestSessionTTL() time.Duration   { return 30 * time.Minute }

func TestResolve_BetValidation(t *testing.T) {
	m := NewMachine(testConfig{})
	src := rng.NewSeeded(1)

	for _, bet := range []int{0, -1, -100} {
		_, err := m.Resolve(bet, 25, src)
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("bet=%d: expected ValidationError, got %v", bet, err)
		}
	}

	if _, err := m.Resolve(1, 101, src); err == nil {
		t.Error("winProbability=101: expected error")
	}
	if _, err := m.Resolve(1, -1, src); err == nil {
		t.Error("winProbability=-1: expected error")
	}
}

func TestResolve_ForcedWinAlwaysPays(t *testing.T) {
	m := NewMachine(testConfig{})
	src := rng.NewSeeded(2)
	bet := 1

	for i := 0; i < 1000; i++ {
		o, err := m.Resolve(bet, 100, src)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if !o.Win {
			t.Fatal("probability 100 must always win")
		}
		if !o.Combination.AllEqual() {
			t.Errorf("winning combination must be all-equal, got %v", o.Combination)
		}
		if mult := m.Multiplier(o.Combination); mult == 0 {
			t.Errorf("winning combination %v not in payout table", o.Combination)
		} else if o.Payout != bet*mult {
			t.Errorf("payout %d, want bet*multiplier = %d", o.Payout, bet*mult)
		}
		if o.Payout != 2 && o.Payout != 3 {
			t.Errorf("bet=1 payout must be 2 or 3, got %d", o.Payout)
		}
	}
}

func TestResolve_ForcedLossNeverPays(t *testing.T) {
	m := NewMachine(testConfig{})
	src := rng.NewSeeded(3)

	for i := 0; i < 5000; i++ {
		o, err := m.Resolve(2, 0, src)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if o.ForcedLossWin {
			// The redraw bound makes this astronomically unlikely with a
			// fair source; with this seed it never happens.
			t.Fatalf("unexpected redraw exhaustion at iteration %d", i)
		}
		if o.Win || o.Payout != 0 {
			t.Errorf("probability 0 must lose, got %+v", o)
		}
		if o.Combination.AllEqual() {
			t.Errorf("losing combination must not be all-equal, got %v", o.Combination)
		}
	}
}

func TestResolve_WinRateConverges(t *testing.T) {
	m := NewMachine(testConfig{})

	for _, prob := range []int{10, 25, 50, 75} {
		src := rng.NewSeeded(uint64(prob))
		const trials = 200_000
		wins := 0
		for i := 0; i < trials; i++ {
			o, err := m.Resolve(1, prob, src)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if o.Win {
				wins++
			}
		}
		got := float64(wins) / trials * 100
		if math.Abs(got-float64(prob)) > 1.0 {
			t.Errorf("probability %d: observed win rate %.2f%%", prob, got)
		}
	}
}

func TestResolve_PayoutScalesWithBet(t *testing.T) {
	m := NewMachine(testConfig{})

	for _, bet := range []int{1, 2, 3} {
		src := rng.NewSeeded(7)
		o, err := m.Resolve(bet, 100, src)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		mult := m.Multiplier(o.Combination)
		if o.Payout != bet*mult {
			t.Errorf("bet=%d: payout %d, want %d", bet, o.Payout, bet*mult)
		}
	}
}

// riggedSource always draws symbol 0, so every loss candidate is a winning
// triple and the redraw bound must run out.
type riggedSource struct{}

func (riggedSource) IntN(n int) int   { return 0 }
func (riggedSource) Percent() float64 { return 99.9 }

func TestResolve_RedrawExhaustionAcceptsWinner(t *testing.T) {
	m := NewMachine(testConfig{})

	o, err := m.Resolve(3, 0, riggedSource{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !o.ForcedLossWin {
		t.Fatal("expected ForcedLossWin after redraw exhaustion")
	}
	if !o.Win {
		t.Error("exhausted redraw on a winning triple must count as a win")
	}
	if want := 3 * m.Multiplier(o.Combination); o.Payout != want {
		t.Errorf("payout %d, want %d", o.Payout, want)
	}
}

func TestNewMachine_WinningSet(t *testing.T) {
	m := NewMachine(testConfig{})

	winning := m.WinningCombinations()
	if len(winning) != 8 {
		t.Fatalf("expected 8 winning combinations, got %d", len(winning))
	}
	for _, c := range winning {
		if !c.AllEqual() {
			t.Errorf("winning combination %v is not all-equal", c)
		}
		if m.Multiplier(c) == 0 {
			t.Errorf("winning combination %v has no multiplier", c)
		}
	}
}
