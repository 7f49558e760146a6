package slot

import (
	"slot_backend/internal/config"
	"slot_backend/internal/model"
	"slot_backend/pkg/rng"
)

// Machine resolves spin outcomes against a fixed symbol set and payout
// table. It is stateless: every draw comes from the injected rng.Source, so
// resolution is pure given the source.
type Machine struct {
	symbols     []string
	winning     []model.Combination
	multipliers map[string]int
	redrawBound int
}

// NewMachine builds a machine from the slot configuration. The winning set
// is the all-equal triple of every symbol with a payout multiplier, in
// symbol order.
func NewMachine(cfg config.SlotConfig) *Machine {
	multipliers := cfg.Multipliers()
	symbols := cfg.Symbols()

	winning := make([]model.Combination, 0, len(multipliers))
	byKey := make(map[string]int, len(multipliers))
	for _, sym := range symbols {
		mult, ok := multipliers[sym]
		if !ok {
			continue
		}
		comb := model.Combination{sym, sym, sym}
		winning = append(winning, comb)
		byKey[comb.Key()] = mult
	}

	return &Machine{
		symbols:     symbols,
		winning:     winning,
		multipliers: byKey,
		redrawBound: cfg.LossRedrawAttempts(),
	}
}

// WinningCombinations returns a copy of the winning set.
func (m *Machine) WinningCombinations() []model.Combination {
	out := make([]model.Combination, len(m.winning))
	copy(out, m.winning)
	return out
}

// Multiplier returns the payout multiplier for a combination, or 0 if it
// does not pay.
func (m *Machine) Multiplier(c model.Combination) int {
	return m.multipliers[c.Key()]
}

// Resolve decides one spin. A percent draw below winProbability forces a
// win: a uniform pick over the winning set. Otherwise three symbols are
// drawn independently, redrawing any winning triple up to the configured
// bound; once the bound is exhausted the last candidate is accepted as-is
// even if it pays, and the outcome is flagged as ForcedLossWin. Payout is
// bet times the table multiplier, exact integer arithmetic throughout.
func (m *Machine) Resolve(bet, winProbability int, src rng.Source) (model.SpinOutcome, error) {
	if bet <= 0 {
		return model.SpinOutcome{}, model.NewValidationError("bet", "must be positive")
	}
	if winProbability < 0 || winProbability > 100 {
		return model.SpinOutcome{}, model.NewValidationError("winProbability", "must be within [0,100]")
	}

	if src.Percent() < float64(winProbability) {
		comb := m.winning[src.IntN(len(m.winning))]
		return model.SpinOutcome{
			Combination: comb,
			Payout:      bet * m.multipliers[comb.Key()],
			Win:         true,
		}, nil
	}

	var comb model.Combination
	exhausted := false
	for attempt := 0; ; attempt++ {
		comb = model.Combination{
			m.symbols[src.IntN(len(m.symbols))],
			m.symbols[src.IntN(len(m.symbols))],
			m.symbols[src.IntN(len(m.symbols))],
		}
		if m.multipliers[comb.Key()] == 0 {
			break
		}
		if attempt >= m.redrawBound {
			// Accepted edge case inherited from the original game: the
			// redraw bound ran out on a winning triple, and it pays.
			exhausted = true
			break
		}
	}

	mult := m.multipliers[comb.Key()]
	return model.SpinOutcome{
		Combination:   comb,
		Payout:        bet * mult,
		Win:           mult > 0,
		ForcedLossWin: exhausted && mult > 0,
	}, nil
}
