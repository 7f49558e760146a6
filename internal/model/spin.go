package model

import "strings"

// Combination is the ordered 3-symbol result of one spin.
type Combination [3]string

// Key joins the three symbols into the payout table lookup key.
func (c Combination) Key() string {
	return strings.Join(c[:], "")
}

// AllEqual reports whether all three reels show the same symbol.
func (c Combination) AllEqual() bool {
	return c[0] == c[1] && c[1] == c[2]
}

// SpinOutcome is the pure result of resolving one spin: the visible
// combination and the payout computed from the bet.
type SpinOutcome struct {
	Combination Combination
	Payout      int
	Win         bool
	// ForcedLossWin marks the documented edge where the loss redraw bound
	// was exhausted and the accepted combination happens to be a winner.
	ForcedLossWin bool
}

// SpinResult is a settled spin: the outcome plus the balance and counters
// after it was applied.
type SpinResult struct {
	Outcome     SpinOutcome
	Balance     int
	TotalWins   int
	TotalLosses int
}
