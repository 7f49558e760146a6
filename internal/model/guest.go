package model

import "time"

// GuestSession is the ephemeral counterpart of Account for unauthenticated
// play. It lives only in process memory, is swept after inactivity and is
// never written to storage.
type GuestSession struct {
	ID          string
	Chips       int
	TotalWins   int
	TotalLosses int
	CreatedAt   time.Time
	LastSeen    time.Time
}

func (g GuestSession) CurrentBalance() int {
	return g.Chips
}

// BalanceHolder unifies Account and GuestSession behind the one capability
// spin settlement needs from either.
type BalanceHolder interface {
	CurrentBalance() int
}
