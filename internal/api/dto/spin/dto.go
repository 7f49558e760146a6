package spin

type SpinRequest struct {
	StudentID string `json:"studentId,omitempty"` // Persisted account play
	GuestID   string `json:"guestId,omitempty"`   // Ephemeral guest play
	Bet       int    `json:"bet"`
}

type SpinResponse struct {
	Reels       [3]string `json:"reels"`
	Win         bool      `json:"win"`
	Payout      int       `json:"payout"`
	Chips       int       `json:"chips"` // Balance after settlement
	TotalWins   int       `json:"totalWins"`
	TotalLosses int       `json:"totalLosses"`
	// Set when the loss redraw bound ran out on a winning triple.
	ForcedLossWin bool `json:"forcedLossWin,omitempty"`
}

type GuestResponse struct {
	GuestID string `json:"guestId"`
	Chips   int    `json:"chips"`
}
