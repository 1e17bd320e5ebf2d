package models

import (
	"time"
)

// Player holds the economy state for a single user
type Player struct {
	// Cash is the spendable balance, never negative
	Cash int64 `json:"cash"`

	// BankBalance is the balance exempt from betting, never negative
	BankBalance int64 `json:"bankBalance"`

	// Wins is the number of bets won
	Wins int64 `json:"wins"`

	// Losses is the number of bets lost
	Losses int64 `json:"losses"`

	// TotalWagered is the lifetime sum of stakes placed
	TotalWagered int64 `json:"totalWagered"`

	// TotalWon is the lifetime net winnings (payout minus stake)
	TotalWon int64 `json:"totalWon"`

	// TotalLost is the lifetime sum of losing stakes
	TotalLost int64 `json:"totalLost"`

	// LastPlayedAt is when the player last placed a bet
	LastPlayedAt *time.Time `json:"lastPlayedAt,omitempty"`

	// DisplayName is set on first sighting and never overwritten
	DisplayName string `json:"displayName,omitempty"`

	// Handle is the player's username, first-write-wins like DisplayName
	Handle string `json:"handle,omitempty"`
}

// Total returns the player's combined holdings
func (p *Player) Total() int64 {
	return p.Cash + p.BankBalance
}
