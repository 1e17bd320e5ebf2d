package models

import (
	"time"
)

// MaxTransactions bounds the transaction log; oldest entries are evicted
const MaxTransactions = 100

// RequestRecord tracks a player's use of the request-grant command
type RequestRecord struct {
	// TotalRequested is the lifetime sum of granted requests
	TotalRequested int64 `json:"totalRequested"`

	// LastRequestAt starts the cooldown clock
	LastRequestAt time.Time `json:"lastRequestAt"`
}

// Ledger is the whole persisted economy document
type Ledger struct {
	// Players maps user ID to economy state
	Players map[string]*Player `json:"players"`

	// RequestHistory maps user ID to request-grant usage
	RequestHistory map[string]*RequestRecord `json:"requestHistory"`

	// Transactions is most-recent-first, capped at MaxTransactions
	Transactions []*Transaction `json:"transactions"`
}

// NewLedger returns an empty ledger with initialized maps
func NewLedger() *Ledger {
	return &Ledger{
		Players:        make(map[string]*Player),
		RequestHistory: make(map[string]*RequestRecord),
		Transactions:   []*Transaction{},
	}
}

// Normalize repairs nil maps and slices after a load from disk
func (l *Ledger) Normalize() {
	if l.Players == nil {
		l.Players = make(map[string]*Player)
	}
	if l.RequestHistory == nil {
		l.RequestHistory = make(map[string]*RequestRecord)
	}
	if l.Transactions == nil {
		l.Transactions = []*Transaction{}
	}
}
