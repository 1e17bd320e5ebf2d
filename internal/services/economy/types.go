package economy

import (
	"strings"
	"time"

	"github.com/dxtdz/sicbot/internal/common/clock"
	"github.com/dxtdz/sicbot/internal/dice"
	"github.com/dxtdz/sicbot/internal/models"
	ledgerRepo "github.com/dxtdz/sicbot/internal/repositories/ledger"
)

// BetChoice is what a player backs on a roll
type BetChoice string

const (
	// BetChoiceHigh wins on a non-triple sum of 11-17
	BetChoiceHigh BetChoice = "high"

	// BetChoiceLow wins on a non-triple sum of 4-10
	BetChoiceLow BetChoice = "low"

	// BetChoiceTriple wins when all three dice match, paying x3
	BetChoiceTriple BetChoice = "triple"
)

// choiceTokens maps accepted command tokens to choices. Vietnamese tokens
// from the original game are kept as aliases.
var choiceTokens = map[string]BetChoice{
	"high":   BetChoiceHigh,
	"tai":    BetChoiceHigh,
	"tài":    BetChoiceHigh,
	"low":    BetChoiceLow,
	"xiu":    BetChoiceLow,
	"xỉu":    BetChoiceLow,
	"triple": BetChoiceTriple,
	"bao":    BetChoiceTriple,
}

// ParseChoice resolves a command token to a bet choice, case-insensitively
func ParseChoice(token string) (BetChoice, bool) {
	choice, ok := choiceTokens[strings.ToLower(token)]
	return choice, ok
}

// Config holds configuration for the economy service
type Config struct {
	// MinBet is the smallest accepted stake
	MinBet int64

	// MaxBet is the largest accepted stake
	MaxBet int64

	// DefaultStartingCash seeds new players and admin resets
	DefaultStartingCash int64

	// MaxRequest caps a single request-grant
	MaxRequest int64

	// GrantCap caps a single admin grant
	GrantCap int64

	// TransferCap caps a single transfer
	TransferCap int64

	// TaxRate is the transfer fee fraction
	TaxRate float64

	// RequestCooldown is the minimum wait between request-grants
	RequestCooldown time.Duration

	// AutoSaveInterval is how often the ledger is flushed regardless of
	// command activity
	AutoSaveInterval time.Duration

	// AdminID is the one user allowed to run admin commands; when empty
	// every admin command is rejected
	AdminID string

	// Repository dependency
	Repo ledgerRepo.Repository

	// Service dependencies
	DiceRoller dice.Roller
	Clock      clock.Clock
}

// GetProfileInput contains parameters for fetching a player profile
type GetProfileInput struct {
	// PlayerID is the user ID of the player
	PlayerID string

	// DisplayName and Handle update the player identity, first-write-wins
	DisplayName string
	Handle      string
}

// GetProfileOutput contains a snapshot of the player's state
type GetProfileOutput struct {
	PlayerID string
	Player   models.Player
}

// PlaceBetInput contains parameters for placing a bet
type PlaceBetInput struct {
	PlayerID    string
	DisplayName string
	Handle      string

	// Choice is the classification the player backs
	Choice BetChoice

	// Stake is the amount wagered
	Stake int64
}

// PlaceBetOutput contains the settled result of a bet
type PlaceBetOutput struct {
	// Outcome is the classified roll
	Outcome dice.Outcome

	// Won indicates the bet paid out
	Won bool

	// Multiplier applied to the stake on a win
	Multiplier int64

	// Payout credited on a win (stake * multiplier), zero on a loss
	Payout int64

	// Stake echoed back for rendering
	Stake int64

	// Player is the post-settlement state
	Player models.Player
}

// DepositInput contains parameters for a bank deposit
type DepositInput struct {
	PlayerID    string
	DisplayName string
	Handle      string
	Amount      int64
}

// DepositOutput contains the post-deposit balances
type DepositOutput struct {
	Amount      int64
	Cash        int64
	BankBalance int64
}

// WithdrawInput contains parameters for a bank withdrawal
type WithdrawInput struct {
	PlayerID    string
	DisplayName string
	Handle      string
	Amount      int64
}

// WithdrawOutput contains the post-withdrawal balances
type WithdrawOutput struct {
	Amount      int64
	Cash        int64
	BankBalance int64
}

// RequestGrantInput contains parameters for asking the system for money
type RequestGrantInput struct {
	PlayerID    string
	DisplayName string
	Handle      string
	Amount      int64
}

// RequestGrantOutput contains the result of a granted request
type RequestGrantOutput struct {
	Amount         int64
	Cash           int64
	TotalRequested int64
}

// LeaderboardInput contains parameters for the leaderboard
type LeaderboardInput struct {
	// Limit is the number of entries to return, defaulting to 10
	Limit int
}

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	PlayerID    string
	DisplayName string
	Handle      string

	// Total is cash plus bank balance
	Total int64
}

// LeaderboardOutput contains players ranked by total holdings descending.
// Order among exact ties is unspecified.
type LeaderboardOutput struct {
	Entries []LeaderboardEntry
}

// PreviewTransferInput contains parameters for the transfer preview
type PreviewTransferInput struct {
	FromID      string
	DisplayName string
	Handle      string
	ToHandle    string
	Amount      int64
}

// PreviewTransferOutput shows the tax breakdown for a would-be transfer.
// No funds move; handle resolution is not implemented yet.
type PreviewTransferOutput struct {
	ToHandle string
	Amount   int64
	Tax      int64
	Net      int64
}

// HistoryInput contains parameters for listing a player's transactions
type HistoryInput struct {
	PlayerID string

	// Limit is the number of entries to return, defaulting to 10
	Limit int
}

// HistoryOutput contains the caller's most recent transactions
type HistoryOutput struct {
	Transactions []models.Transaction
}

// AdminGrantInput contains parameters for an admin grant
type AdminGrantInput struct {
	// CallerID must match the configured administrator
	CallerID string

	// TargetID receives the grant; empty targets the caller
	TargetID string

	Amount int64
}

// AdminGrantOutput contains the result of an admin grant
type AdminGrantOutput struct {
	TargetID string
	Amount   int64
	Cash     int64
}

// AdminResetInput contains parameters for an admin account reset
type AdminResetInput struct {
	// CallerID must match the configured administrator
	CallerID string

	TargetID string
}

// AdminResetOutput contains the result of an admin reset
type AdminResetOutput struct {
	TargetID string
	Cash     int64
}
