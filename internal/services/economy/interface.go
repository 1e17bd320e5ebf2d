package economy

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dxtdz/sicbot/internal/services/economy Service

// Service defines the interface for the betting economy
type Service interface {
	// GetProfile returns (creating if needed) the caller's player state
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// PlaceBet validates, debits, rolls and settles a bet atomically
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// Deposit moves cash into the bank
	Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error)

	// Withdraw moves bank balance back to cash
	Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error)

	// RequestGrant hands out system money, subject to a per-player cooldown
	RequestGrant(ctx context.Context, input *RequestGrantInput) (*RequestGrantOutput, error)

	// Leaderboard ranks players by total holdings descending
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// PreviewTransfer computes the tax breakdown without moving funds
	PreviewTransfer(ctx context.Context, input *PreviewTransferInput) (*PreviewTransferOutput, error)

	// History lists the most recent transactions touching the caller
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)

	// AdminGrant credits a player's cash, admin only
	AdminGrant(ctx context.Context, input *AdminGrantInput) (*AdminGrantOutput, error)

	// AdminReset restores a player to the starting state, admin only
	AdminReset(ctx context.Context, input *AdminResetInput) (*AdminResetOutput, error)

	// Flush persists the in-memory ledger immediately
	Flush(ctx context.Context) error

	// StartAutoSave flushes on a fixed interval until ctx is done
	StartAutoSave(ctx context.Context)
}
