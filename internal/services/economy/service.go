package economy

import (
	"context"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dxtdz/sicbot/internal/common/clock"
	"github.com/dxtdz/sicbot/internal/dice"
	"github.com/dxtdz/sicbot/internal/models"
	ledgerRepo "github.com/dxtdz/sicbot/internal/repositories/ledger"
	"github.com/sirupsen/logrus"
)

const (
	defaultMinBet           = 100
	defaultMaxBet           = 1_000_000
	defaultStartingCash     = 10_000
	defaultMaxRequest       = 50_000
	defaultGrantCap         = 10_000_000
	defaultTransferCap      = 1_000_000
	defaultTaxRate          = 0.05
	defaultRequestCooldown  = time.Hour
	defaultAutoSaveInterval = 5 * time.Minute
	defaultListLimit        = 10

	tripleMultiplier = 3
	evenMultiplier   = 1
)

// service implements the Service interface. The in-memory ledger is the
// source of truth; every mutating operation persists it, and persistence
// failures are logged rather than surfaced to the caller.
type service struct {
	config *Config
	repo   ledgerRepo.Repository
	roller dice.Roller
	clock  clock.Clock

	mu  sync.Mutex
	doc *models.Ledger
}

// New creates a new economy service and loads the ledger into memory
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	// Default to the system clock; tests inject their own
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	// Apply defaults for unset limits
	if cfg.MinBet == 0 {
		cfg.MinBet = defaultMinBet
	}
	if cfg.MaxBet == 0 {
		cfg.MaxBet = defaultMaxBet
	}
	if cfg.DefaultStartingCash == 0 {
		cfg.DefaultStartingCash = defaultStartingCash
	}
	if cfg.MaxRequest == 0 {
		cfg.MaxRequest = defaultMaxRequest
	}
	if cfg.GrantCap == 0 {
		cfg.GrantCap = defaultGrantCap
	}
	if cfg.TransferCap == 0 {
		cfg.TransferCap = defaultTransferCap
	}
	if cfg.TaxRate == 0 {
		cfg.TaxRate = defaultTaxRate
	}
	if cfg.RequestCooldown == 0 {
		cfg.RequestCooldown = defaultRequestCooldown
	}
	if cfg.AutoSaveInterval == 0 {
		cfg.AutoSaveInterval = defaultAutoSaveInterval
	}

	doc, err := cfg.Repo.Load(ctx, &ledgerRepo.LoadInput{})
	if err != nil {
		return nil, err
	}

	return &service{
		config: cfg,
		repo:   cfg.Repo,
		roller: cfg.DiceRoller,
		clock:  cfg.Clock,
		doc:    doc,
	}, nil
}

// getOrCreatePlayer returns the player record, inserting a fresh one with
// the default starting cash. Callers must hold s.mu.
func (s *service) getOrCreatePlayer(id string) *models.Player {
	if p, ok := s.doc.Players[id]; ok {
		return p
	}

	p := &models.Player{
		Cash: s.config.DefaultStartingCash,
	}
	s.doc.Players[id] = p
	return p
}

// touchIdentity records the display name and handle if unset, first-write-wins
func (s *service) touchIdentity(p *models.Player, name, handle string) {
	if p.DisplayName == "" && name != "" {
		p.DisplayName = name
	}
	if p.Handle == "" && handle != "" {
		p.Handle = handle
	}
}

// recordTransaction prepends an entry to the transaction log and evicts
// the oldest past the cap. Callers must hold s.mu.
func (s *service) recordTransaction(kind models.TransactionKind, fromID, toID string, amount int64, note string) *models.Transaction {
	now := s.clock.Now()

	var tax int64
	if kind == models.TransactionKindTransfer {
		tax = int64(math.Floor(float64(amount) * s.config.TaxRate))
	}

	txn := &models.Transaction{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Kind:      kind,
		FromID:    fromID,
		ToID:      toID,
		Amount:    amount,
		Tax:       tax,
		Note:      note,
		CreatedAt: now,
	}

	s.doc.Transactions = append([]*models.Transaction{txn}, s.doc.Transactions...)
	if len(s.doc.Transactions) > models.MaxTransactions {
		s.doc.Transactions = s.doc.Transactions[:models.MaxTransactions]
	}

	return txn
}

// persist saves the ledger, logging rather than propagating failures; the
// in-memory document stays authoritative either way
func (s *service) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, &ledgerRepo.SaveInput{Ledger: s.doc}); err != nil {
		logrus.WithError(err).Error("failed to persist ledger")
	}
}

// GetProfile returns (creating if needed) the caller's player state
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreatePlayer(input.PlayerID)
	s.touchIdentity(p, input.DisplayName, input.Handle)

	return &GetProfileOutput{
		PlayerID: input.PlayerID,
		Player:   *p,
	}, nil
}

// PlaceBet validates, debits, rolls and settles a bet atomically
func (s *service) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	switch input.Choice {
	case BetChoiceHigh, BetChoiceLow, BetChoiceTriple:
	default:
		return nil, ErrInvalidChoice
	}

	if input.Stake < s.config.MinBet {
		return nil, ErrStakeTooSmall
	}

	if input.Stake > s.config.MaxBet {
		return nil, ErrStakeTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreatePlayer(input.PlayerID)
	s.touchIdentity(p, input.DisplayName, input.Handle)

	if input.Stake > p.Cash {
		return nil, &InsufficientFundsError{
			Source:    "cash",
			Required:  input.Stake,
			Available: p.Cash,
		}
	}

	// Debit the stake before the roll
	p.Cash -= input.Stake
	p.TotalWagered += input.Stake

	outcome := dice.Classify(s.roller.Roll())

	// A triple pays only triple bettors, even when its sum falls in the
	// high or low range
	won := false
	var multiplier int64
	switch input.Choice {
	case BetChoiceTriple:
		if outcome.IsTriple {
			won = true
			multiplier = tripleMultiplier
		}
	case BetChoiceHigh:
		if outcome.IsHigh && !outcome.IsTriple {
			won = true
			multiplier = evenMultiplier
		}
	case BetChoiceLow:
		if outcome.IsLow && !outcome.IsTriple {
			won = true
			multiplier = evenMultiplier
		}
	}

	var payout int64
	if won {
		payout = input.Stake * multiplier
		p.Cash += payout
		p.Wins++
		p.TotalWon += payout - input.Stake
	} else {
		p.Losses++
		p.TotalLost += input.Stake
	}

	now := s.clock.Now()
	p.LastPlayedAt = &now

	s.persist(ctx)

	return &PlaceBetOutput{
		Outcome:    outcome,
		Won:        won,
		Multiplier: multiplier,
		Payout:     payout,
		Stake:      input.Stake,
		Player:     *p,
	}, nil
}

// Deposit moves cash into the bank
func (s *service) Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreatePlayer(input.PlayerID)
	s.touchIdentity(p, input.DisplayName, input.Handle)

	if input.Amount > p.Cash {
		return nil, &InsufficientFundsError{
			Source:    "cash",
			Required:  input.Amount,
			Available: p.Cash,
		}
	}

	p.Cash -= input.Amount
	p.BankBalance += input.Amount

	s.recordTransaction(models.TransactionKindBankDeposit, input.PlayerID, "bank", input.Amount, "Bank deposit")
	s.persist(ctx)

	return &DepositOutput{
		Amount:      input.Amount,
		Cash:        p.Cash,
		BankBalance: p.BankBalance,
	}, nil
}

// Withdraw moves bank balance back to cash
func (s *service) Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreatePlayer(input.PlayerID)
	s.touchIdentity(p, input.DisplayName, input.Handle)

	if input.Amount > p.BankBalance {
		return nil, &InsufficientFundsError{
			Source:    "bank",
			Required:  input.Amount,
			Available: p.BankBalance,
		}
	}

	p.BankBalance -= input.Amount
	p.Cash += input.Amount

	s.recordTransaction(models.TransactionKindBankWithdraw, "bank", input.PlayerID, input.Amount, "Bank withdrawal")
	s.persist(ctx)

	return &WithdrawOutput{
		Amount:      input.Amount,
		Cash:        p.Cash,
		BankBalance: p.BankBalance,
	}, nil
}

// RequestGrant hands out system money, subject to a per-player cooldown
func (s *service) RequestGrant(ctx context.Context, input *RequestGrantInput) (*RequestGrantOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if input.Amount > s.config.MaxRequest {
		return nil, ErrRequestTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	rec := s.doc.RequestHistory[input.PlayerID]
	if rec != nil {
		if elapsed := now.Sub(rec.LastRequestAt); elapsed < s.config.RequestCooldown {
			return nil, &CooldownError{
				Remaining: s.config.RequestCooldown - elapsed,
			}
		}
	}

	p := s.getOrCreatePlayer(input.PlayerID)
	s.touchIdentity(p, input.DisplayName, input.Handle)

	p.Cash += input.Amount

	if rec == nil {
		rec = &models.RequestRecord{}
		s.doc.RequestHistory[input.PlayerID] = rec
	}
	rec.TotalRequested += input.Amount
	rec.LastRequestAt = now

	s.recordTransaction(models.TransactionKindSystemGrant, "system", input.PlayerID, input.Amount, "Grant from the system")
	s.persist(ctx)

	return &RequestGrantOutput{
		Amount:         input.Amount,
		Cash:           p.Cash,
		TotalRequested: rec.TotalRequested,
	}, nil
}

// Leaderboard ranks players by total holdings descending
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	limit := defaultListLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]LeaderboardEntry, 0, len(s.doc.Players))
	for id, p := range s.doc.Players {
		entries = append(entries, LeaderboardEntry{
			PlayerID:    id,
			DisplayName: p.DisplayName,
			Handle:      p.Handle,
			Total:       p.Total(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return &LeaderboardOutput{
		Entries: entries,
	}, nil
}

// PreviewTransfer computes the tax breakdown without moving funds. Actual
// transfers wait on handle-to-ID resolution.
func (s *service) PreviewTransfer(ctx context.Context, input *PreviewTransferInput) (*PreviewTransferOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if input.Amount > s.config.TransferCap {
		return nil, ErrTransferTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreatePlayer(input.FromID)
	s.touchIdentity(p, input.DisplayName, input.Handle)

	if input.Amount > p.Cash {
		return nil, &InsufficientFundsError{
			Source:    "cash",
			Required:  input.Amount,
			Available: p.Cash,
		}
	}

	tax := int64(math.Floor(float64(input.Amount) * s.config.TaxRate))
	net := input.Amount - tax
	if net <= 0 {
		return nil, ErrNetNotPositive
	}

	return &PreviewTransferOutput{
		ToHandle: input.ToHandle,
		Amount:   input.Amount,
		Tax:      tax,
		Net:      net,
	}, nil
}

// History lists the most recent transactions touching the caller
func (s *service) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	limit := defaultListLimit
	if input.Limit > 0 {
		limit = input.Limit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]models.Transaction, 0, limit)
	for _, txn := range s.doc.Transactions {
		if txn.FromID != input.PlayerID && txn.ToID != input.PlayerID {
			continue
		}
		matches = append(matches, *txn)
		if len(matches) == limit {
			break
		}
	}

	return &HistoryOutput{
		Transactions: matches,
	}, nil
}

// isAdmin reports whether the caller is the configured administrator
func (s *service) isAdmin(callerID string) bool {
	return s.config.AdminID != "" && callerID == s.config.AdminID
}

// AdminGrant credits a player's cash, admin only
func (s *service) AdminGrant(ctx context.Context, input *AdminGrantInput) (*AdminGrantOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if input.Amount > s.config.GrantCap {
		return nil, ErrGrantTooLarge
	}

	targetID := input.TargetID
	if targetID == "" {
		targetID = input.CallerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreatePlayer(targetID)
	p.Cash += input.Amount

	s.recordTransaction(models.TransactionKindAdminAdd, input.CallerID, targetID, input.Amount, "Grant from the administrator")
	s.persist(ctx)

	return &AdminGrantOutput{
		TargetID: targetID,
		Amount:   input.Amount,
		Cash:     p.Cash,
	}, nil
}

// AdminReset restores a player to the starting state, admin only
func (s *service) AdminReset(ctx context.Context, input *AdminResetInput) (*AdminResetOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.doc.Players[input.TargetID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	p.Cash = s.config.DefaultStartingCash
	p.BankBalance = 0
	p.Wins = 0
	p.Losses = 0
	p.TotalWagered = 0
	p.TotalWon = 0
	p.TotalLost = 0

	s.recordTransaction(models.TransactionKindAdminReset, input.CallerID, input.TargetID, 0, "Account reset by the administrator")
	s.persist(ctx)

	return &AdminResetOutput{
		TargetID: input.TargetID,
		Cash:     p.Cash,
	}, nil
}

// Flush persists the in-memory ledger immediately
func (s *service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Save(ctx, &ledgerRepo.SaveInput{Ledger: s.doc})
}

// StartAutoSave flushes on a fixed interval until ctx is done. The timer
// save is a safety net against dying between command-triggered saves.
func (s *service) StartAutoSave(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.config.AutoSaveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Flush(ctx); err != nil {
					logrus.WithError(err).Error("periodic ledger save failed")
				}
			}
		}
	}()
}
