package economy

import (
	"context"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/dxtdz/sicbot/internal/common/clock/mocks"
	diceMocks "github.com/dxtdz/sicbot/internal/dice/mocks"
	"github.com/dxtdz/sicbot/internal/models"
	ledgerMocks "github.com/dxtdz/sicbot/internal/repositories/ledger/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EconomyServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRepo   *ledgerMocks.MockRepository
	mockRoller *diceMocks.MockRoller
	mockClock  *clockMocks.MockClock
	svc        Service
	ctx        context.Context

	// Test data
	testTime     time.Time
	testPlayerID string
	testAdminID  string
}

func (s *EconomyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testPlayerID = "test-player-id"
	s.testAdminID = "test-admin-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// The service loads the ledger once at construction and saves after
	// every mutating command
	s.mockRepo.EXPECT().Load(gomock.Any(), gomock.Any()).Return(models.NewLedger(), nil)
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := New(s.ctx, &Config{
		AdminID:    s.testAdminID,
		Repo:       s.mockRepo,
		DiceRoller: s.mockRoller,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *EconomyServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEconomyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EconomyServiceTestSuite))
}

func (s *EconomyServiceTestSuite) profile() models.Player {
	out, err := s.svc.GetProfile(s.ctx, &GetProfileInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	return out.Player
}

func (s *EconomyServiceTestSuite) TestNewValidation() {
	_, err := New(s.ctx, nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(s.ctx, &Config{DiceRoller: s.mockRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(s.ctx, &Config{Repo: s.mockRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilDiceRoller)
}

// A config without a clock gets the system clock, so the wiring in cmd/bot
// works without one
func (s *EconomyServiceTestSuite) TestNewDefaultsClock() {
	repo := ledgerMocks.NewMockRepository(s.mockCtrl)
	repo.EXPECT().Load(gomock.Any(), gomock.Any()).Return(models.NewLedger(), nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := New(s.ctx, &Config{
		AdminID:    s.testAdminID,
		Repo:       repo,
		DiceRoller: s.mockRoller,
	})
	s.Require().NoError(err)

	before := time.Now()
	out, err := svc.RequestGrant(s.ctx, &RequestGrantInput{
		PlayerID: s.testPlayerID,
		Amount:   1000,
	})
	s.Require().NoError(err)
	s.Equal(int64(11000), out.Cash)

	// The defaulted clock stamps transactions with real time
	history, err := svc.History(s.ctx, &HistoryInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Require().Len(history.Transactions, 1)
	s.False(history.Transactions[0].CreatedAt.Before(before))
}

func (s *EconomyServiceTestSuite) TestGetProfileCreatesPlayerWithStartingCash() {
	out, err := s.svc.GetProfile(s.ctx, &GetProfileInput{
		PlayerID:    s.testPlayerID,
		DisplayName: "Test Player",
		Handle:      "testplayer",
	})
	s.Require().NoError(err)

	s.Equal(int64(10000), out.Player.Cash)
	s.Equal(int64(0), out.Player.BankBalance)
	s.Equal("Test Player", out.Player.DisplayName)
	s.Equal("testplayer", out.Player.Handle)
}

func (s *EconomyServiceTestSuite) TestIdentityIsFirstWriteWins() {
	_, err := s.svc.GetProfile(s.ctx, &GetProfileInput{
		PlayerID:    s.testPlayerID,
		DisplayName: "Original Name",
		Handle:      "original",
	})
	s.Require().NoError(err)

	out, err := s.svc.GetProfile(s.ctx, &GetProfileInput{
		PlayerID:    s.testPlayerID,
		DisplayName: "Changed Name",
		Handle:      "changed",
	})
	s.Require().NoError(err)

	s.Equal("Original Name", out.Player.DisplayName)
	s.Equal("original", out.Player.Handle)
}

func (s *EconomyServiceTestSuite) TestPlaceBetInvalidChoice() {
	_, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoice("banana"),
		Stake:    1000,
	})
	s.ErrorIs(err, ErrInvalidChoice)
}

func (s *EconomyServiceTestSuite) TestPlaceBetStakeBounds() {
	_, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceHigh,
		Stake:    99,
	})
	s.ErrorIs(err, ErrStakeTooSmall)

	_, err = s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceHigh,
		Stake:    1_000_001,
	})
	s.ErrorIs(err, ErrStakeTooLarge)

	// Rejections must not create state changes beyond player creation
	s.Equal(int64(10000), s.profile().Cash)
}

func (s *EconomyServiceTestSuite) TestPlaceBetInsufficientCash() {
	_, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceHigh,
		Stake:    20_000,
	})

	var funds *InsufficientFundsError
	s.Require().ErrorAs(err, &funds)
	s.Equal("cash", funds.Source)
	s.Equal(int64(10_000), funds.Shortfall())

	p := s.profile()
	s.Equal(int64(10000), p.Cash)
	s.Equal(int64(0), p.TotalWagered)
}

// Fresh player bets 1000 on low and the dice land 2,3,4: sum 9 is LOW, an
// even-money win returns exactly the stake.
func (s *EconomyServiceTestSuite) TestPlaceBetLowWin() {
	s.mockRoller.EXPECT().Roll().Return(2, 3, 4)

	out, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceLow,
		Stake:    1000,
	})
	s.Require().NoError(err)

	s.True(out.Won)
	s.Equal(int64(1), out.Multiplier)
	s.Equal(int64(1000), out.Payout)
	s.Equal(9, out.Outcome.Sum)
	s.Equal("LOW", out.Outcome.Label)

	s.Equal(int64(10000), out.Player.Cash)
	s.Equal(int64(1), out.Player.Wins)
	s.Equal(int64(0), out.Player.Losses)
	s.Equal(int64(1000), out.Player.TotalWagered)
	s.Equal(int64(0), out.Player.TotalWon)
	s.Require().NotNil(out.Player.LastPlayedAt)
	s.Equal(s.testTime, *out.Player.LastPlayedAt)
}

// Triple bet of 500 on 5,5,5 pays stake x3: 1500 back for a net +1000.
func (s *EconomyServiceTestSuite) TestPlaceBetTripleWin() {
	s.mockRoller.EXPECT().Roll().Return(5, 5, 5)

	out, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceTriple,
		Stake:    500,
	})
	s.Require().NoError(err)

	s.True(out.Won)
	s.Equal(int64(3), out.Multiplier)
	s.Equal(int64(1500), out.Payout)
	s.Equal("TRIPLE", out.Outcome.Label)

	s.Equal(int64(11000), out.Player.Cash)
	s.Equal(int64(1000), out.Player.TotalWon)
}

// Dice 4,4,4 sum to 12, inside the high range, but a high bet must still
// lose: triples pay only triple bettors.
func (s *EconomyServiceTestSuite) TestPlaceBetHighLosesOnTriple() {
	s.mockRoller.EXPECT().Roll().Return(4, 4, 4)

	out, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceHigh,
		Stake:    1000,
	})
	s.Require().NoError(err)

	s.False(out.Won)
	s.Equal(12, out.Outcome.Sum)
	s.True(out.Outcome.IsHigh)
	s.True(out.Outcome.IsTriple)

	s.Equal(int64(9000), out.Player.Cash)
	s.Equal(int64(1), out.Player.Losses)
	s.Equal(int64(1000), out.Player.TotalLost)
}

func (s *EconomyServiceTestSuite) TestPlaceBetHighWin() {
	s.mockRoller.EXPECT().Roll().Return(6, 5, 4)

	out, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceHigh,
		Stake:    2000,
	})
	s.Require().NoError(err)

	s.True(out.Won)
	s.Equal(15, out.Outcome.Sum)
	s.Equal(int64(10000), out.Player.Cash)
}

func (s *EconomyServiceTestSuite) TestPlaceBetTripleLosesOnMixedRoll() {
	s.mockRoller.EXPECT().Roll().Return(1, 2, 3)

	out, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceTriple,
		Stake:    500,
	})
	s.Require().NoError(err)

	s.False(out.Won)
	s.Equal(int64(9500), out.Player.Cash)
}

// Deposit then withdraw of the same amount restores both balances.
func (s *EconomyServiceTestSuite) TestBankRoundTrip() {
	dep, err := s.svc.Deposit(s.ctx, &DepositInput{
		PlayerID: s.testPlayerID,
		Amount:   2000,
	})
	s.Require().NoError(err)
	s.Equal(int64(8000), dep.Cash)
	s.Equal(int64(2000), dep.BankBalance)

	wd, err := s.svc.Withdraw(s.ctx, &WithdrawInput{
		PlayerID: s.testPlayerID,
		Amount:   2000,
	})
	s.Require().NoError(err)
	s.Equal(int64(10000), wd.Cash)
	s.Equal(int64(0), wd.BankBalance)
}

func (s *EconomyServiceTestSuite) TestDepositValidation() {
	_, err := s.svc.Deposit(s.ctx, &DepositInput{PlayerID: s.testPlayerID, Amount: 0})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.Deposit(s.ctx, &DepositInput{PlayerID: s.testPlayerID, Amount: -5})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.Deposit(s.ctx, &DepositInput{PlayerID: s.testPlayerID, Amount: 10_001})
	var funds *InsufficientFundsError
	s.Require().ErrorAs(err, &funds)
	s.Equal("cash", funds.Source)

	s.Equal(int64(10000), s.profile().Cash)
	s.Equal(int64(0), s.profile().BankBalance)
}

func (s *EconomyServiceTestSuite) TestWithdrawMoreThanBankBalance() {
	_, err := s.svc.Withdraw(s.ctx, &WithdrawInput{
		PlayerID: s.testPlayerID,
		Amount:   1,
	})

	var funds *InsufficientFundsError
	s.Require().ErrorAs(err, &funds)
	s.Equal("bank", funds.Source)
	s.Equal(int64(1), funds.Shortfall())
}

func (s *EconomyServiceTestSuite) TestBankMovesRecordTransactions() {
	_, err := s.svc.Deposit(s.ctx, &DepositInput{PlayerID: s.testPlayerID, Amount: 500})
	s.Require().NoError(err)

	hist, err := s.svc.History(s.ctx, &HistoryInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Require().Len(hist.Transactions, 1)
	s.Equal(models.TransactionKindBankDeposit, hist.Transactions[0].Kind)
	s.Equal(s.testPlayerID, hist.Transactions[0].FromID)
	s.Equal("bank", hist.Transactions[0].ToID)
	s.Equal(int64(500), hist.Transactions[0].Amount)
	s.Equal(int64(0), hist.Transactions[0].Tax)
}

func (s *EconomyServiceTestSuite) TestRequestGrantValidation() {
	_, err := s.svc.RequestGrant(s.ctx, &RequestGrantInput{PlayerID: s.testPlayerID, Amount: 0})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.RequestGrant(s.ctx, &RequestGrantInput{PlayerID: s.testPlayerID, Amount: 50_001})
	s.ErrorIs(err, ErrRequestTooLarge)
}

func (s *EconomyServiceTestSuite) TestRequestGrantSuccess() {
	out, err := s.svc.RequestGrant(s.ctx, &RequestGrantInput{
		PlayerID: s.testPlayerID,
		Amount:   1000,
	})
	s.Require().NoError(err)

	s.Equal(int64(11000), out.Cash)
	s.Equal(int64(1000), out.TotalRequested)

	hist, err := s.svc.History(s.ctx, &HistoryInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Require().Len(hist.Transactions, 1)
	s.Equal(models.TransactionKindSystemGrant, hist.Transactions[0].Kind)
	s.Equal("system", hist.Transactions[0].FromID)
}

// A second request inside the hour is rejected with the remaining wait; at
// exactly one hour it is accepted again.
func (s *EconomyServiceTestSuite) TestRequestGrantCooldownBoundary() {
	// Build a dedicated service whose clock we can advance
	ctrl := gomock.NewController(s.T())
	mockClock := clockMocks.NewMockClock(ctrl)
	mockRepo := ledgerMocks.NewMockRepository(ctrl)
	mockRepo.EXPECT().Load(gomock.Any(), gomock.Any()).Return(models.NewLedger(), nil)
	mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := s.testTime
	mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	svc, err := New(s.ctx, &Config{
		Repo:       mockRepo,
		DiceRoller: s.mockRoller,
		Clock:      mockClock,
	})
	s.Require().NoError(err)

	_, err = svc.RequestGrant(s.ctx, &RequestGrantInput{PlayerID: s.testPlayerID, Amount: 1000})
	s.Require().NoError(err)

	// One millisecond short of the cooldown
	now = s.testTime.Add(time.Hour - time.Millisecond)
	_, err = svc.RequestGrant(s.ctx, &RequestGrantInput{PlayerID: s.testPlayerID, Amount: 1000})

	var cooldown *CooldownError
	s.Require().ErrorAs(err, &cooldown)
	s.Equal(time.Millisecond, cooldown.Remaining)

	// Exactly the cooldown
	now = s.testTime.Add(time.Hour)
	out, err := svc.RequestGrant(s.ctx, &RequestGrantInput{PlayerID: s.testPlayerID, Amount: 1000})
	s.Require().NoError(err)
	s.Equal(int64(2000), out.TotalRequested)
}

func (s *EconomyServiceTestSuite) TestTransactionLogCappedAtHundred() {
	// 101 deposits of 1 each; eviction drops the oldest
	_, err := s.svc.AdminGrant(s.ctx, &AdminGrantInput{
		CallerID: s.testAdminID,
		TargetID: s.testPlayerID,
		Amount:   1000,
	})
	s.Require().NoError(err)

	for i := 0; i < 100; i++ {
		_, err := s.svc.Deposit(s.ctx, &DepositInput{PlayerID: s.testPlayerID, Amount: 1})
		s.Require().NoError(err)
	}

	hist, err := s.svc.History(s.ctx, &HistoryInput{PlayerID: s.testPlayerID, Limit: models.MaxTransactions + 1})
	s.Require().NoError(err)
	s.Require().Len(hist.Transactions, models.MaxTransactions)

	// The admin grant was first in, so it is the one evicted
	for _, txn := range hist.Transactions {
		s.Equal(models.TransactionKindBankDeposit, txn.Kind)
	}
}

func (s *EconomyServiceTestSuite) TestLeaderboardRanksByTotalHoldings() {
	for i, amount := range []int64{5000, 20000, 1000} {
		id := fmt.Sprintf("player-%d", i)
		_, err := s.svc.AdminGrant(s.ctx, &AdminGrantInput{
			CallerID: s.testAdminID,
			TargetID: id,
			Amount:   amount,
		})
		s.Require().NoError(err)
	}

	// Bank balance counts toward the total
	_, err := s.svc.Deposit(s.ctx, &DepositInput{PlayerID: "player-1", Amount: 15000})
	s.Require().NoError(err)

	out, err := s.svc.Leaderboard(s.ctx, &LeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)

	s.Equal("player-1", out.Entries[0].PlayerID)
	s.Equal(int64(30000), out.Entries[0].Total)

	for i := 1; i < len(out.Entries); i++ {
		s.GreaterOrEqual(out.Entries[i-1].Total, out.Entries[i].Total)
	}
}

func (s *EconomyServiceTestSuite) TestLeaderboardTruncatesToLimit() {
	for i := 0; i < 12; i++ {
		_, err := s.svc.GetProfile(s.ctx, &GetProfileInput{PlayerID: fmt.Sprintf("player-%d", i)})
		s.Require().NoError(err)
	}

	out, err := s.svc.Leaderboard(s.ctx, &LeaderboardInput{})
	s.Require().NoError(err)
	s.Len(out.Entries, 10)
}

func (s *EconomyServiceTestSuite) TestPreviewTransferComputesTax() {
	out, err := s.svc.PreviewTransfer(s.ctx, &PreviewTransferInput{
		FromID:   s.testPlayerID,
		ToHandle: "someone",
		Amount:   1000,
	})
	s.Require().NoError(err)

	s.Equal(int64(50), out.Tax)
	s.Equal(int64(950), out.Net)

	// Preview never moves funds or records transactions
	s.Equal(int64(10000), s.profile().Cash)
	hist, err := s.svc.History(s.ctx, &HistoryInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Empty(hist.Transactions)
}

func (s *EconomyServiceTestSuite) TestPreviewTransferValidation() {
	_, err := s.svc.PreviewTransfer(s.ctx, &PreviewTransferInput{
		FromID: s.testPlayerID, ToHandle: "someone", Amount: 0,
	})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.PreviewTransfer(s.ctx, &PreviewTransferInput{
		FromID: s.testPlayerID, ToHandle: "someone", Amount: 1_000_001,
	})
	s.ErrorIs(err, ErrTransferTooLarge)

	_, err = s.svc.PreviewTransfer(s.ctx, &PreviewTransferInput{
		FromID: s.testPlayerID, ToHandle: "someone", Amount: 20_000,
	})
	var funds *InsufficientFundsError
	s.ErrorAs(err, &funds)
}

func (s *EconomyServiceTestSuite) TestHistoryFiltersToCaller() {
	_, err := s.svc.Deposit(s.ctx, &DepositInput{PlayerID: s.testPlayerID, Amount: 100})
	s.Require().NoError(err)
	_, err = s.svc.Deposit(s.ctx, &DepositInput{PlayerID: "someone-else", Amount: 200})
	s.Require().NoError(err)
	_, err = s.svc.Withdraw(s.ctx, &WithdrawInput{PlayerID: s.testPlayerID, Amount: 50})
	s.Require().NoError(err)

	hist, err := s.svc.History(s.ctx, &HistoryInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Require().Len(hist.Transactions, 2)

	// Most recent first
	s.Equal(models.TransactionKindBankWithdraw, hist.Transactions[0].Kind)
	s.Equal(models.TransactionKindBankDeposit, hist.Transactions[1].Kind)
}

// Non-admin callers get the same rejection no matter the amount, with no
// state change.
func (s *EconomyServiceTestSuite) TestAdminGrantRejectsNonAdminUniformly() {
	_, errSmall := s.svc.AdminGrant(s.ctx, &AdminGrantInput{
		CallerID: s.testPlayerID,
		Amount:   100,
	})
	_, errHuge := s.svc.AdminGrant(s.ctx, &AdminGrantInput{
		CallerID: s.testPlayerID,
		Amount:   999_999_999,
	})

	s.ErrorIs(errSmall, ErrNotAdmin)
	s.ErrorIs(errHuge, ErrNotAdmin)
	s.Equal(errSmall, errHuge)

	hist, err := s.svc.History(s.ctx, &HistoryInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Empty(hist.Transactions)
}

func (s *EconomyServiceTestSuite) TestAdminGrantValidation() {
	_, err := s.svc.AdminGrant(s.ctx, &AdminGrantInput{
		CallerID: s.testAdminID,
		Amount:   0,
	})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.AdminGrant(s.ctx, &AdminGrantInput{
		CallerID: s.testAdminID,
		Amount:   10_000_001,
	})
	s.ErrorIs(err, ErrGrantTooLarge)
}

func (s *EconomyServiceTestSuite) TestAdminGrantDefaultsToSelf() {
	out, err := s.svc.AdminGrant(s.ctx, &AdminGrantInput{
		CallerID: s.testAdminID,
		Amount:   5000,
	})
	s.Require().NoError(err)

	s.Equal(s.testAdminID, out.TargetID)
	s.Equal(int64(15000), out.Cash)
}

func (s *EconomyServiceTestSuite) TestAdminResetRestoresStartingState() {
	// Build up some state to reset
	s.mockRoller.EXPECT().Roll().Return(1, 2, 3)
	_, err := s.svc.PlaceBet(s.ctx, &PlaceBetInput{
		PlayerID: s.testPlayerID,
		Choice:   BetChoiceHigh,
		Stake:    1000,
	})
	s.Require().NoError(err)
	_, err = s.svc.Deposit(s.ctx, &DepositInput{PlayerID: s.testPlayerID, Amount: 2000})
	s.Require().NoError(err)

	out, err := s.svc.AdminReset(s.ctx, &AdminResetInput{
		CallerID: s.testAdminID,
		TargetID: s.testPlayerID,
	})
	s.Require().NoError(err)
	s.Equal(int64(10000), out.Cash)

	p := s.profile()
	s.Equal(int64(10000), p.Cash)
	s.Equal(int64(0), p.BankBalance)
	s.Equal(int64(0), p.Wins)
	s.Equal(int64(0), p.Losses)
	s.Equal(int64(0), p.TotalWagered)
	s.Equal(int64(0), p.TotalWon)
	s.Equal(int64(0), p.TotalLost)
}

func (s *EconomyServiceTestSuite) TestAdminResetUnknownPlayer() {
	_, err := s.svc.AdminReset(s.ctx, &AdminResetInput{
		CallerID: s.testAdminID,
		TargetID: "nobody",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *EconomyServiceTestSuite) TestAdminResetRejectsNonAdmin() {
	_, err := s.svc.AdminReset(s.ctx, &AdminResetInput{
		CallerID: s.testPlayerID,
		TargetID: s.testPlayerID,
	})
	s.ErrorIs(err, ErrNotAdmin)
}

// Balances never go negative across a mixed command sequence.
func (s *EconomyServiceTestSuite) TestBalancesStayNonNegative() {
	s.mockRoller.EXPECT().Roll().Return(1, 2, 3).AnyTimes()

	ops := []func() (any, error){
		func() (any, error) {
			return s.svc.PlaceBet(s.ctx, &PlaceBetInput{PlayerID: s.testPlayerID, Choice: BetChoiceHigh, Stake: 9_000})
		},
		func() (any, error) {
			return s.svc.PlaceBet(s.ctx, &PlaceBetInput{PlayerID: s.testPlayerID, Choice: BetChoiceHigh, Stake: 5_000})
		},
		func() (any, error) {
			return s.svc.Deposit(s.ctx, &DepositInput{PlayerID: s.testPlayerID, Amount: 800})
		},
		func() (any, error) {
			return s.svc.Withdraw(s.ctx, &WithdrawInput{PlayerID: s.testPlayerID, Amount: 5_000})
		},
	}

	for _, op := range ops {
		op() // rejections are fine, negative balances are not

		p := s.profile()
		s.GreaterOrEqual(p.Cash, int64(0))
		s.GreaterOrEqual(p.BankBalance, int64(0))
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		token  string
		choice BetChoice
		ok     bool
	}{
		{"high", BetChoiceHigh, true},
		{"HIGH", BetChoiceHigh, true},
		{"tai", BetChoiceHigh, true},
		{"tài", BetChoiceHigh, true},
		{"low", BetChoiceLow, true},
		{"Xiu", BetChoiceLow, true},
		{"xỉu", BetChoiceLow, true},
		{"triple", BetChoiceTriple, true},
		{"BAO", BetChoiceTriple, true},
		{"sideways", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		choice, ok := ParseChoice(tt.token)
		if ok != tt.ok || choice != tt.choice {
			t.Errorf("ParseChoice(%q) = (%q, %v), want (%q, %v)", tt.token, choice, ok, tt.choice, tt.ok)
		}
	}
}
