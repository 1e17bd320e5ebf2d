package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dxtdz/sicbot/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestLoadMissingKeyReturnsEmptyLedger() {
	doc, err := s.repo.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)
	s.Require().NotNil(doc)
	s.Empty(doc.Players)
	s.Empty(doc.Transactions)
}

func (s *RedisRepositoryTestSuite) TestLoadCorruptValueReturnsEmptyLedger() {
	s.Require().NoError(s.mr.Set(ledgerKey, "{broken"))

	doc, err := s.repo.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)
	s.Require().NotNil(doc)
	s.Empty(doc.Players)
}

func (s *RedisRepositoryTestSuite) TestSaveThenLoad() {
	doc := models.NewLedger()
	doc.Players["player-1"] = &models.Player{
		Cash:         10000,
		TotalWagered: 1500,
		DisplayName:  "Player One",
	}
	doc.Transactions = []*models.Transaction{
		{
			ID:        "1743847200000000000",
			Kind:      models.TransactionKindSystemGrant,
			FromID:    "system",
			ToID:      "player-1",
			Amount:    1000,
			CreatedAt: s.testNow,
		},
	}

	err := s.repo.Save(context.Background(), &SaveInput{Ledger: doc})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)

	s.Require().Contains(loaded.Players, "player-1")
	s.Equal(int64(10000), loaded.Players["player-1"].Cash)
	s.Require().Len(loaded.Transactions, 1)
	s.Equal(models.TransactionKindSystemGrant, loaded.Transactions[0].Kind)
}

func (s *RedisRepositoryTestSuite) TestSaveNilInput() {
	s.Error(s.repo.Save(context.Background(), nil))
	s.Error(s.repo.Save(context.Background(), &SaveInput{}))
}
