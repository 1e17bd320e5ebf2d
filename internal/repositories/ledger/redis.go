package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dxtdz/sicbot/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Key the whole ledger document is stored under
const ledgerKey = "sicbot:ledger"

// RedisConfig holds configuration for the Redis ledger repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Load retrieves the ledger document from Redis. A missing key or an
// unreadable value degrades to an empty ledger with a log line.
func (r *redisRepository) Load(ctx context.Context, _ *LoadInput) (*models.Ledger, error) {
	data, err := r.client.Get(ctx, ledgerKey).Result()
	if err != nil {
		if err == redis.Nil {
			logrus.Info("no ledger key yet, starting empty")
		} else {
			logrus.WithError(err).Error("failed to read ledger from Redis, starting empty")
		}
		return models.NewLedger(), nil
	}

	doc := models.NewLedger()
	if err := json.Unmarshal([]byte(data), doc); err != nil {
		logrus.WithError(err).Error("failed to unmarshal ledger from Redis, starting empty")
		return models.NewLedger(), nil
	}

	doc.Normalize()
	return doc, nil
}

// Save overwrites the ledger document in Redis
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Ledger == nil {
		return errors.New("input and ledger cannot be nil")
	}

	data, err := json.Marshal(input.Ledger)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	if err := r.client.Set(ctx, ledgerKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}
