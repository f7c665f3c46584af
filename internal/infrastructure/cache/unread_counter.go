package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/storeops/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const unreadKeyPrefix = "notification:unread:"

// Counter TTL bounds staleness if a decrement is ever lost; the next cache
// miss rebuilds the value from the database.
const unreadCounterTTL = 24 * time.Hour

// RedisUnreadCounter caches per-recipient unread notification counts in
// Redis so badge polling never hits the database on the hot path.
type RedisUnreadCounter struct {
	client *redis.Client
}

// NewRedisClient creates and pings a Redis client from configuration
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewRedisUnreadCounter creates a counter backed by an existing Redis client
func NewRedisUnreadCounter(client *redis.Client) *RedisUnreadCounter {
	return &RedisUnreadCounter{client: client}
}

func (c *RedisUnreadCounter) key(recipientID uuid.UUID) string {
	return unreadKeyPrefix + recipientID.String()
}

// Get returns the cached count and whether the key was present
func (c *RedisUnreadCounter) Get(ctx context.Context, recipientID uuid.UUID) (int64, bool, error) {
	count, err := c.client.Get(ctx, c.key(recipientID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read unread counter: %w", err)
	}
	return count, true, nil
}

// Set stores the count with the staleness TTL
func (c *RedisUnreadCounter) Set(ctx context.Context, recipientID uuid.UUID, count int64) error {
	if err := c.client.Set(ctx, c.key(recipientID), count, unreadCounterTTL).Err(); err != nil {
		return fmt.Errorf("failed to write unread counter: %w", err)
	}
	return nil
}

// Incr bumps the counter for a newly delivered notification. Missing keys
// are left absent so the next read rebuilds from the database instead of
// seeding a counter at 1 for a recipient with older unread rows.
func (c *RedisUnreadCounter) Incr(ctx context.Context, recipientID uuid.UUID) error {
	key := c.key(recipientID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check unread counter: %w", err)
	}
	if exists == 0 {
		return nil
	}
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to increment unread counter: %w", err)
	}
	return nil
}

// Decr lowers the counter after a notification is read, never below zero
func (c *RedisUnreadCounter) Decr(ctx context.Context, recipientID uuid.UUID) error {
	key := c.key(recipientID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check unread counter: %w", err)
	}
	if exists == 0 {
		return nil
	}
	count, err := c.client.Decr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to decrement unread counter: %w", err)
	}
	if count < 0 {
		return c.client.Set(ctx, key, 0, unreadCounterTTL).Err()
	}
	return nil
}
