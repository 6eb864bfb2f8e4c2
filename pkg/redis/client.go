package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client wraps go-redis for the client-side state the app persists between
// page loads: the session-scoped current user and the durable list of
// virtual teams created by this profile.
type Client struct {
	rdb        *redis.Client
	KeyBuilder *KeyBuilder
	log        *zap.Logger
}

// Key templates
const (
	// KeySessionUser holds the logged-in user record for one session.
	KeySessionUser = "session:user:%s"
	// KeyOwnedTeams is the set of virtual-team ids created by a profile.
	KeyOwnedTeams = "profile:%s:teams"
)

// TTL constants
const (
	// TTLSession bounds the session-scoped current-user record.
	TTLSession = 12 * time.Hour
)

// NewClient creates a new Redis client
func NewClient(redisURL string, environment string, log *zap.Logger) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, KeyBuilder: NewKeyBuilder(environment), log: log}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

// Get retrieves a value from Redis
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	val, err := c.rdb.Get(ctx, key).Result()
	dur := time.Since(start)
	if err != nil && err != redis.Nil {
		c.log.Info("redis_get",
			zap.String("key", key),
			zap.Duration("duration", dur),
			zap.Error(err))
	} else {
		c.log.Debug("redis_get",
			zap.String("key", key),
			zap.Duration("duration", dur))
	}
	return val, err
}

// Set stores a value in Redis with TTL
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	start := time.Now()
	err := c.rdb.Set(ctx, key, value, ttl).Err()
	dur := time.Since(start)
	if err != nil {
		c.log.Info("redis_set",
			zap.String("key", key),
			zap.Duration("duration", dur),
			zap.Error(err))
	} else {
		c.log.Debug("redis_set",
			zap.String("key", key),
			zap.Duration("duration", dur))
	}
	return err
}

// Delete removes keys from Redis
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	start := time.Now()
	err := c.rdb.Del(ctx, keys...).Err()
	dur := time.Since(start)
	c.log.Debug("redis_del",
		zap.Int("keys", len(keys)),
		zap.Duration("duration", dur),
		zap.Error(err))
	return err
}

// SAdd adds members to a set
func (c *Client) SAdd(ctx context.Context, key string, members ...interface{}) error {
	start := time.Now()
	err := c.rdb.SAdd(ctx, key, members...).Err()
	dur := time.Since(start)
	if err != nil {
		c.log.Info("redis_sadd",
			zap.String("key", key),
			zap.Duration("duration", dur),
			zap.Error(err))
	} else {
		c.log.Debug("redis_sadd",
			zap.String("key", key),
			zap.Duration("duration", dur))
	}
	return err
}

// SRem removes members from a set
func (c *Client) SRem(ctx context.Context, key string, members ...interface{}) error {
	start := time.Now()
	err := c.rdb.SRem(ctx, key, members...).Err()
	dur := time.Since(start)
	c.log.Debug("redis_srem",
		zap.String("key", key),
		zap.Duration("duration", dur),
		zap.Error(err))
	return err
}

// SMembers returns all members of a set
func (c *Client) SMembers(ctx context.Context, key string) ([]string, error) {
	start := time.Now()
	members, err := c.rdb.SMembers(ctx, key).Result()
	dur := time.Since(start)
	if err != nil {
		c.log.Info("redis_smembers",
			zap.String("key", key),
			zap.Duration("duration", dur),
			zap.Error(err))
	} else {
		c.log.Debug("redis_smembers",
			zap.String("key", key),
			zap.Int("members", len(members)),
			zap.Duration("duration", dur))
	}
	return members, err
}

// Exists checks if keys exist
func (c *Client) Exists(ctx context.Context, keys ...string) (int64, error) {
	start := time.Now()
	n, err := c.rdb.Exists(ctx, keys...).Result()
	dur := time.Since(start)
	c.log.Debug("redis_exists",
		zap.Int64("result", n),
		zap.Int("keys", len(keys)),
		zap.Duration("duration", dur))
	return n, err
}

// Health checks the Redis connection
func (c *Client) Health(ctx context.Context) error {
	start := time.Now()
	err := c.rdb.Ping(ctx).Err()
	dur := time.Since(start)
	if err != nil {
		c.log.Info("redis_ping",
			zap.Duration("duration", dur),
			zap.Error(err))
		return err
	}
	c.log.Debug("redis_ping", zap.Duration("duration", dur))
	return nil
}

// IsNil reports whether err is the go-redis missing-key sentinel.
func IsNil(err error) bool {
	return err == redis.Nil
}
