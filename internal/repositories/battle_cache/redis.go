package battlecache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wallet-arena/internal/entities"
	"github.com/KirkDiggler/wallet-arena/internal/errors"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/wallet-arena/internal/redis"
)

const (
	// Key pattern: battle:{addr1}:{addr2}:{nonce}
	battleKeyPrefix = "battle:"
	// KeyPattern matches every cached battle
	KeyPattern = battleKeyPrefix + "*"
	// DefaultTTL is used when neither the config nor the caller sets one
	DefaultTTL = time.Hour

	errResultNil    = "result cannot be nil"
	errAddressEmpty = "both fighter addresses are required"
	errNonceEmpty   = "nonce cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed battle cache
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Put stores a battle result with the configured TTL
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Result == nil {
		return nil, errors.InvalidArgument(errResultNil)
	}

	addrs := [2]string{input.Result.Fighters[0].Address, input.Result.Fighters[1].Address}
	if err := validateKey(addrs, input.Result.Nonce); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	stored := &StoredBattle{
		Result:    input.Result,
		CachedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal battle")
	}

	key := BuildKey(addrs, input.Result.Nonce)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store battle in Redis")
	}

	return &PutOutput{Battle: stored}, nil
}

// Get retrieves a cached battle
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Addresses, input.Nonce); err != nil {
		return nil, err
	}

	key := BuildKey(input.Addresses, input.Nonce)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("battle not found").WithMeta("key", key)
		}
		return nil, errors.Wrap(err, "failed to get battle from Redis")
	}

	var stored StoredBattle
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal battle")
	}

	// Redis TTL and the injected clock can disagree; the clock wins
	if r.clock.Now().After(stored.ExpiresAt) {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			slog.Warn("Failed to evict expired battle", "key", key, "error", err)
		}
		return nil, errors.NotFound("battle has expired").WithMeta("key", key)
	}

	return &GetOutput{Battle: &stored}, nil
}

// Delete evicts a cached battle
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Addresses, input.Nonce); err != nil {
		return nil, err
	}

	n, err := r.client.Del(ctx, BuildKey(input.Addresses, input.Nonce)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete battle from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

// BuildKey returns the cache key; addresses are case-insensitive, order is not
func BuildKey(addrs [2]string, nonce string) string {
	return fmt.Sprintf("%s%s:%s:%s", battleKeyPrefix,
		entities.NormalizeAddress(addrs[0]), entities.NormalizeAddress(addrs[1]), nonce)
}

func validateKey(addrs [2]string, nonce string) error {
	if strings.TrimSpace(addrs[0]) == "" || strings.TrimSpace(addrs[1]) == "" {
		return errors.InvalidArgument(errAddressEmpty)
	}
	if nonce == "" {
		return errors.InvalidArgument(errNonceEmpty)
	}
	return nil
}
