package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
)

const blacklistPrefix = "blacklist:access:"

// TokenBlacklist keeps revoked tokens in Redis until they would have
// expired anyway. Tokens without exp are kept for fallbackTTL; a zero
// fallbackTTL keeps them forever.
type TokenBlacklist struct {
	Client      *redis.Client
	fallbackTTL time.Duration
	now         func() time.Time
}

func NewTokenBlacklist(ctx context.Context, redisURL string, fallbackTTL time.Duration) (*TokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	err = retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return client.Ping(pingCtx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(300*time.Millisecond),
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewTokenBlacklistFromClient(client, fallbackTTL), nil
}

func NewTokenBlacklistFromClient(client *redis.Client, fallbackTTL time.Duration) *TokenBlacklist {
	return &TokenBlacklist{
		Client:      client,
		fallbackTTL: fallbackTTL,
		now:         time.Now,
	}
}

// Revoke blacklists token. expiresAt is the token's exp, or zero when the
// token has none.
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if token == "" {
		return errors.New("token is required")
	}

	ttl := b.fallbackTTL
	if !expiresAt.IsZero() {
		ttl = expiresAt.Sub(b.now())
		if ttl <= 0 {
			// already expired, nothing left to revoke
			return nil
		}
	}

	if err := b.Client.Set(ctx, blacklistPrefix+token, "true", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token in Redis: %w", err)
	}
	return nil
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.Client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}

func (b *TokenBlacklist) Close() error {
	return b.Client.Close()
}
