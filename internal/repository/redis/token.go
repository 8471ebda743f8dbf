package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
)

// TokenStore keeps refresh tokens and a revocation list in Redis. Only
// SHA-256 hashes of tokens are stored, never the raw strings.
type TokenStore struct {
	client     *redis.Client
	refreshTTL time.Duration
	revokeTTL  time.Duration
}

func NewTokenStore(url string, refreshTTL, revokeTTL time.Duration) (repository.TokenStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &TokenStore{
		client:     client,
		refreshTTL: refreshTTL,
		revokeTTL:  revokeTTL,
	}, nil
}

func (s *TokenStore) StoreRefreshToken(ctx context.Context, userID int64, token string) error {
	key := fmt.Sprintf("refresh:%d", userID)
	if err := s.client.Set(ctx, key, hashToken(token), s.refreshTTL).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) ValidateRefreshToken(ctx context.Context, userID int64, token string) (bool, error) {
	key := fmt.Sprintf("refresh:%d", userID)
	stored, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read refresh token: %w", err)
	}
	return stored == hashToken(token), nil
}

func (s *TokenStore) RevokeToken(ctx context.Context, token string) error {
	key := "revoked:" + hashToken(token)
	if err := s.client.Set(ctx, key, 1, s.revokeTTL).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *TokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := "revoked:" + hashToken(token)
	_, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return true, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
