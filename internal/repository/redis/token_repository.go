package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenData struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenRepository tracks issued admin tokens so they can be validated and
// revoked server-side.
type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

func (r *TokenRepository) StoreToken(ctx context.Context, token string, data TokenData, ttl time.Duration) error {
	key := fmt.Sprintf("token:lookup:%s", token)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal token data: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token in Redis: %w", err)
	}

	return nil
}

// ValidateToken checks if a token exists and returns its owner.
func (r *TokenRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	key := fmt.Sprintf("token:lookup:%s", token)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errors.New("token not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	var data TokenData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal token data: %w", err)
	}

	return data.Username, nil
}

func (r *TokenRepository) RevokeToken(ctx context.Context, token string) error {
	key := fmt.Sprintf("token:lookup:%s", token)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
