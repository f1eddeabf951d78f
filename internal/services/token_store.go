package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// TokenStore persists issued bearer tokens, keyed by token digest. Get
// returns the owning user id. Deleting a digest revokes the token.
type TokenStore interface {
	Put(ctx context.Context, digest string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, digest string) (uint, bool, error)
	Delete(ctx context.Context, digest string) error
}

// MemoryTokenStore keeps tokens in process memory. Suitable for development
// and tests; tokens do not survive a restart.
type MemoryTokenStore struct {
	cache *gocache.Cache
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (s *MemoryTokenStore) Put(_ context.Context, digest string, userID uint, ttl time.Duration) error {
	s.cache.Set(digest, userID, ttl)
	return nil
}

func (s *MemoryTokenStore) Get(_ context.Context, digest string) (uint, bool, error) {
	val, found := s.cache.Get(digest)
	if !found {
		return 0, false, nil
	}
	userID, ok := val.(uint)
	if !ok {
		return 0, false, nil
	}
	return userID, true, nil
}

func (s *MemoryTokenStore) Delete(_ context.Context, digest string) error {
	s.cache.Delete(digest)
	return nil
}

// RedisTokenStore keeps tokens in Redis so every API instance sees the same
// session state.
type RedisTokenStore struct {
	redis *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{redis: client}
}

func tokenKey(digest string) string {
	return "token:" + digest
}

func (s *RedisTokenStore) Put(ctx context.Context, digest string, userID uint, ttl time.Duration) error {
	if err := s.redis.Set(ctx, tokenKey(digest), strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Get(ctx context.Context, digest string) (uint, bool, error) {
	val, err := s.redis.Get(ctx, tokenKey(digest)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up token: %w", err)
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt token entry: %w", err)
	}
	return uint(userID), true, nil
}

func (s *RedisTokenStore) Delete(ctx context.Context, digest string) error {
	if err := s.redis.Del(ctx, tokenKey(digest)).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
