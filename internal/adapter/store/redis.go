// Package store implements the recent-searches store port: a redis-backed
// implementation for production and an in-memory one for tests and local
// development.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripdesk/tripsearch/internal/domain"
)

// Config contains configuration options for the redis store.
type Config struct {
	Addr     string
	Password string
	DB       int

	// TTL expires a session's recent list after inactivity.
	TTL time.Duration
}

// RedisStore persists recent searches per session in redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(cfg Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

func recentKey(sessionID string) string {
	return "recent:searches:" + sessionID
}

// Get implements domain.RecentStore. A missing key yields an empty list.
func (s *RedisStore) Get(ctx context.Context, sessionID string) ([]domain.RecentSearchEntry, error) {
	data, err := s.client.Get(ctx, recentKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RecentSearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if len(entries) > domain.MaxRecentSearches {
		entries = entries[:domain.MaxRecentSearches]
	}
	return entries, nil
}

// Set implements domain.RecentStore.
func (s *RedisStore) Set(ctx context.Context, sessionID string, entries []domain.RecentSearchEntry) error {
	if len(entries) > domain.MaxRecentSearches {
		entries = entries[:domain.MaxRecentSearches]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, recentKey(sessionID), data, s.ttl).Err()
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements the port at compile time.
var _ domain.RecentStore = (*RedisStore)(nil)
