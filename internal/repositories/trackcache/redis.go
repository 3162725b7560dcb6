package trackcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/deejay/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for cached tracks in Redis
	trackKeyPrefix = "trackcache:"
)

// ErrTrackNotCached is returned when no cached track exists for an identifier
var ErrTrackNotCached = errors.New("track not cached")

// Config holds configuration for the Redis track cache repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// cachedTrack is the stored representation of a cache entry
type cachedTrack struct {
	Track      *models.Track `json:"track"`
	ResolvedAt time.Time     `json:"resolved_at"`
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed track cache repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// SaveTrack caches a resolved track under its identifier
func (r *redisRepository) SaveTrack(ctx context.Context, input *SaveTrackInput) error {
	if input == nil || input.Track == nil {
		return errors.New("input and track cannot be nil")
	}

	if input.Identifier == "" {
		return errors.New("identifier cannot be empty")
	}

	// Marshal the cache entry to JSON
	entryJSON, err := json.Marshal(&cachedTrack{
		Track:      input.Track,
		ResolvedAt: input.ResolvedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cached track: %w", err)
	}

	trackKey := fmt.Sprintf("%s%s", trackKeyPrefix, input.Identifier)
	if err := r.client.Set(ctx, trackKey, entryJSON, input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save cached track: %w", err)
	}

	return nil
}

// GetTrack retrieves a cached track by identifier
func (r *redisRepository) GetTrack(ctx context.Context, input *GetTrackInput) (*models.Track, error) {
	if input == nil || input.Identifier == "" {
		return nil, errors.New("input and identifier cannot be empty")
	}

	trackKey := fmt.Sprintf("%s%s", trackKeyPrefix, input.Identifier)
	entryJSON, err := r.client.Get(ctx, trackKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTrackNotCached
		}
		return nil, fmt.Errorf("failed to get cached track: %w", err)
	}

	// Unmarshal the cache entry from JSON
	var entry cachedTrack
	if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached track: %w", err)
	}

	return entry.Track, nil
}
