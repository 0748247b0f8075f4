package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pawtag/internal/model"
)

const (
	// ProfileCachePrefix is the key prefix for public dog profile caches
	ProfileCachePrefix = "profile:dog:"

	// ProfileCacheTTL bounds staleness of the public profile view. The
	// cache is also invalidated explicitly on profile updates.
	ProfileCacheTTL = 5 * time.Minute
)

// ProfileCache caches the unauthenticated dog profile view. The public
// profile is the only endpoint reachable from a printed tag, so it sees
// far more traffic than the authenticated surface.
type ProfileCache interface {
	Get(ctx context.Context, dogID int64) (*model.DogProfile, bool, error)
	Set(ctx context.Context, profile *model.DogProfile) error
	Invalidate(ctx context.Context, dogID int64) error
}

// RedisProfileCache implements ProfileCache using Redis.
type RedisProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) ProfileCache {
	return &RedisProfileCache{client: client}
}

func profileKey(dogID int64) string {
	return fmt.Sprintf("%s%d", ProfileCachePrefix, dogID)
}

func (c *RedisProfileCache) Get(ctx context.Context, dogID int64) (*model.DogProfile, bool, error) {
	raw, err := c.client.Get(ctx, profileKey(dogID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get profile cache: %w", err)
	}

	var profile model.DogProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// Treat a corrupt entry as a miss; it will be rewritten.
		return nil, false, nil
	}
	return &profile, true, nil
}

func (c *RedisProfileCache) Set(ctx context.Context, profile *model.DogProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := c.client.Set(ctx, profileKey(profile.ID), raw, ProfileCacheTTL).Err(); err != nil {
		return fmt.Errorf("set profile cache: %w", err)
	}
	return nil
}

func (c *RedisProfileCache) Invalidate(ctx context.Context, dogID int64) error {
	if err := c.client.Del(ctx, profileKey(dogID)).Err(); err != nil {
		return fmt.Errorf("invalidate profile cache: %w", err)
	}
	return nil
}
