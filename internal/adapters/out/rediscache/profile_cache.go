// Package rediscache implements ports.ProfileCache on Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "cashrun:profile:"
	DefaultTTL       = 10 * time.Minute
)

type cachedProfileJSON struct {
	UserID          string `json:"userId"`
	Role            string `json:"role"`
	ProfileComplete bool   `json:"profileComplete"`
}

// ProfileCache stores profile snapshots as JSON strings that expire after ttl.
type ProfileCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewProfileCache uses DefaultTTL when ttl is not positive.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProfileCache{
		client: client,
		prefix: DefaultKeyPrefix,
		ttl:    ttl,
	}
}

func (c *ProfileCache) Get(ctx context.Context, userID kernel.UUID) (ports.CachedProfile, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.CachedProfile{}, false, nil
	}
	if err != nil {
		return ports.CachedProfile{}, false, fmt.Errorf("profile cache get: %w", err)
	}

	var stored cachedProfileJSON
	if err = json.Unmarshal(raw, &stored); err != nil {
		return ports.CachedProfile{}, false, fmt.Errorf("profile cache decode: %w", err)
	}

	id, err := kernel.UUIDFromString(stored.UserID)
	if err != nil {
		return ports.CachedProfile{}, false, fmt.Errorf("profile cache decode: %w", err)
	}

	return ports.CachedProfile{
		UserID:          id,
		Role:            stored.Role,
		ProfileComplete: stored.ProfileComplete,
	}, true, nil
}

func (c *ProfileCache) Set(ctx context.Context, profile ports.CachedProfile) error {
	if err := profile.UserID.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(cachedProfileJSON{
		UserID:          profile.UserID.String(),
		Role:            profile.Role,
		ProfileComplete: profile.ProfileComplete,
	})
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, c.key(profile.UserID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("profile cache set: %w", err)
	}
	return nil
}

// Invalidate drops the entry; a missing key is not an error.
func (c *ProfileCache) Invalidate(ctx context.Context, userID kernel.UUID) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("profile cache invalidate: %w", err)
	}
	return nil
}

func (c *ProfileCache) key(userID kernel.UUID) string {
	return c.prefix + userID.String()
}
