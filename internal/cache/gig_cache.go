// Package cache caches open-gig listings in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Baaaki/gigflow/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	versionKey = "gigs:open:version"
	keyPrefix  = "gigs:open"
)

// GigCache stores open-gig listings keyed by search term. Invalidation bumps a
// version counter instead of scanning keys; entries of older versions expire
// through their TTL.
type GigCache interface {
	GetOpenGigs(ctx context.Context, search string) (Lookup, error)
	SetOpenGigs(ctx context.Context, search string, version int64, gigs []models.Gig) error
	InvalidateOpenGigs(ctx context.Context) error
}

// Lookup is the result of a cache read. Version is the cache version the read
// saw; a listing loaded after a miss is stored under that version, so a listing
// that raced with an invalidation is never served as current.
type Lookup struct {
	Gigs    []models.Gig
	Found   bool
	Version int64
}

type RedisGigCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGigCache(client *redis.Client, ttl time.Duration) *RedisGigCache {
	return &RedisGigCache{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (c *RedisGigCache) GetOpenGigs(ctx context.Context, search string) (Lookup, error) {
	version, err := c.version(ctx)
	if err != nil {
		return Lookup{}, err
	}

	val, err := c.client.Get(ctx, key(version, search)).Result()
	if errors.Is(err, redis.Nil) {
		return Lookup{Version: version}, nil
	} else if err != nil {
		return Lookup{}, err
	}

	var gigs []models.Gig
	if err := json.Unmarshal([]byte(val), &gigs); err != nil {
		return Lookup{Version: version}, err
	}
	return Lookup{Gigs: gigs, Found: true, Version: version}, nil
}

func (c *RedisGigCache) SetOpenGigs(ctx context.Context, search string, version int64, gigs []models.Gig) error {
	b, err := json.Marshal(gigs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(version, search), b, c.ttl).Err()
}

func (c *RedisGigCache) InvalidateOpenGigs(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}

func (c *RedisGigCache) version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}
	return version, nil
}

func key(version int64, search string) string {
	return fmt.Sprintf("%s:v%d:%s", keyPrefix, version, strings.ToLower(strings.TrimSpace(search)))
}

// NopGigCache is used when Redis is not configured.
type NopGigCache struct{}

func (NopGigCache) GetOpenGigs(context.Context, string) (Lookup, error) {
	return Lookup{}, nil
}

func (NopGigCache) SetOpenGigs(context.Context, string, int64, []models.Gig) error { return nil }

func (NopGigCache) InvalidateOpenGigs(context.Context) error { return nil }
