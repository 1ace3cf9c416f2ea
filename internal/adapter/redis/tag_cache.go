package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rotisserie/eris"

	"dreamtraffic/internal/config/configs"
	"dreamtraffic/internal/core/port"
)

const inlinePrefix = "vast:inline:"

// Store is the part of redis.Cmdable the tag cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// New connects to the server at cfg.URL and verifies it answers.
func New(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, eris.Wrap(err, "parse redis url")
	}
	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, eris.Wrap(err, "redis ping")
	}
	return client, nil
}

// TagCache implements port.TagCache. A zero ttl keeps tags forever.
type TagCache struct {
	store Store
	ttl   time.Duration
}

var _ port.TagCache = (*TagCache)(nil)

func NewTagCache(store Store, ttl time.Duration) *TagCache {
	return &TagCache{store: store, ttl: ttl}
}

func inlineKey(creativeID int64) string {
	return inlinePrefix + strconv.FormatInt(creativeID, 10)
}

func (c *TagCache) PutInline(ctx context.Context, creativeID int64, xml string) error {
	return eris.Wrap(c.store.Set(ctx, inlineKey(creativeID), xml, c.ttl).Err(), "redis set")
}

func (c *TagCache) GetInline(ctx context.Context, creativeID int64) (string, error) {
	val, err := c.store.Get(ctx, inlineKey(creativeID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", eris.Wrapf(port.ErrNotFound, "no tag cached for creative %d", creativeID)
	}
	if err != nil {
		return "", eris.Wrap(err, "redis get")
	}
	return val, nil
}
