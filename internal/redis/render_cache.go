package redis

import (
	"context"
	"errors"
	"net/url"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RenderCache stores rendered frame images keyed by their query inputs. The
// rendering endpoint is deterministic per (action, state, message), so a
// cached asset is valid for as long as its TTL.
type RenderCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewRenderCache(r *Redis, ttl time.Duration) *RenderCache {
	return &RenderCache{
		client: r.Client,
		prefix: "frame:image:",
		ttl:    ttl,
	}
}

// Get returns the cached asset, or nil on a miss.
func (c *RenderCache) Get(ctx context.Context, action, state, message string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(action, state, message)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (c *RenderCache) Set(ctx context.Context, action, state, message string, image []byte) error {
	return c.client.Set(ctx, c.key(action, state, message), image, c.ttl).Err()
}

func (c *RenderCache) key(action, state, message string) string {
	q := url.Values{}
	q.Set("action", action)
	q.Set("state", state)
	q.Set("message", message)
	return c.prefix + q.Encode()
}
