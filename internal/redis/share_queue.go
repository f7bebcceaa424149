package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"guardiant/internal/domain"
	"guardiant/pkg/e"
)

// ShareQueue buffers share notifications between the incident service and
// the webhook sender.
type ShareQueue struct {
	client *redis.Client
	key    string
}

func NewShareQueue(client *redis.Client, key string) *ShareQueue {
	return &ShareQueue{client: client, key: key}
}

func (q *ShareQueue) Enqueue(ctx context.Context, payload domain.ShareNotification) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *ShareQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.ShareNotification, error) {
	var p domain.ShareNotification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
