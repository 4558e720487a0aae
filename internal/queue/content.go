package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ContentChangeQueue is the redis list the change feed lives on.
const ContentChangeQueue = "content:change:queue"

// Change describes one mutation of a content collection or the homepage
// document. Consumers use it to invalidate caches and rebuild public pages.
type Change struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	Op         string    `json:"op"` // create, update, delete, hero
	At         time.Time `json:"at"`
}

type ContentQueue interface {
	// PublishChange appends a content change to the queue.
	PublishChange(ctx context.Context, change *Change) error
	// Subscribe drains the queue into a channel until ctx is done.
	Subscribe(ctx context.Context) (<-chan *Change, error)
}

var _ ContentQueue = (*RedisQueue)(nil)

type RedisQueue struct {
	client *redis.Client
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

func (q *RedisQueue) PublishChange(ctx context.Context, change *Change) error {
	data, err := json.Marshal(change)
	if err != nil {
		return err
	}

	return q.client.LPush(ctx, ContentChangeQueue, data).Err()
}

func (q *RedisQueue) Subscribe(ctx context.Context) (<-chan *Change, error) {
	changes := make(chan *Change)

	go func() {
		defer close(changes)

		for {
			res, err := q.client.BRPop(ctx, time.Second, ContentChangeQueue).Result()
			if errors.Is(err, redis.Nil) {
				continue
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logrus.Errorf("queue: reading change feed: %v", err)
				continue
			}

			// BRPop returns [key, value]
			if len(res) != 2 {
				continue
			}

			var change Change
			if err := json.Unmarshal([]byte(res[1]), &change); err != nil {
				logrus.Warnf("queue: dropping malformed change: %v", err)
				continue
			}

			select {
			case changes <- &change:
			case <-ctx.Done():
				return
			}
		}
	}()

	return changes, nil
}
