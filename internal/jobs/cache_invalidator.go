package jobs

import (
	"context"

	"github.com/emrgen/habitat/internal/cache"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/sirupsen/logrus"
)

// CacheInvalidator drains the content change feed and drops the cache slots
// a change can stale: the hero id of the touched collection and the merged
// homepage document.
type CacheInvalidator struct {
	queue queue.ContentQueue
	cache *cache.Redis
}

func NewCacheInvalidator(queue queue.ContentQueue, cache *cache.Redis) *CacheInvalidator {
	return &CacheInvalidator{
		queue: queue,
		cache: cache,
	}
}

// Run blocks until ctx is done.
func (c *CacheInvalidator) Run(ctx context.Context) error {
	changes, err := c.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	for change := range changes {
		keys := []string{cache.HomepageConfigKey()}
		if change.Collection != "homepage" {
			keys = append(keys, cache.HeroKey(change.Collection))
		}

		if err := c.cache.Delete(ctx, keys...); err != nil {
			logrus.Errorf("cache invalidator: %s/%s: %v", change.Collection, change.ID, err)
			continue
		}

		logrus.Debugf("cache invalidator: %s %s/%s", change.Op, change.Collection, change.ID)
	}

	return ctx.Err()
}
