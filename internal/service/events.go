package service

import (
	"context"
	"time"

	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/sirupsen/logrus"
)

// publishChange pushes a change event onto the feed. The feed is best-effort:
// a broken queue never fails the mutation that already committed.
func publishChange(ctx context.Context, q queue.ContentQueue, collection model.Collection, id, op string) {
	if q == nil {
		return
	}

	err := q.PublishChange(ctx, &queue.Change{
		Collection: string(collection),
		ID:         id,
		Op:         op,
		At:         time.Now(),
	})
	if err != nil {
		logrus.Warnf("service: change event not published for %s/%s: %v", collection, id, err)
	}
}
