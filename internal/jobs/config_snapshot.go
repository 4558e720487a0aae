package jobs

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/emrgen/habitat/internal/homepage"
	"github.com/emrgen/habitat/internal/store"
	"github.com/sirupsen/logrus"
)

// ConfigSnapshotTask periodically re-merges the persisted homepage document
// against the current schema and rewrites it when it has drifted, so
// documents written by older releases converge without a migration.
type ConfigSnapshotTask struct {
	store store.Store
	cron  string
}

func NewConfigSnapshotTask(schedule string, store store.Store) *ConfigSnapshotTask {
	return &ConfigSnapshotTask{
		store: store,
		cron:  schedule,
	}
}

func (c *ConfigSnapshotTask) Name() string {
	return "config_snapshot"
}

func (c *ConfigSnapshotTask) Schedule() string {
	return c.cron
}

func (c *ConfigSnapshotTask) Run() {
	ctx := context.Background()

	raw, err := c.store.ReadConfig(ctx)
	if err != nil {
		logrus.Errorf("config snapshot: reading document: %v", err)
		return
	}
	if len(raw) == 0 {
		// nothing persisted yet, leave the defaults implicit
		return
	}

	merged, err := homepage.Merge(raw).Document()
	if err != nil {
		logrus.Errorf("config snapshot: merging document: %v", err)
		return
	}

	if sameDocument(raw, merged) {
		return
	}

	if err := c.store.WriteConfig(ctx, merged); err != nil {
		logrus.Errorf("config snapshot: rewriting document: %v", err)
		return
	}

	logrus.Infof("config snapshot: healed drifted homepage document")
}

func sameDocument(a, b map[string]any) bool {
	// normalize through JSON so numeric types compare by value
	aData, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bData, err := json.Marshal(b)
	if err != nil {
		return false
	}

	var av, bv any
	if err := json.Unmarshal(aData, &av); err != nil {
		return false
	}
	if err := json.Unmarshal(bData, &bv); err != nil {
		return false
	}

	return reflect.DeepEqual(av, bv)
}
