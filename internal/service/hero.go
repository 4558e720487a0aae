package service

import (
	"context"
	"sort"
	"time"

	"github.com/emrgen/habitat/internal/cache"
	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/emrgen/habitat/internal/store"
	"github.com/sirupsen/logrus"
)

const heroCacheTTL = time.Hour

// NewHeroService creates a new HeroService.
func NewHeroService(store store.Store, cache *cache.Redis, queue queue.ContentQueue) *HeroService {
	return &HeroService{
		store: store,
		cache: cache,
		queue: queue,
	}
}

// HeroService enforces the single-hero invariant per collection. All the
// clearing and setting happens inside one store transaction; two racing
// Designate calls serialize there and the last committed one wins.
type HeroService struct {
	store store.Store
	cache *cache.Redis
	queue queue.ContentQueue
}

// Designate makes the item the collection's only hero.
func (s *HeroService) Designate(ctx context.Context, collection model.Collection, id string) (model.ContentItem, error) {
	if !collection.HasHero() {
		return nil, ErrNoHeroSlot
	}

	if err := s.store.SetHeroExclusive(ctx, collection, id); err != nil {
		return nil, asServiceErr(err)
	}

	item, err := s.store.GetContent(ctx, collection, id)
	if err != nil {
		return nil, asServiceErr(err)
	}

	s.cacheHero(ctx, collection, id)

	publishChange(ctx, s.queue, collection, id, "hero")
	return item, nil
}

// CurrentHero returns the collection's hero, or nil when none has ever been
// designated. Should the store hold more than one flagged row, the lowest id
// wins deterministically and the inconsistency is reported, never returned.
func (s *HeroService) CurrentHero(ctx context.Context, collection model.Collection) (model.ContentItem, error) {
	if !collection.HasHero() {
		return nil, ErrNoHeroSlot
	}

	if item := s.cachedHero(ctx, collection); item != nil {
		return item, nil
	}

	heroes, err := s.store.ListHeroes(ctx, collection)
	if err != nil {
		return nil, asServiceErr(err)
	}

	if len(heroes) == 0 {
		return nil, nil
	}

	sort.Slice(heroes, func(i, j int) bool {
		return heroes[i].ItemID() < heroes[j].ItemID()
	})

	if len(heroes) > 1 {
		ids := make([]string, 0, len(heroes))
		for _, hero := range heroes {
			ids = append(ids, hero.ItemID())
		}
		logrus.Warnf("hero: collection %s holds %d hero rows %v, picking %s",
			collection, len(heroes), ids, ids[0])
	}

	s.cacheHero(ctx, collection, heroes[0].ItemID())
	return heroes[0], nil
}

// cachedHero resolves the cached hero id against the store. A slot pointing
// at a row that is gone or no longer flagged is dropped, not served.
func (s *HeroService) cachedHero(ctx context.Context, collection model.Collection) model.ContentItem {
	if s.cache == nil {
		return nil
	}

	var id string
	if err := s.cache.Get(ctx, cache.HeroKey(string(collection)), &id); err != nil {
		return nil
	}

	item, err := s.store.GetContent(ctx, collection, id)
	if err != nil || !item.Hero() {
		if err := s.cache.Delete(ctx, cache.HeroKey(string(collection))); err != nil {
			logrus.Warnf("hero: stale cache slot not dropped for %s: %v", collection, err)
		}
		return nil
	}

	return item
}

func (s *HeroService) cacheHero(ctx context.Context, collection model.Collection, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cache.HeroKey(string(collection)), id, heroCacheTTL); err != nil {
		logrus.Warnf("hero: cache not updated for %s: %v", collection, err)
	}
}
