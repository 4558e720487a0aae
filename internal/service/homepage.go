package service

import (
	"context"
	"time"

	"github.com/emrgen/habitat/internal/cache"
	"github.com/emrgen/habitat/internal/homepage"
	"github.com/emrgen/habitat/internal/ordered"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/emrgen/habitat/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const configCacheTTL = 5 * time.Minute

// MethodologyPatch updates methodology item fields; nil fields are left alone.
type MethodologyPatch struct {
	Title       *string
	Description *string
	Thumbnail   *string
	Slug        *string
}

// NuggetPatch updates nugget fields; nil fields are left alone.
type NuggetPatch struct {
	Title       *string
	Description *string
	Avatar      *string
	Slug        *string
}

// NewHomepageService creates a new HomepageService.
func NewHomepageService(store store.Store, cache *cache.Redis, queue queue.ContentQueue) *HomepageService {
	return &HomepageService{
		store: store,
		cache: cache,
		queue: queue,
	}
}

// HomepageService manages the homepage configuration document. Whatever
// fragment the store returns goes through the merge before anyone sees it,
// and only fully-merged documents are written back.
type HomepageService struct {
	store store.Store
	cache *cache.Redis
	queue queue.ContentQueue
}

// GetConfig returns the fully-populated homepage configuration.
func (s *HomepageService) GetConfig(ctx context.Context) (*homepage.Config, error) {
	if s.cache != nil {
		var cached homepage.Config
		if err := s.cache.Get(ctx, cache.HomepageConfigKey(), &cached); err == nil {
			return &cached, nil
		}
	}

	raw, err := s.store.ReadConfig(ctx)
	if err != nil {
		return nil, err
	}

	cfg := homepage.Merge(raw)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.HomepageConfigKey(), cfg, configCacheTTL); err != nil {
			logrus.Warnf("homepage: config not cached: %v", err)
		}
	}

	return cfg, nil
}

// UpdateConfig merges an arbitrary candidate document and persists the
// merged result, so the stored document is always schema-complete.
func (s *HomepageService) UpdateConfig(ctx context.Context, doc map[string]any) (*homepage.Config, error) {
	cfg := homepage.Merge(doc)

	persisted, err := cfg.Document()
	if err != nil {
		return nil, err
	}

	if err := s.store.WriteConfig(ctx, persisted); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	publishChange(ctx, s.queue, "homepage", "config", "update")
	return cfg, nil
}

func (s *HomepageService) SetSectionVisible(ctx context.Context, key string, visible bool) (*homepage.Config, error) {
	if !homepage.HasSectionKey(key) {
		return nil, invalidField("section", "unknown section key "+key)
	}

	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		cfg.Sections[key] = visible
		return nil
	})
}

func (s *HomepageService) SetTitle(ctx context.Context, key, title string) (*homepage.Config, error) {
	if !homepage.HasTitleKey(key) {
		return nil, invalidField("title", "section has no editable heading: "+key)
	}
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		cfg.Titles[key] = title
		return nil
	})
}

func (s *HomepageService) SetLimit(ctx context.Context, key string, limit int) (*homepage.Config, error) {
	if !homepage.HasLimitKey(key) {
		return nil, invalidField("limit", "unknown limit key "+key)
	}
	if limit < 0 || limit > homepage.MaxLimit {
		return nil, invalidField("limit", "must be between 0 and 50")
	}

	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		cfg.Limits[key] = limit
		return nil
	})
}

func (s *HomepageService) SetPodcast(ctx context.Context, block homepage.PodcastBlock) (*homepage.Config, error) {
	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		cfg.Podcast = block
		return nil
	})
}

func (s *HomepageService) AddMethodology(ctx context.Context, item homepage.MethodologyItem) (*homepage.Config, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		cfg.Methodology = ordered.Append(cfg.Methodology, item)
		return nil
	})
}

func (s *HomepageService) RemoveMethodology(ctx context.Context, index int) (*homepage.Config, error) {
	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		next, err := ordered.RemoveAt(cfg.Methodology, index)
		if err != nil {
			return err
		}
		cfg.Methodology = next
		return nil
	})
}

func (s *HomepageService) MoveMethodology(ctx context.Context, index int, dir ordered.Direction) (*homepage.Config, error) {
	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		next, err := ordered.MoveAdjacent(cfg.Methodology, index, dir)
		if err != nil {
			return err
		}
		cfg.Methodology = next
		return nil
	})
}

func (s *HomepageService) PatchMethodology(ctx context.Context, index int, patch MethodologyPatch) (*homepage.Config, error) {
	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		next, err := ordered.ReplaceAt(cfg.Methodology, index, func(item homepage.MethodologyItem) homepage.MethodologyItem {
			if patch.Title != nil {
				item.Title = *patch.Title
			}
			if patch.Description != nil {
				item.Description = *patch.Description
			}
			if patch.Thumbnail != nil {
				item.Thumbnail = *patch.Thumbnail
			}
			if patch.Slug != nil {
				item.Slug = *patch.Slug
			}
			return item
		})
		if err != nil {
			return err
		}
		cfg.Methodology = next
		return nil
	})
}

func (s *HomepageService) AddNugget(ctx context.Context, nugget homepage.Nugget) (*homepage.Config, error) {
	if nugget.ID == "" {
		nugget.ID = uuid.New().String()
	}

	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		cfg.Nuggets = ordered.Append(cfg.Nuggets, nugget)
		return nil
	})
}

func (s *HomepageService) RemoveNugget(ctx context.Context, index int) (*homepage.Config, error) {
	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		next, err := ordered.RemoveAt(cfg.Nuggets, index)
		if err != nil {
			return err
		}
		cfg.Nuggets = next
		return nil
	})
}

func (s *HomepageService) MoveNugget(ctx context.Context, index int, dir ordered.Direction) (*homepage.Config, error) {
	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		next, err := ordered.MoveAdjacent(cfg.Nuggets, index, dir)
		if err != nil {
			return err
		}
		cfg.Nuggets = next
		return nil
	})
}

func (s *HomepageService) PatchNugget(ctx context.Context, index int, patch NuggetPatch) (*homepage.Config, error) {
	return s.editConfig(ctx, func(cfg *homepage.Config) error {
		next, err := ordered.ReplaceAt(cfg.Nuggets, index, func(nugget homepage.Nugget) homepage.Nugget {
			if patch.Title != nil {
				nugget.Title = *patch.Title
			}
			if patch.Description != nil {
				nugget.Description = *patch.Description
			}
			if patch.Avatar != nil {
				nugget.Avatar = *patch.Avatar
			}
			if patch.Slug != nil {
				nugget.Slug = *patch.Slug
			}
			return nugget
		})
		if err != nil {
			return err
		}
		cfg.Nuggets = next
		return nil
	})
}

// editConfig runs one read-merge-mutate-write cycle inside a store
// transaction, so interleaved admin edits cannot clobber each other.
func (s *HomepageService) editConfig(ctx context.Context, edit func(*homepage.Config) error) (*homepage.Config, error) {
	var cfg *homepage.Config

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		raw, err := tx.ReadConfig(ctx)
		if err != nil {
			return err
		}

		cfg = homepage.Merge(raw)
		if err := edit(cfg); err != nil {
			return err
		}

		doc, err := cfg.Document()
		if err != nil {
			return err
		}

		return tx.WriteConfig(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	publishChange(ctx, s.queue, "homepage", "config", "update")
	return cfg, nil
}

func (s *HomepageService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.HomepageConfigKey()); err != nil {
		logrus.Warnf("homepage: config cache not invalidated: %v", err)
	}
}
