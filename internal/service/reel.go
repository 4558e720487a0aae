package service

import (
	"context"
	"errors"

	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/emrgen/habitat/internal/store"
	"github.com/google/uuid"
)

type ReelInput struct {
	Slug      string
	Title     string
	Thumbnail string
	Category  string
	Duration  string
}

// NewReelService creates a new ReelService.
func NewReelService(store store.Store, queue queue.ContentQueue) *ReelService {
	return &ReelService{
		store: store,
		queue: queue,
	}
}

type ReelService struct {
	store store.Store
	queue queue.ContentQueue
}

func (s *ReelService) Create(ctx context.Context, input ReelInput) (*model.Reel, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	slug, err := validateSlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(model.CollectionReels, input.Category); err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, s.store, slug); err != nil {
		return nil, err
	}

	reel := &model.Reel{
		ID:        uuid.New().String(),
		Slug:      slug,
		Title:     title,
		Thumbnail: input.Thumbnail,
		Category:  input.Category,
		Duration:  input.Duration,
	}

	if err := s.store.CreateReel(ctx, reel); err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionReels, reel.ID, "create")
	return reel, nil
}

func (s *ReelService) Get(ctx context.Context, id string) (*model.Reel, error) {
	reel, err := s.store.GetReel(ctx, id)
	return reel, asServiceErr(err)
}

func (s *ReelService) GetBySlug(ctx context.Context, slug string) (*model.Reel, error) {
	reel, err := s.store.GetReelBySlug(ctx, slug)
	return reel, asServiceErr(err)
}

func (s *ReelService) List(ctx context.Context) ([]*model.Reel, error) {
	return s.store.ListReels(ctx)
}

func (s *ReelService) Update(ctx context.Context, id string, input ReelInput) (*model.Reel, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	slug, err := validateSlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(model.CollectionReels, input.Category); err != nil {
		return nil, err
	}

	var reel *model.Reel
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		reel, err = tx.GetReel(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		if slug != reel.Slug {
			if err := s.checkSlugFree(ctx, tx, slug); err != nil {
				return err
			}
		}

		reel.Slug = slug
		reel.Title = title
		reel.Thumbnail = input.Thumbnail
		reel.Category = input.Category
		reel.Duration = input.Duration

		return tx.UpdateReel(ctx, reel)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionReels, id, "update")
	return reel, nil
}

func (s *ReelService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteReel(ctx, id); err != nil {
		return asServiceErr(err)
	}

	publishChange(ctx, s.queue, model.CollectionReels, id, "delete")
	return nil
}

func (s *ReelService) SetFeatured(ctx context.Context, id string, featured bool) (*model.Reel, error) {
	var reel *model.Reel
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		reel, err = tx.GetReel(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		reel.Featured = featured
		return tx.UpdateReel(ctx, reel)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionReels, id, "update")
	return reel, nil
}

func (s *ReelService) checkSlugFree(ctx context.Context, tx store.Store, slug string) error {
	_, err := tx.GetReelBySlug(ctx, slug)
	if err == nil {
		return ErrSlugTaken
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
