package service

import (
	"context"
	"errors"

	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/emrgen/habitat/internal/store"
	"github.com/google/uuid"
)

type HomeTourInput struct {
	Slug     string
	Title    string
	Excerpt  string
	Image    string
	Category string
	Duration string
}

// NewHomeTourService creates a new HomeTourService.
func NewHomeTourService(store store.Store, queue queue.ContentQueue) *HomeTourService {
	return &HomeTourService{
		store: store,
		queue: queue,
	}
}

type HomeTourService struct {
	store store.Store
	queue queue.ContentQueue
}

func (s *HomeTourService) Create(ctx context.Context, input HomeTourInput) (*model.HomeTourItem, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	slug, err := validateSlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(model.CollectionHomeTours, input.Category); err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, s.store, slug); err != nil {
		return nil, err
	}

	tour := &model.HomeTourItem{
		ID:       uuid.New().String(),
		Slug:     slug,
		Title:    title,
		Excerpt:  input.Excerpt,
		Image:    input.Image,
		Category: input.Category,
		Duration: input.Duration,
	}

	if err := s.store.CreateHomeTour(ctx, tour); err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionHomeTours, tour.ID, "create")
	return tour, nil
}

func (s *HomeTourService) Get(ctx context.Context, id string) (*model.HomeTourItem, error) {
	tour, err := s.store.GetHomeTour(ctx, id)
	return tour, asServiceErr(err)
}

func (s *HomeTourService) GetBySlug(ctx context.Context, slug string) (*model.HomeTourItem, error) {
	tour, err := s.store.GetHomeTourBySlug(ctx, slug)
	return tour, asServiceErr(err)
}

func (s *HomeTourService) List(ctx context.Context) ([]*model.HomeTourItem, error) {
	return s.store.ListHomeTours(ctx)
}

func (s *HomeTourService) Update(ctx context.Context, id string, input HomeTourInput) (*model.HomeTourItem, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	slug, err := validateSlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(model.CollectionHomeTours, input.Category); err != nil {
		return nil, err
	}

	var tour *model.HomeTourItem
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		tour, err = tx.GetHomeTour(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		if slug != tour.Slug {
			if err := s.checkSlugFree(ctx, tx, slug); err != nil {
				return err
			}
		}

		tour.Slug = slug
		tour.Title = title
		tour.Excerpt = input.Excerpt
		tour.Image = input.Image
		tour.Category = input.Category
		tour.Duration = input.Duration

		return tx.UpdateHomeTour(ctx, tour)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionHomeTours, id, "update")
	return tour, nil
}

func (s *HomeTourService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteHomeTour(ctx, id); err != nil {
		return asServiceErr(err)
	}

	publishChange(ctx, s.queue, model.CollectionHomeTours, id, "delete")
	return nil
}

func (s *HomeTourService) SetFeatured(ctx context.Context, id string, featured bool) (*model.HomeTourItem, error) {
	var tour *model.HomeTourItem
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		tour, err = tx.GetHomeTour(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		tour.Featured = featured
		return tx.UpdateHomeTour(ctx, tour)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionHomeTours, id, "update")
	return tour, nil
}

func (s *HomeTourService) checkSlugFree(ctx context.Context, tx store.Store, slug string) error {
	_, err := tx.GetHomeTourBySlug(ctx, slug)
	if err == nil {
		return ErrSlugTaken
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
