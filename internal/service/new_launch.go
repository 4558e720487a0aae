package service

import (
	"context"
	"errors"

	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/emrgen/habitat/internal/store"
	"github.com/google/uuid"
)

type NewLaunchInput struct {
	Slug     string
	Title    string
	Excerpt  string
	Image    string
	Category string
	Tenure   string
}

// NewNewLaunchService creates a new NewLaunchService.
func NewNewLaunchService(store store.Store, queue queue.ContentQueue) *NewLaunchService {
	return &NewLaunchService{
		store: store,
		queue: queue,
	}
}

// NewLaunchService manages the new-launches collection. Its spotlight slot is
// driven through the HeroService under the new-launches collection.
type NewLaunchService struct {
	store store.Store
	queue queue.ContentQueue
}

func (s *NewLaunchService) Create(ctx context.Context, input NewLaunchInput) (*model.NewLaunchItem, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	slug, err := validateSlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(model.CollectionNewLaunches, input.Category); err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, s.store, slug); err != nil {
		return nil, err
	}

	item := &model.NewLaunchItem{
		ID:       uuid.New().String(),
		Slug:     slug,
		Title:    title,
		Excerpt:  input.Excerpt,
		Image:    input.Image,
		Category: input.Category,
		Tenure:   input.Tenure,
	}

	if err := s.store.CreateNewLaunch(ctx, item); err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionNewLaunches, item.ID, "create")
	return item, nil
}

func (s *NewLaunchService) Get(ctx context.Context, id string) (*model.NewLaunchItem, error) {
	item, err := s.store.GetNewLaunch(ctx, id)
	return item, asServiceErr(err)
}

func (s *NewLaunchService) GetBySlug(ctx context.Context, slug string) (*model.NewLaunchItem, error) {
	item, err := s.store.GetNewLaunchBySlug(ctx, slug)
	return item, asServiceErr(err)
}

func (s *NewLaunchService) List(ctx context.Context) ([]*model.NewLaunchItem, error) {
	return s.store.ListNewLaunches(ctx)
}

func (s *NewLaunchService) Update(ctx context.Context, id string, input NewLaunchInput) (*model.NewLaunchItem, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	slug, err := validateSlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(model.CollectionNewLaunches, input.Category); err != nil {
		return nil, err
	}

	var item *model.NewLaunchItem
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		item, err = tx.GetNewLaunch(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		if slug != item.Slug {
			if err := s.checkSlugFree(ctx, tx, slug); err != nil {
				return err
			}
		}

		item.Slug = slug
		item.Title = title
		item.Excerpt = input.Excerpt
		item.Image = input.Image
		item.Category = input.Category
		item.Tenure = input.Tenure

		return tx.UpdateNewLaunch(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionNewLaunches, id, "update")
	return item, nil
}

func (s *NewLaunchService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteNewLaunch(ctx, id); err != nil {
		return asServiceErr(err)
	}

	publishChange(ctx, s.queue, model.CollectionNewLaunches, id, "delete")
	return nil
}

func (s *NewLaunchService) SetFeatured(ctx context.Context, id string, featured bool) (*model.NewLaunchItem, error) {
	var item *model.NewLaunchItem
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		item, err = tx.GetNewLaunch(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		item.Featured = featured
		return tx.UpdateNewLaunch(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionNewLaunches, id, "update")
	return item, nil
}

func (s *NewLaunchService) checkSlugFree(ctx context.Context, tx store.Store, slug string) error {
	_, err := tx.GetNewLaunchBySlug(ctx, slug)
	if err == nil {
		return ErrSlugTaken
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
