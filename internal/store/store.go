package store

import (
	"context"
	"errors"

	"github.com/emrgen/habitat/internal/model"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrNoHeroSlot        = errors.New("collection has no hero slot")
)

type Store interface {
	ArticleStore
	ReelStore
	NewLaunchStore
	HomeTourStore
	HeroStore
	ConfigStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type ArticleStore interface {
	// CreateArticle creates a new article.
	CreateArticle(ctx context.Context, article *model.Article) error
	// GetArticle retrieves an article by ID.
	GetArticle(ctx context.Context, id string) (*model.Article, error)
	// GetArticleBySlug retrieves an article by slug.
	GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error)
	// ListArticles retrieves all articles, newest first.
	ListArticles(ctx context.Context) ([]*model.Article, error)
	// UpdateArticle updates an article.
	UpdateArticle(ctx context.Context, article *model.Article) error
	// DeleteArticle deletes an article by ID.
	DeleteArticle(ctx context.Context, id string) error
}

type ReelStore interface {
	CreateReel(ctx context.Context, reel *model.Reel) error
	GetReel(ctx context.Context, id string) (*model.Reel, error)
	GetReelBySlug(ctx context.Context, slug string) (*model.Reel, error)
	ListReels(ctx context.Context) ([]*model.Reel, error)
	UpdateReel(ctx context.Context, reel *model.Reel) error
	DeleteReel(ctx context.Context, id string) error
}

type NewLaunchStore interface {
	CreateNewLaunch(ctx context.Context, item *model.NewLaunchItem) error
	GetNewLaunch(ctx context.Context, id string) (*model.NewLaunchItem, error)
	GetNewLaunchBySlug(ctx context.Context, slug string) (*model.NewLaunchItem, error)
	ListNewLaunches(ctx context.Context) ([]*model.NewLaunchItem, error)
	UpdateNewLaunch(ctx context.Context, item *model.NewLaunchItem) error
	DeleteNewLaunch(ctx context.Context, id string) error
}

type HomeTourStore interface {
	CreateHomeTour(ctx context.Context, tour *model.HomeTourItem) error
	GetHomeTour(ctx context.Context, id string) (*model.HomeTourItem, error)
	GetHomeTourBySlug(ctx context.Context, slug string) (*model.HomeTourItem, error)
	ListHomeTours(ctx context.Context) ([]*model.HomeTourItem, error)
	UpdateHomeTour(ctx context.Context, tour *model.HomeTourItem) error
	DeleteHomeTour(ctx context.Context, id string) error
}

type HeroStore interface {
	// GetContent retrieves one hero-capable item from its collection.
	GetContent(ctx context.Context, collection model.Collection, id string) (model.ContentItem, error)
	// ListHeroes retrieves every item of the collection currently flagged
	// as hero. A healthy collection yields zero or one row.
	ListHeroes(ctx context.Context, collection model.Collection) ([]model.ContentItem, error)
	// SetHeroExclusive flags id as the collection's hero and clears the
	// flag on every other row, as one all-or-nothing operation.
	SetHeroExclusive(ctx context.Context, collection model.Collection, id string) error
}

type ConfigStore interface {
	// ReadConfig retrieves the raw homepage configuration document. A
	// never-written document reads as an empty mapping, not an error.
	ReadConfig(ctx context.Context) (map[string]any, error)
	// WriteConfig stores the homepage configuration document.
	WriteConfig(ctx context.Context, doc map[string]any) error
}
