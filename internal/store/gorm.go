package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/emrgen/habitat/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateArticle(ctx context.Context, article *model.Article) error {
	return g.db.WithContext(ctx).Create(article).Error
}

func (g *GormStore) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &article, nil
}

func (g *GormStore) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &article, nil
}

func (g *GormStore) ListArticles(ctx context.Context) ([]*model.Article, error) {
	var articles []*model.Article
	err := g.db.WithContext(ctx).Order("created_at desc").Find(&articles).Error
	return articles, err
}

func (g *GormStore) UpdateArticle(ctx context.Context, article *model.Article) error {
	return g.db.WithContext(ctx).Save(article).Error
}

func (g *GormStore) DeleteArticle(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &model.Article{}, id)
}

func (g *GormStore) CreateReel(ctx context.Context, reel *model.Reel) error {
	return g.db.WithContext(ctx).Create(reel).Error
}

func (g *GormStore) GetReel(ctx context.Context, id string) (*model.Reel, error) {
	var reel model.Reel
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&reel).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &reel, nil
}

func (g *GormStore) GetReelBySlug(ctx context.Context, slug string) (*model.Reel, error) {
	var reel model.Reel
	err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&reel).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &reel, nil
}

func (g *GormStore) ListReels(ctx context.Context) ([]*model.Reel, error) {
	var reels []*model.Reel
	err := g.db.WithContext(ctx).Order("created_at desc").Find(&reels).Error
	return reels, err
}

func (g *GormStore) UpdateReel(ctx context.Context, reel *model.Reel) error {
	return g.db.WithContext(ctx).Save(reel).Error
}

func (g *GormStore) DeleteReel(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &model.Reel{}, id)
}

func (g *GormStore) CreateNewLaunch(ctx context.Context, item *model.NewLaunchItem) error {
	return g.db.WithContext(ctx).Create(item).Error
}

func (g *GormStore) GetNewLaunch(ctx context.Context, id string) (*model.NewLaunchItem, error) {
	var item model.NewLaunchItem
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (g *GormStore) GetNewLaunchBySlug(ctx context.Context, slug string) (*model.NewLaunchItem, error) {
	var item model.NewLaunchItem
	err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&item).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (g *GormStore) ListNewLaunches(ctx context.Context) ([]*model.NewLaunchItem, error) {
	var items []*model.NewLaunchItem
	err := g.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	return items, err
}

func (g *GormStore) UpdateNewLaunch(ctx context.Context, item *model.NewLaunchItem) error {
	return g.db.WithContext(ctx).Save(item).Error
}

func (g *GormStore) DeleteNewLaunch(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &model.NewLaunchItem{}, id)
}

func (g *GormStore) CreateHomeTour(ctx context.Context, tour *model.HomeTourItem) error {
	return g.db.WithContext(ctx).Create(tour).Error
}

func (g *GormStore) GetHomeTour(ctx context.Context, id string) (*model.HomeTourItem, error) {
	var tour model.HomeTourItem
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&tour).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &tour, nil
}

func (g *GormStore) GetHomeTourBySlug(ctx context.Context, slug string) (*model.HomeTourItem, error) {
	var tour model.HomeTourItem
	err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&tour).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &tour, nil
}

func (g *GormStore) ListHomeTours(ctx context.Context) ([]*model.HomeTourItem, error) {
	var tours []*model.HomeTourItem
	err := g.db.WithContext(ctx).Order("created_at desc").Find(&tours).Error
	return tours, err
}

func (g *GormStore) UpdateHomeTour(ctx context.Context, tour *model.HomeTourItem) error {
	return g.db.WithContext(ctx).Save(tour).Error
}

func (g *GormStore) DeleteHomeTour(ctx context.Context, id string) error {
	return g.deleteByID(ctx, &model.HomeTourItem{}, id)
}

func (g *GormStore) GetContent(ctx context.Context, collection model.Collection, id string) (model.ContentItem, error) {
	switch collection {
	case model.CollectionArticles:
		return g.GetArticle(ctx, id)
	case model.CollectionHomeTours:
		return g.GetHomeTour(ctx, id)
	case model.CollectionNewLaunches:
		return g.GetNewLaunch(ctx, id)
	case model.CollectionReels:
		return nil, ErrNoHeroSlot
	default:
		return nil, ErrUnknownCollection
	}
}

func (g *GormStore) ListHeroes(ctx context.Context, collection model.Collection) ([]model.ContentItem, error) {
	db := g.db.WithContext(ctx).Where("is_hero = ?", true).Order("id asc")

	switch collection {
	case model.CollectionArticles:
		var rows []*model.Article
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		return asContentItems(rows), nil
	case model.CollectionHomeTours:
		var rows []*model.HomeTourItem
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		return asContentItems(rows), nil
	case model.CollectionNewLaunches:
		var rows []*model.NewLaunchItem
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		return asContentItems(rows), nil
	case model.CollectionReels:
		return nil, ErrNoHeroSlot
	default:
		return nil, ErrUnknownCollection
	}
}

// SetHeroExclusive is the serialization point for the single-hero invariant.
// The target set and the bulk clear commit together or not at all, so no
// reader can observe zero or two heroes because of this call; when two calls
// race on the same collection the last committed one wins.
func (g *GormStore) SetHeroExclusive(ctx context.Context, collection model.Collection, id string) error {
	table, err := heroModel(collection)
	if err != nil {
		return err
	}

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(table).Where("id = ?", id).Update("is_hero", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		return tx.Model(table).Where("id <> ?", id).Update("is_hero", false).Error
	})
}

func (g *GormStore) ReadConfig(ctx context.Context) (map[string]any, error) {
	var setting model.HomepageSetting
	err := g.db.WithContext(ctx).Where("id = ?", model.HomepageSettingID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}

	doc := make(map[string]any)
	if setting.Data != "" {
		if err := json.Unmarshal([]byte(setting.Data), &doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (g *GormStore) WriteConfig(ctx context.Context, doc map[string]any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	setting := &model.HomepageSetting{
		ID:   model.HomepageSettingID,
		Data: string(data),
	}

	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(setting).Error
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}

// deleteByID destroys the row outright. A soft delete would keep the row in
// the unique slug index, blocking the slug from ever being reused.
func (g *GormStore) deleteByID(ctx context.Context, table any, id string) error {
	res := g.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(table)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func heroModel(collection model.Collection) (any, error) {
	switch collection {
	case model.CollectionArticles:
		return &model.Article{}, nil
	case model.CollectionHomeTours:
		return &model.HomeTourItem{}, nil
	case model.CollectionNewLaunches:
		return &model.NewLaunchItem{}, nil
	case model.CollectionReels:
		return nil, ErrNoHeroSlot
	default:
		return nil, ErrUnknownCollection
	}
}

func asContentItems[T model.ContentItem](rows []T) []model.ContentItem {
	items := make([]model.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row)
	}
	return items
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
