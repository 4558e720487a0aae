package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/emrgen/habitat/internal/cache"
	"github.com/emrgen/habitat/internal/compress"
	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/store"
	"github.com/emrgen/habitat/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeroService_Designate(t *testing.T) {
	tester.Setup()
	gormStore := store.NewGormStore(tester.TestDB())

	articles := NewArticleService(compress.NewNop(), gormStore, nil)
	heroes := NewHeroService(gormStore, nil, nil)

	a, err := articles.Create(context.TODO(), ArticleInput{Slug: "article-a", Title: "Article A"})
	require.NoError(t, err)
	b, err := articles.Create(context.TODO(), ArticleInput{Slug: "article-b", Title: "Article B"})
	require.NoError(t, err)

	// no hero until one is designated
	hero, err := heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	assert.Nil(t, hero)

	_, err = heroes.Designate(context.TODO(), model.CollectionArticles, a.ID)
	require.NoError(t, err)

	// designating B demotes A in the same operation
	_, err = heroes.Designate(context.TODO(), model.CollectionArticles, b.ID)
	require.NoError(t, err)

	hero, err = heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, b.ID, hero.ItemID())

	all, err := articles.List(context.TODO())
	require.NoError(t, err)
	heroCount := 0
	for _, article := range all {
		if article.IsHero {
			heroCount++
			assert.Equal(t, b.ID, article.ID)
		}
	}
	assert.Equal(t, 1, heroCount)
}

func TestHeroService_DesignateUnknownItem(t *testing.T) {
	tester.Setup()
	heroes := NewHeroService(store.NewGormStore(tester.TestDB()), nil, nil)

	_, err := heroes.Designate(context.TODO(), model.CollectionArticles, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = heroes.Designate(context.TODO(), model.CollectionReels, "any")
	assert.ErrorIs(t, err, ErrNoHeroSlot)
}

func TestHeroService_CollectionsAreIndependent(t *testing.T) {
	tester.Setup()
	gormStore := store.NewGormStore(tester.TestDB())

	articles := NewArticleService(compress.NewNop(), gormStore, nil)
	tours := NewHomeTourService(gormStore, nil)
	heroes := NewHeroService(gormStore, nil, nil)

	article, err := articles.Create(context.TODO(), ArticleInput{Slug: "the-article", Title: "The Article"})
	require.NoError(t, err)
	tour, err := tours.Create(context.TODO(), HomeTourInput{Slug: "the-tour", Title: "The Tour"})
	require.NoError(t, err)

	_, err = heroes.Designate(context.TODO(), model.CollectionArticles, article.ID)
	require.NoError(t, err)
	_, err = heroes.Designate(context.TODO(), model.CollectionHomeTours, tour.ID)
	require.NoError(t, err)

	articleHero, err := heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	tourHero, err := heroes.CurrentHero(context.TODO(), model.CollectionHomeTours)
	require.NoError(t, err)

	assert.Equal(t, article.ID, articleHero.ItemID())
	assert.Equal(t, tour.ID, tourHero.ItemID())
}

func TestHeroService_DeletingHeroClearsSlot(t *testing.T) {
	tester.Setup()
	gormStore := store.NewGormStore(tester.TestDB())

	articles := NewArticleService(compress.NewNop(), gormStore, nil)
	heroes := NewHeroService(gormStore, nil, nil)

	a, err := articles.Create(context.TODO(), ArticleInput{Slug: "hero-article", Title: "Hero"})
	require.NoError(t, err)
	_, err = articles.Create(context.TODO(), ArticleInput{Slug: "bystander", Title: "Bystander"})
	require.NoError(t, err)

	_, err = heroes.Designate(context.TODO(), model.CollectionArticles, a.ID)
	require.NoError(t, err)

	require.NoError(t, articles.Delete(context.TODO(), a.ID))

	// nothing is promoted implicitly
	hero, err := heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	assert.Nil(t, hero)
}

func TestHeroService_CachedHero(t *testing.T) {
	tester.Setup()
	mr := miniredis.RunT(t)

	gormStore := store.NewGormStore(tester.TestDB())
	articles := NewArticleService(compress.NewNop(), gormStore, nil)
	heroes := NewHeroService(gormStore, cache.NewRedis(mr.Addr()), nil)

	a, err := articles.Create(context.TODO(), ArticleInput{Slug: "cached-hero", Title: "Cached Hero"})
	require.NoError(t, err)

	_, err = heroes.Designate(context.TODO(), model.CollectionArticles, a.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists(cache.HeroKey("articles")))

	hero, err := heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	assert.Equal(t, a.ID, hero.ItemID())

	// an evicted slot is refilled from the store on the next read
	mr.FlushAll()
	hero, err = heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, a.ID, hero.ItemID())

	stored, err := mr.Get(cache.HeroKey("articles"))
	require.NoError(t, err)
	assert.Equal(t, `"`+a.ID+`"`, stored)
}

func TestHeroService_StaleCachedHero(t *testing.T) {
	tester.Setup()
	mr := miniredis.RunT(t)

	gormStore := store.NewGormStore(tester.TestDB())
	articles := NewArticleService(compress.NewNop(), gormStore, nil)
	heroes := NewHeroService(gormStore, cache.NewRedis(mr.Addr()), nil)

	a, err := articles.Create(context.TODO(), ArticleInput{Slug: "real-hero", Title: "Real Hero"})
	require.NoError(t, err)
	_, err = heroes.Designate(context.TODO(), model.CollectionArticles, a.ID)
	require.NoError(t, err)

	// the slot points at an id that no longer exists
	require.NoError(t, mr.Set(cache.HeroKey("articles"), `"long-gone"`))

	hero, err := heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, a.ID, hero.ItemID())

	stored, err := mr.Get(cache.HeroKey("articles"))
	require.NoError(t, err)
	assert.Equal(t, `"`+a.ID+`"`, stored)

	// a slot pointing at a demoted row is not served either
	b, err := articles.Create(context.TODO(), ArticleInput{Slug: "pretender", Title: "Pretender"})
	require.NoError(t, err)
	require.NoError(t, mr.Set(cache.HeroKey("articles"), `"`+b.ID+`"`))

	hero, err = heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, a.ID, hero.ItemID())
}

func TestHeroService_CorruptDoubleHero(t *testing.T) {
	tester.Setup()
	gormStore := store.NewGormStore(tester.TestDB())

	articles := NewArticleService(compress.NewNop(), gormStore, nil)
	heroes := NewHeroService(gormStore, nil, nil)

	a, err := articles.Create(context.TODO(), ArticleInput{Slug: "first", Title: "First"})
	require.NoError(t, err)
	b, err := articles.Create(context.TODO(), ArticleInput{Slug: "second", Title: "Second"})
	require.NoError(t, err)

	// simulate historical corruption: two flagged rows behind the store's back
	db := tester.TestDB()
	require.NoError(t, db.Model(&model.Article{}).Where("id = ?", a.ID).Update("is_hero", true).Error)
	require.NoError(t, db.Model(&model.Article{}).Where("id = ?", b.ID).Update("is_hero", true).Error)

	hero, err := heroes.CurrentHero(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	require.NotNil(t, hero)

	lowest := a.ID
	if b.ID < lowest {
		lowest = b.ID
	}
	assert.Equal(t, lowest, hero.ItemID())

	// a fresh designate heals the collection
	_, err = heroes.Designate(context.TODO(), model.CollectionArticles, a.ID)
	require.NoError(t, err)

	flagged, err := gormStore.ListHeroes(context.TODO(), model.CollectionArticles)
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, a.ID, flagged[0].ItemID())
}
