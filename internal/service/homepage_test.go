package service

import (
	"context"
	"testing"

	"github.com/emrgen/habitat/internal/homepage"
	"github.com/emrgen/habitat/internal/ordered"
	"github.com/emrgen/habitat/internal/store"
	"github.com/emrgen/habitat/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHomepageService(t *testing.T) (*HomepageService, *store.GormStore) {
	t.Helper()
	tester.Setup()

	gormStore := store.NewGormStore(tester.TestDB())
	return NewHomepageService(gormStore, nil, nil), gormStore
}

func TestHomepageService_GetConfigNeverWritten(t *testing.T) {
	client, _ := newHomepageService(t)

	cfg, err := client.GetConfig(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, homepage.Default(), cfg)
}

func TestHomepageService_GetConfigMergesStaleDocument(t *testing.T) {
	client, gormStore := newHomepageService(t)

	// a fragment written by an older release
	err := gormStore.WriteConfig(context.TODO(), map[string]any{
		"sections": map[string]any{"hero": false, "legacyBanner": true},
		"limits":   map[string]any{"articles": 999},
	})
	require.NoError(t, err)

	cfg, err := client.GetConfig(context.TODO())
	require.NoError(t, err)

	assert.False(t, cfg.Sections[homepage.SectionHero])
	assert.NotContains(t, cfg.Sections, "legacyBanner")
	assert.Equal(t, homepage.MaxLimit, cfg.Limits[homepage.SectionArticles])
	assert.NotEmpty(t, cfg.Methodology)
	assert.NotEmpty(t, cfg.Nuggets)
	assert.Len(t, cfg.Titles, len(homepage.TitleKeys()))
}

func TestHomepageService_UpdateConfigPersistsMergedDocument(t *testing.T) {
	client, gormStore := newHomepageService(t)

	cfg, err := client.UpdateConfig(context.TODO(), map[string]any{
		"titles": map[string]any{homepage.SectionArticles: "Fresh Reads"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresh Reads", cfg.Titles[homepage.SectionArticles])

	// the stored document is schema-complete, not the fragment
	raw, err := gormStore.ReadConfig(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, cfg, homepage.Merge(raw))

	sections, ok := raw["sections"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, sections, len(homepage.SectionKeys()))
}

func TestHomepageService_Setters(t *testing.T) {
	client, _ := newHomepageService(t)

	cfg, err := client.SetSectionVisible(context.TODO(), homepage.SectionReels, false)
	require.NoError(t, err)
	assert.False(t, cfg.Sections[homepage.SectionReels])

	cfg, err = client.SetLimit(context.TODO(), homepage.SectionReels, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Limits[homepage.SectionReels])
	// the earlier edit is still there
	assert.False(t, cfg.Sections[homepage.SectionReels])

	_, err = client.SetSectionVisible(context.TODO(), "legacyBanner", true)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = client.SetLimit(context.TODO(), homepage.SectionReels, 51)
	assert.ErrorAs(t, err, &verr)

	_, err = client.SetLimit(context.TODO(), homepage.SectionReels, -1)
	assert.ErrorAs(t, err, &verr)

	_, err = client.SetTitle(context.TODO(), homepage.SectionHero, "Hero Title")
	assert.ErrorAs(t, err, &verr, "hero has no editable heading")

	cfg, err = client.SetPodcast(context.TODO(), homepage.PodcastBlock{
		Label: "On Air", Title: "New Season", Slug: "podcast-s2",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Season", cfg.Podcast.Title)
}

func TestHomepageService_NuggetEditing(t *testing.T) {
	client, _ := newHomepageService(t)

	seedLen := len(homepage.Default().Nuggets)

	cfg, err := client.AddNugget(context.TODO(), homepage.Nugget{
		Title: "Buy the worst house", Slug: "worst-house",
	})
	require.NoError(t, err)
	require.Len(t, cfg.Nuggets, seedLen+1)
	added := cfg.Nuggets[seedLen]
	assert.NotEmpty(t, added.ID, "ids are assigned at creation")

	cfg, err = client.MoveNugget(context.TODO(), seedLen, ordered.Up)
	require.NoError(t, err)
	assert.Equal(t, added.ID, cfg.Nuggets[seedLen-1].ID)

	title := "Buy the worst house on the best street"
	cfg, err = client.PatchNugget(context.TODO(), seedLen-1, NuggetPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, cfg.Nuggets[seedLen-1].Title)
	assert.Equal(t, added.ID, cfg.Nuggets[seedLen-1].ID, "identity survives patching")

	cfg, err = client.RemoveNugget(context.TODO(), seedLen-1)
	require.NoError(t, err)
	assert.Len(t, cfg.Nuggets, seedLen)

	_, err = client.RemoveNugget(context.TODO(), 99)
	assert.ErrorIs(t, err, ordered.ErrOutOfRange)
}

func TestHomepageService_MethodologyEditing(t *testing.T) {
	client, _ := newHomepageService(t)

	seedLen := len(homepage.Default().Methodology)

	cfg, err := client.AddMethodology(context.TODO(), homepage.MethodologyItem{
		ID: "m-compare", Title: "Compare", Slug: "how-we-compare",
	})
	require.NoError(t, err)
	require.Len(t, cfg.Methodology, seedLen+1)

	// edits persist across service calls
	cfg, err = client.GetConfig(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "m-compare", cfg.Methodology[seedLen].ID)

	desc := "Side by side, against the market"
	cfg, err = client.PatchMethodology(context.TODO(), seedLen, MethodologyPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, cfg.Methodology[seedLen].Description)

	cfg, err = client.MoveMethodology(context.TODO(), 0, ordered.Up)
	require.NoError(t, err)
	assert.Equal(t, homepage.Default().Methodology[0].ID, cfg.Methodology[0].ID, "boundary move is a no-op")
}
