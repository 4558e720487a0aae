package homepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_EmptyInput(t *testing.T) {
	assert.Equal(t, Default(), Merge(nil))
	assert.Equal(t, Default(), Merge(map[string]any{}))
}

func TestMerge_PartialSections(t *testing.T) {
	cfg := Merge(map[string]any{
		"sections": map[string]any{"hero": false},
	})

	assert.False(t, cfg.Sections[SectionHero])
	for key, want := range defaultSections() {
		if key == SectionHero {
			continue
		}
		assert.Equal(t, want, cfg.Sections[key], "section %s", key)
	}

	// the untouched parts come back fully populated
	assert.Equal(t, defaultTitles(), cfg.Titles)
	assert.Equal(t, defaultLimits(), cfg.Limits)
	assert.NotEmpty(t, cfg.Methodology)
	assert.NotEmpty(t, cfg.Nuggets)
	assert.Equal(t, defaultPodcast(), cfg.Podcast)
}

func TestMerge_Limits(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "kept", value: 3, want: 3},
		{name: "zero kept", value: 0, want: 0},
		{name: "clamped", value: 999, want: MaxLimit},
		{name: "float truncated", value: 7.0, want: 7},
		{name: "negative falls back", value: -2, want: defaultLimits()[SectionArticles]},
		{name: "garbage falls back", value: "ten", want: defaultLimits()[SectionArticles]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Merge(map[string]any{
				"limits": map[string]any{SectionArticles: tt.value},
			})
			assert.Equal(t, tt.want, cfg.Limits[SectionArticles])
		})
	}
}

func TestMerge_DropsUnknownKeys(t *testing.T) {
	cfg := Merge(map[string]any{
		"sections": map[string]any{"legacyBanner": true, "reels": false},
		"titles":   map[string]any{"legacyBanner": "Old"},
		"limits":   map[string]any{"legacyBanner": 9},
	})

	assert.NotContains(t, cfg.Sections, "legacyBanner")
	assert.NotContains(t, cfg.Titles, "legacyBanner")
	assert.NotContains(t, cfg.Limits, "legacyBanner")
	assert.False(t, cfg.Sections[SectionReels])

	assert.Len(t, cfg.Sections, len(defaultSections()))
	assert.Len(t, cfg.Titles, len(defaultTitles()))
	assert.Len(t, cfg.Limits, len(defaultLimits()))
}

func TestMerge_ListsAreAuthoritativeOnceEdited(t *testing.T) {
	cfg := Merge(map[string]any{
		"methodology": []any{
			map[string]any{"id": "m-1", "title": "Only one", "slug": "only-one"},
		},
	})
	require.Len(t, cfg.Methodology, 1)
	assert.Equal(t, "m-1", cfg.Methodology[0].ID)
	assert.Equal(t, "Only one", cfg.Methodology[0].Title)

	// an absent or empty list means never edited, the seed list applies
	cfg = Merge(map[string]any{"methodology": []any{}})
	assert.Equal(t, defaultMethodology(), cfg.Methodology)

	cfg = Merge(map[string]any{"nuggets": []any{}})
	assert.Equal(t, defaultNuggets(), cfg.Nuggets)
}

func TestMerge_PodcastKeyByKey(t *testing.T) {
	cfg := Merge(map[string]any{
		"podcast": map[string]any{"title": "Custom title"},
	})

	want := defaultPodcast()
	assert.Equal(t, "Custom title", cfg.Podcast.Title)
	assert.Equal(t, want.Label, cfg.Podcast.Label)
	assert.Equal(t, want.Description, cfg.Podcast.Description)
	assert.Equal(t, want.Thumbnail, cfg.Podcast.Thumbnail)
	assert.Equal(t, want.Slug, cfg.Podcast.Slug)
}

func TestMerge_Idempotent(t *testing.T) {
	inputs := []map[string]any{
		nil,
		{},
		{"sections": map[string]any{"hero": false, "junk": 1}},
		{"limits": map[string]any{SectionReels: 1000, SectionNuggets: "x"}},
		{
			"titles":  map[string]any{SectionArticles: "Reads"},
			"podcast": map[string]any{"label": "On air"},
			"nuggets": []any{map[string]any{"id": "n-9", "title": "Short"}},
		},
	}

	for _, input := range inputs {
		once := Merge(input)

		doc, err := once.Document()
		require.NoError(t, err)
		twice := Merge(doc)

		assert.Equal(t, once, twice)
	}

	doc, err := Default().Document()
	require.NoError(t, err)
	assert.Equal(t, Default(), Merge(doc))
}
