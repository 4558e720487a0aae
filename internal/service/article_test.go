package service

import (
	"context"
	"testing"

	"github.com/emrgen/habitat/internal/compress"
	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/ordered"
	"github.com/emrgen/habitat/internal/store"
	"github.com/emrgen/habitat/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleService(t *testing.T) *ArticleService {
	t.Helper()
	tester.Setup()

	return NewArticleService(compress.NewNop(), store.NewGormStore(tester.TestDB()), nil)
}

func TestArticleService_Create(t *testing.T) {
	client := newArticleService(t)

	tests := []struct {
		name    string
		input   ArticleInput
		wantErr string
	}{
		{
			name:  "valid article",
			input: ArticleInput{Slug: "five-storage-ideas", Title: "Five Storage Ideas", Category: "diy"},
		},
		{
			name:    "empty title",
			input:   ArticleInput{Slug: "no-title", Title: "   "},
			wantErr: "title",
		},
		{
			name:    "empty slug",
			input:   ArticleInput{Slug: "", Title: "No Slug"},
			wantErr: "slug",
		},
		{
			name:    "malformed slug",
			input:   ArticleInput{Slug: "Bad Slug!", Title: "Bad Slug"},
			wantErr: "slug",
		},
		{
			name:    "unknown category",
			input:   ArticleInput{Slug: "strange", Title: "Strange", Category: "gossip"},
			wantErr: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := client.Create(context.TODO(), tt.input)
			if tt.wantErr != "" {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErr, verr.Field)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, article.ID)
			assert.Equal(t, tt.input.Slug, article.Slug)

			got, err := client.GetBySlug(context.TODO(), tt.input.Slug)
			require.NoError(t, err)
			assert.Equal(t, article.ID, got.ID)
		})
	}
}

func TestArticleService_DuplicateSlug(t *testing.T) {
	client := newArticleService(t)

	_, err := client.Create(context.TODO(), ArticleInput{Slug: "taken", Title: "First"})
	require.NoError(t, err)

	_, err = client.Create(context.TODO(), ArticleInput{Slug: "taken", Title: "Second"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestArticleService_SlugFreedByDelete(t *testing.T) {
	client := newArticleService(t)

	first, err := client.Create(context.TODO(), ArticleInput{Slug: "reused", Title: "First Life"})
	require.NoError(t, err)
	require.NoError(t, client.Delete(context.TODO(), first.ID))

	// the slug is free again, the dead row must not hold the unique index
	second, err := client.Create(context.TODO(), ArticleInput{Slug: "reused", Title: "Second Life"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := client.GetBySlug(context.TODO(), "reused")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	// renaming onto a deleted slug works the same way
	third, err := client.Create(context.TODO(), ArticleInput{Slug: "temporary", Title: "Third"})
	require.NoError(t, err)
	require.NoError(t, client.Delete(context.TODO(), second.ID))

	renamed, err := client.Update(context.TODO(), third.ID, ArticleInput{Slug: "reused", Title: "Third"})
	require.NoError(t, err)
	assert.Equal(t, "reused", renamed.Slug)
}

func TestArticleService_RenameToTakenSlug(t *testing.T) {
	client := newArticleService(t)

	_, err := client.Create(context.TODO(), ArticleInput{Slug: "occupied", Title: "Occupant"})
	require.NoError(t, err)
	mover, err := client.Create(context.TODO(), ArticleInput{Slug: "mover", Title: "Mover"})
	require.NoError(t, err)

	_, err = client.Update(context.TODO(), mover.ID, ArticleInput{Slug: "occupied", Title: "Mover"})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// the refused rename left the row untouched
	got, err := client.Get(context.TODO(), mover.ID)
	require.NoError(t, err)
	assert.Equal(t, "mover", got.Slug)
}

func TestArticleService_Update(t *testing.T) {
	client := newArticleService(t)

	article, err := client.Create(context.TODO(), ArticleInput{Slug: "before", Title: "Before", Category: "design"})
	require.NoError(t, err)

	// toggles survive a full-field update
	_, err = client.SetFeatured(context.TODO(), article.ID, true)
	require.NoError(t, err)

	updated, err := client.Update(context.TODO(), article.ID, ArticleInput{
		Slug:     "after",
		Title:    "After",
		Excerpt:  "now with an excerpt",
		Category: "guides",
		ReadTime: "4 min read",
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Slug)
	assert.Equal(t, "After", updated.Title)
	assert.True(t, updated.Featured)

	_, err = client.Update(context.TODO(), "missing-id", ArticleInput{Slug: "x", Title: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleService_Delete(t *testing.T) {
	client := newArticleService(t)

	article, err := client.Create(context.TODO(), ArticleInput{Slug: "doomed", Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, client.Delete(context.TODO(), article.ID))
	_, err = client.Get(context.TODO(), article.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, client.Delete(context.TODO(), article.ID), ErrNotFound)
}

func TestArticleService_SectionEditing(t *testing.T) {
	client := newArticleService(t)

	article, err := client.Create(context.TODO(), ArticleInput{Slug: "renovation-diary", Title: "Renovation Diary"})
	require.NoError(t, err)

	sections, err := client.AddSection(context.TODO(), article.ID, model.Section{
		ID:         "s-demolition",
		Heading:    "Demolition",
		Paragraphs: []string{"First the hacking."},
	})
	require.NoError(t, err)
	sections, err = client.AddSection(context.TODO(), article.ID, model.Section{
		ID:         "s-carpentry",
		Heading:    "Carpentry",
		Paragraphs: []string{"Then the built-ins."},
	})
	require.NoError(t, err)
	require.Len(t, sections, 2)

	// duplicate client-generated ids are refused
	_, err = client.AddSection(context.TODO(), article.ID, model.Section{
		ID:         "s-carpentry",
		Paragraphs: []string{"again"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)

	// reorder, identity rides along
	sections, err = client.MoveSection(context.TODO(), article.ID, 1, ordered.Up)
	require.NoError(t, err)
	assert.Equal(t, "s-carpentry", sections[0].ID)
	assert.Equal(t, "s-demolition", sections[1].ID)

	heading := "Carpentry & Joinery"
	sections, err = client.PatchSection(context.TODO(), article.ID, 0, SectionPatch{Heading: &heading})
	require.NoError(t, err)
	assert.Equal(t, heading, sections[0].Heading)
	assert.Equal(t, "s-carpentry", sections[0].ID)

	sections, err = client.AddParagraph(context.TODO(), article.ID, 0, "Measure twice.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Then the built-ins.", "Measure twice."}, sections[0].Paragraphs)

	// edits survive a reload
	reloaded, err := client.Sections(context.TODO(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, sections, reloaded)
}

func TestArticleService_LastParagraphRefused(t *testing.T) {
	client := newArticleService(t)

	article, err := client.Create(context.TODO(), ArticleInput{Slug: "short", Title: "Short"})
	require.NoError(t, err)

	_, err = client.AddSection(context.TODO(), article.ID, model.Section{
		ID:         "s-only",
		Paragraphs: []string{"lonely paragraph"},
	})
	require.NoError(t, err)

	_, err = client.RemoveParagraph(context.TODO(), article.ID, 0, 0)
	assert.ErrorIs(t, err, ordered.ErrMinLength)

	// the refused removal left the stored list untouched
	sections, err := client.Sections(context.TODO(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"lonely paragraph"}, sections[0].Paragraphs)

	// sections cannot be created empty either
	_, err = client.AddSection(context.TODO(), article.ID, model.Section{ID: "s-empty"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "paragraphs", verr.Field)
}

func TestArticleService_SectionsSurviveCodecChange(t *testing.T) {
	tester.Setup()
	gormStore := store.NewGormStore(tester.TestDB())

	plain := NewArticleService(compress.NewNop(), gormStore, nil)
	article, err := plain.Create(context.TODO(), ArticleInput{Slug: "compressed", Title: "Compressed"})
	require.NoError(t, err)

	_, err = plain.AddSection(context.TODO(), article.ID, model.Section{
		ID:         "s-1",
		Paragraphs: []string{"written without compression"},
	})
	require.NoError(t, err)

	// a service configured with gzip still reads the nop-encoded row, and
	// rewrites it under its own codec
	zipped := NewArticleService(compress.NewGZip(), gormStore, nil)
	sections, err := zipped.AddParagraph(context.TODO(), article.ID, 0, "written with gzip")
	require.NoError(t, err)
	assert.Len(t, sections[0].Paragraphs, 2)

	row, err := gormStore.GetArticle(context.TODO(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, "gzip", row.Compression)

	sections, err = plain.Sections(context.TODO(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"written without compression", "written with gzip"}, sections[0].Paragraphs)
}
