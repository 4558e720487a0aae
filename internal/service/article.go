package service

import (
	"context"
	"errors"

	"github.com/emrgen/habitat/internal/compress"
	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/ordered"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/emrgen/habitat/internal/store"
	"github.com/google/uuid"
)

// ArticleInput carries the mutable fields of an article form. Featured and
// hero state are not part of it, they change through their own toggles.
type ArticleInput struct {
	Slug     string
	Title    string
	Excerpt  string
	Image    string
	Category string
	ReadTime string
}

// SectionPatch updates section fields in place; nil fields are left alone.
type SectionPatch struct {
	Heading *string
	Image   *string
}

// NewArticleService creates a new ArticleService.
func NewArticleService(codec compress.Compress, store store.Store, queue queue.ContentQueue) *ArticleService {
	return &ArticleService{
		codec: codec,
		store: store,
		queue: queue,
	}
}

// ArticleService manages the articles collection, including the ordered
// section list persisted on each article row.
type ArticleService struct {
	codec compress.Compress
	store store.Store
	queue queue.ContentQueue
}

func (s *ArticleService) Create(ctx context.Context, input ArticleInput) (*model.Article, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	slug, err := validateSlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(model.CollectionArticles, input.Category); err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, s.store, slug); err != nil {
		return nil, err
	}

	sections, err := s.encodeSections([]model.Section{})
	if err != nil {
		return nil, err
	}

	article := &model.Article{
		ID:          uuid.New().String(),
		Slug:        slug,
		Title:       title,
		Excerpt:     input.Excerpt,
		Image:       input.Image,
		Category:    input.Category,
		ReadTime:    input.ReadTime,
		Sections:    sections,
		Compression: s.codec.Name(),
	}

	if err := s.store.CreateArticle(ctx, article); err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionArticles, article.ID, "create")
	return article, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.store.GetArticle(ctx, id)
	return article, asServiceErr(err)
}

func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	article, err := s.store.GetArticleBySlug(ctx, slug)
	return article, asServiceErr(err)
}

func (s *ArticleService) List(ctx context.Context) ([]*model.Article, error) {
	return s.store.ListArticles(ctx)
}

// Update replaces the mutable fields of an article. Featured and hero flags
// and the section list survive untouched.
func (s *ArticleService) Update(ctx context.Context, id string, input ArticleInput) (*model.Article, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	slug, err := validateSlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(model.CollectionArticles, input.Category); err != nil {
		return nil, err
	}

	var article *model.Article
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		article, err = tx.GetArticle(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		if slug != article.Slug {
			if err := s.checkSlugFree(ctx, tx, slug); err != nil {
				return err
			}
		}

		article.Slug = slug
		article.Title = title
		article.Excerpt = input.Excerpt
		article.Image = input.Image
		article.Category = input.Category
		article.ReadTime = input.ReadTime

		return tx.UpdateArticle(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionArticles, id, "update")
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteArticle(ctx, id); err != nil {
		return asServiceErr(err)
	}

	// deleting the hero leaves the collection heroless, nothing is promoted
	publishChange(ctx, s.queue, model.CollectionArticles, id, "delete")
	return nil
}

func (s *ArticleService) SetFeatured(ctx context.Context, id string, featured bool) (*model.Article, error) {
	var article *model.Article
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		article, err = tx.GetArticle(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		article.Featured = featured
		return tx.UpdateArticle(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionArticles, id, "update")
	return article, nil
}

// Sections returns the decoded section list of an article.
func (s *ArticleService) Sections(ctx context.Context, id string) ([]model.Section, error) {
	article, err := s.store.GetArticle(ctx, id)
	if err != nil {
		return nil, asServiceErr(err)
	}

	return decodeSections(article)
}

// AddSection appends a section. The section id is client-generated; an empty
// id gets one assigned. A section starts with at least one paragraph.
func (s *ArticleService) AddSection(ctx context.Context, id string, section model.Section) ([]model.Section, error) {
	if len(section.Paragraphs) == 0 {
		return nil, invalidField("paragraphs", "a section needs at least one paragraph")
	}
	if section.ID == "" {
		section.ID = uuid.New().String()
	}

	return s.editSections(ctx, id, func(sections []model.Section) ([]model.Section, error) {
		for _, existing := range sections {
			if existing.ID == section.ID {
				return nil, invalidField("id", "duplicate section id")
			}
		}
		return ordered.Append(sections, section), nil
	})
}

func (s *ArticleService) RemoveSection(ctx context.Context, id string, index int) ([]model.Section, error) {
	return s.editSections(ctx, id, func(sections []model.Section) ([]model.Section, error) {
		return ordered.RemoveAt(sections, index)
	})
}

func (s *ArticleService) MoveSection(ctx context.Context, id string, index int, dir ordered.Direction) ([]model.Section, error) {
	return s.editSections(ctx, id, func(sections []model.Section) ([]model.Section, error) {
		return ordered.MoveAdjacent(sections, index, dir)
	})
}

func (s *ArticleService) PatchSection(ctx context.Context, id string, index int, patch SectionPatch) ([]model.Section, error) {
	return s.editSections(ctx, id, func(sections []model.Section) ([]model.Section, error) {
		return ordered.ReplaceAt(sections, index, func(section model.Section) model.Section {
			if patch.Heading != nil {
				section.Heading = *patch.Heading
			}
			if patch.Image != nil {
				section.Image = *patch.Image
			}
			return section
		})
	})
}

func (s *ArticleService) AddParagraph(ctx context.Context, id string, section int, text string) ([]model.Section, error) {
	return s.editSections(ctx, id, func(sections []model.Section) ([]model.Section, error) {
		return ordered.ReplaceAt(sections, section, func(sec model.Section) model.Section {
			sec.Paragraphs = ordered.Append(sec.Paragraphs, text)
			return sec
		})
	})
}

// RemoveParagraph refuses to remove the last paragraph of a section.
func (s *ArticleService) RemoveParagraph(ctx context.Context, id string, section, index int) ([]model.Section, error) {
	return s.editSections(ctx, id, func(sections []model.Section) ([]model.Section, error) {
		var editErr error
		next, err := ordered.ReplaceAt(sections, section, func(sec model.Section) model.Section {
			sec.Paragraphs, editErr = ordered.RemoveAtMin(sec.Paragraphs, index, 1)
			return sec
		})
		if err != nil {
			return nil, err
		}
		if editErr != nil {
			return nil, editErr
		}
		return next, nil
	})
}

func (s *ArticleService) ReplaceParagraph(ctx context.Context, id string, section, index int, text string) ([]model.Section, error) {
	return s.editSections(ctx, id, func(sections []model.Section) ([]model.Section, error) {
		var editErr error
		next, err := ordered.ReplaceAt(sections, section, func(sec model.Section) model.Section {
			if index < 0 || index >= len(sec.Paragraphs) {
				editErr = ordered.ErrOutOfRange
				return sec
			}
			paragraphs := make([]string, len(sec.Paragraphs))
			copy(paragraphs, sec.Paragraphs)
			paragraphs[index] = text
			sec.Paragraphs = paragraphs
			return sec
		})
		if err != nil {
			return nil, err
		}
		if editErr != nil {
			return nil, editErr
		}
		return next, nil
	})
}

func (s *ArticleService) MoveParagraph(ctx context.Context, id string, section, index int, dir ordered.Direction) ([]model.Section, error) {
	return s.editSections(ctx, id, func(sections []model.Section) ([]model.Section, error) {
		var editErr error
		next, err := ordered.ReplaceAt(sections, section, func(sec model.Section) model.Section {
			sec.Paragraphs, editErr = ordered.MoveAdjacent(sec.Paragraphs, index, dir)
			return sec
		})
		if err != nil {
			return nil, err
		}
		if editErr != nil {
			return nil, editErr
		}
		return next, nil
	})
}

// editSections runs one read-transform-write cycle over an article's section
// list inside a store transaction, so concurrent edits cannot lose updates.
func (s *ArticleService) editSections(ctx context.Context, id string, edit func([]model.Section) ([]model.Section, error)) ([]model.Section, error) {
	var result []model.Section

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		article, err := tx.GetArticle(ctx, id)
		if err != nil {
			return asServiceErr(err)
		}

		sections, err := decodeSections(article)
		if err != nil {
			return err
		}

		next, err := edit(sections)
		if err != nil {
			return err
		}

		encoded, err := s.encodeSections(next)
		if err != nil {
			return err
		}

		article.Sections = encoded
		article.Compression = s.codec.Name()
		result = next

		return tx.UpdateArticle(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	publishChange(ctx, s.queue, model.CollectionArticles, id, "update")
	return result, nil
}

func (s *ArticleService) encodeSections(sections []model.Section) (string, error) {
	data, err := model.EncodeSections(sections)
	if err != nil {
		return "", err
	}

	encoded, err := s.codec.Encode(data)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// decodeSections honors the codec recorded on the row, which may differ from
// the service's configured codec for rows written under an older setup.
func decodeSections(article *model.Article) ([]model.Section, error) {
	codec, err := compress.ForName(article.Compression)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decode([]byte(article.Sections))
	if err != nil {
		return nil, err
	}

	return model.DecodeSections(data)
}

// checkSlugFree queries through the handle the caller is writing with, so a
// rename inside a transaction checks against that transaction's view.
func (s *ArticleService) checkSlugFree(ctx context.Context, tx store.Store, slug string) error {
	_, err := tx.GetArticleBySlug(ctx, slug)
	if err == nil {
		return ErrSlugTaken
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func asServiceErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, store.ErrNoHeroSlot) {
		return ErrNoHeroSlot
	}
	return err
}
