package service

import (
	"regexp"
	"strings"

	"github.com/emrgen/habitat/internal/model"
)

// slugs are lower-case alphanumeric runs joined by single hyphens
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", invalidField("title", "must not be empty")
	}
	return title, nil
}

func validateSlug(slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", invalidField("slug", "must not be empty")
	}
	if !slugPattern.MatchString(slug) {
		return "", invalidField("slug", "must be lower-case letters, digits and hyphens")
	}
	return slug, nil
}

func validateCategory(collection model.Collection, category string) error {
	if !model.ValidCategory(collection, category) {
		return invalidField("category", "unknown category for "+string(collection))
	}
	return nil
}
