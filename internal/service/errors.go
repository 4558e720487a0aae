package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id or slug no longer exists.
	ErrNotFound = errors.New("content not found")
	// ErrSlugTaken is returned on create or rename when another item of the
	// collection already owns the slug. Surfaced apart from generic failure
	// so the admin form can prompt for a different slug.
	ErrSlugTaken = errors.New("slug is already in use")
	// ErrNoHeroSlot is returned when a hero operation targets a collection
	// without a hero slot.
	ErrNoHeroSlot = errors.New("collection has no hero slot")
)

// ValidationError rejects a form submission before it reaches the store and
// names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
