// Package ordered implements pure editing operations over identity-bearing
// ordered lists: article sections, paragraphs, methodology items, nuggets.
// Every operation returns a fresh slice and leaves the caller's slice alone,
// so concurrent readers of the prior list are unaffected.
package ordered

import "errors"

var (
	// ErrOutOfRange is returned when an index does not address an element.
	ErrOutOfRange = errors.New("index out of range")
	// ErrMinLength is returned when a removal would shrink the list below
	// its minimum allowed length.
	ErrMinLength = errors.New("list would shrink below its minimum length")
	// ErrIdentityChanged is returned when a patch tries to reassign a
	// record's id.
	ErrIdentityChanged = errors.New("record identity cannot be reassigned")
)

// Record is an element with a stable identity, assigned once at creation.
type Record interface {
	RecordID() string
}

type Direction int

const (
	Up Direction = iota
	Down
)

// Append returns a new list with rec at the end.
func Append[T any](list []T, rec T) []T {
	next := make([]T, 0, len(list)+1)
	next = append(next, list...)
	return append(next, rec)
}

// RemoveAt returns a new list without the element at idx.
func RemoveAt[T any](list []T, idx int) ([]T, error) {
	return RemoveAtMin(list, idx, 0)
}

// RemoveAtMin is RemoveAt with a minimum-length policy: if removal would
// leave fewer than min elements the input is returned unchanged along with
// ErrMinLength. Paragraph lists use min=1.
func RemoveAtMin[T any](list []T, idx, min int) ([]T, error) {
	if idx < 0 || idx >= len(list) {
		return list, ErrOutOfRange
	}
	if len(list)-1 < min {
		return list, ErrMinLength
	}

	next := make([]T, 0, len(list)-1)
	next = append(next, list[:idx]...)
	return append(next, list[idx+1:]...), nil
}

// MoveAdjacent swaps the element at idx with its neighbor in the given
// direction. Moves past either boundary are no-ops, not errors, matching the
// behavior of the up/down arrows in the admin forms.
func MoveAdjacent[T any](list []T, idx int, dir Direction) ([]T, error) {
	if idx < 0 || idx >= len(list) {
		return list, ErrOutOfRange
	}

	other := idx - 1
	if dir == Down {
		other = idx + 1
	}
	if other < 0 || other >= len(list) {
		return list, nil
	}

	next := make([]T, len(list))
	copy(next, list)
	next[idx], next[other] = next[other], next[idx]
	return next, nil
}

// ReplaceAt applies patch to a copy of the element at idx. The patch receives
// the current value and returns the replacement; the record's id must survive
// the patch, otherwise the input is returned unchanged with
// ErrIdentityChanged.
func ReplaceAt[T Record](list []T, idx int, patch func(T) T) ([]T, error) {
	if idx < 0 || idx >= len(list) {
		return list, ErrOutOfRange
	}

	patched := patch(list[idx])
	if patched.RecordID() != list[idx].RecordID() {
		return list, ErrIdentityChanged
	}

	next := make([]T, len(list))
	copy(next, list)
	next[idx] = patched
	return next, nil
}
