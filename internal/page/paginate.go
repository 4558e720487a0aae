// Package page implements the windowing shared by every list view, public and
// admin. It is a pure transform: the full item list goes in, one page plus
// the page-number controls come out.
package page

import "strings"

// Ellipsis marks an elided range in a page-number sequence.
const Ellipsis = -1

// Plain-listing thresholds: up to this many pages every number is shown, past
// it the sequence collapses to 1 ... neighbors ... last.
const (
	MaxPlainPublic = 5
	MaxPlainAdmin  = 7
)

// Predicate filters items; filters compose as a conjunction.
type Predicate[T any] func(T) bool

type Page[T any] struct {
	Items      []T
	Total      int // items left after filtering
	TotalPages int // never below 1, an empty result is page 1 of 1
	Page       int // the clamped page the Items window belongs to
	Numbers    []int
}

// Paginate filters items through every predicate in order, clamps the
// requested page into [1, totalPages] and returns that window. Callers must
// render Page, not the page they asked for, and must reset their requested
// page to 1 whenever a filter changes.
func Paginate[T any](items []T, filters []Predicate[T], pageSize, requested, maxPlain int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	filtered := items
	if len(filters) > 0 {
		filtered = make([]T, 0, len(items))
		for _, item := range items {
			if matchesAll(item, filters) {
				filtered = append(filtered, item)
			}
		}
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	current := requested
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := (current - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page[T]{
		Items:      filtered[start:end],
		Total:      len(filtered),
		TotalPages: totalPages,
		Page:       current,
		Numbers:    Window(totalPages, current, maxPlain),
	}
}

// Window builds the page-number display sequence: every page when totalPages
// fits the plain threshold, otherwise page 1, the last page, the immediate
// neighbors of current, and Ellipsis wherever consecutive listed numbers are
// more than one apart. E.g. [1 ... 4 5 6 ... 42].
func Window(totalPages, current, maxPlain int) []int {
	if totalPages <= maxPlain {
		numbers := make([]int, 0, totalPages)
		for n := 1; n <= totalPages; n++ {
			numbers = append(numbers, n)
		}
		return numbers
	}

	keep := func(n int) bool {
		return n == 1 || n == totalPages || (n >= current-1 && n <= current+1)
	}

	var numbers []int
	last := 0
	for n := 1; n <= totalPages; n++ {
		if !keep(n) {
			continue
		}
		if last != 0 && n-last > 1 {
			numbers = append(numbers, Ellipsis)
		}
		numbers = append(numbers, n)
		last = n
	}

	return numbers
}

func matchesAll[T any](item T, filters []Predicate[T]) bool {
	for _, filter := range filters {
		if !filter(item) {
			return false
		}
	}
	return true
}

// ByCategory keeps items whose category equals category exactly. An empty
// category keeps everything, the cleared state of the category tabs.
func ByCategory[T any](category string, get func(T) string) Predicate[T] {
	return func(item T) bool {
		return category == "" || get(item) == category
	}
}

// BySearch keeps items with the query as a case-insensitive substring of any
// searched field (title, slug, excerpt throughout the site). An empty query
// keeps everything.
func BySearch[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if query == "" {
			return true
		}
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}
		return false
	}
}
