package page

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Title    string
	Slug     string
	Category string
}

func testItems(n int) []item {
	items := make([]item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, item{
			Title:    fmt.Sprintf("Article %d", i),
			Slug:     fmt.Sprintf("article-%d", i),
			Category: []string{"design", "diy"}[i%2],
		})
	}
	return items
}

func TestPaginate_Window(t *testing.T) {
	// 23 articles at 9 per page is 3 pages, all listed
	result := Paginate(testItems(23), nil, 9, 1, MaxPlainPublic)

	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 1, result.Page)
	assert.Len(t, result.Items, 9)
	assert.Equal(t, []int{1, 2, 3}, result.Numbers)

	// the last page holds the remainder
	result = Paginate(testItems(23), nil, 9, 3, MaxPlainPublic)
	assert.Len(t, result.Items, 5)
}

func TestPaginate_EmptyResultIsPageOneOfOne(t *testing.T) {
	none := ByCategory("condo", func(i item) string { return i.Category })
	result := Paginate(testItems(23), []Predicate[item]{none}, 9, 1, MaxPlainPublic)

	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 1, result.Page)
	assert.Empty(t, result.Items)
	assert.Equal(t, []int{1}, result.Numbers)
}

func TestPaginate_ClampsRequestedPage(t *testing.T) {
	items := testItems(23)

	for _, requested := range []int{-5, 0, 1, 2, 3, 4, 100} {
		result := Paginate(items, nil, 9, requested, MaxPlainPublic)
		assert.GreaterOrEqual(t, result.Page, 1)
		assert.LessOrEqual(t, result.Page, result.TotalPages)
		assert.LessOrEqual(t, len(result.Items), 9)
		assert.NotEmpty(t, result.Items)
	}
}

func TestPaginate_ConjunctionOfFilters(t *testing.T) {
	filters := []Predicate[item]{
		ByCategory("design", func(i item) string { return i.Category }),
		BySearch("article 1", func(i item) []string { return []string{i.Title, i.Slug} }),
	}

	result := Paginate(testItems(23), filters, 9, 1, MaxPlainPublic)
	for _, it := range result.Items {
		assert.Equal(t, "design", it.Category)
		assert.Contains(t, it.Slug, "article-1")
	}
	assert.NotEmpty(t, result.Items)
}

func TestBySearch_CaseInsensitive(t *testing.T) {
	match := BySearch("ARTICLE 7", func(i item) []string { return []string{i.Title} })
	assert.True(t, match(item{Title: "article 7"}))
	assert.False(t, match(item{Title: "article 8"}))

	everything := BySearch("  ", func(i item) []string { return []string{i.Title} })
	assert.True(t, everything(item{Title: "anything"}))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		current    int
		maxPlain   int
		want       []int
	}{
		{name: "single page", totalPages: 1, current: 1, maxPlain: MaxPlainPublic, want: []int{1}},
		{name: "all plain at threshold", totalPages: 5, current: 3, maxPlain: MaxPlainPublic, want: []int{1, 2, 3, 4, 5}},
		{name: "admin threshold is wider", totalPages: 7, current: 4, maxPlain: MaxPlainAdmin, want: []int{1, 2, 3, 4, 5, 6, 7}},
		{name: "middle window", totalPages: 42, current: 5, maxPlain: MaxPlainPublic, want: []int{1, Ellipsis, 4, 5, 6, Ellipsis, 42}},
		{name: "window near the start", totalPages: 42, current: 2, maxPlain: MaxPlainPublic, want: []int{1, 2, 3, Ellipsis, 42}},
		{name: "window near the end", totalPages: 42, current: 41, maxPlain: MaxPlainPublic, want: []int{1, Ellipsis, 40, 41, 42}},
		{name: "single elided page still gets a marker", totalPages: 6, current: 3, maxPlain: MaxPlainPublic, want: []int{1, 2, 3, 4, Ellipsis, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.totalPages, tt.current, tt.maxPlain))
		})
	}
}
