package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   string
	Name string
}

func (e entry) RecordID() string { return e.ID }

func TestAppend(t *testing.T) {
	original := []entry{{ID: "a"}}
	next := Append(original, entry{ID: "b"})

	assert.Len(t, next, 2)
	assert.Equal(t, "b", next[1].ID)
	assert.Len(t, original, 1, "input list must not be mutated")
}

func TestRemoveAt(t *testing.T) {
	list := []entry{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	next, err := RemoveAt(list, 1)
	require.NoError(t, err)
	assert.Equal(t, []entry{{ID: "a"}, {ID: "c"}}, next)
	assert.Len(t, list, 3)

	_, err = RemoveAt(list, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = RemoveAt(list, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRemoveAtMin_LastParagraphRefused(t *testing.T) {
	paragraphs := []string{"only one left"}

	next, err := RemoveAtMin(paragraphs, 0, 1)
	assert.ErrorIs(t, err, ErrMinLength)
	assert.Equal(t, paragraphs, next, "input is returned unchanged")

	paragraphs = []string{"first", "second"}
	next, err = RemoveAtMin(paragraphs, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, next)
}

func TestMoveAdjacent(t *testing.T) {
	list := []entry{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	tests := []struct {
		name string
		idx  int
		dir  Direction
		want []string
	}{
		{name: "up at top is a no-op", idx: 0, dir: Up, want: []string{"a", "b", "c"}},
		{name: "down at bottom is a no-op", idx: 2, dir: Down, want: []string{"a", "b", "c"}},
		{name: "up swaps with previous", idx: 1, dir: Up, want: []string{"b", "a", "c"}},
		{name: "down swaps with next", idx: 1, dir: Down, want: []string{"a", "c", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := MoveAdjacent(list, tt.idx, tt.dir)
			require.NoError(t, err)

			var got []string
			for _, e := range next {
				got = append(got, e.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MoveAdjacent(list, 5, Up)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReplaceAt(t *testing.T) {
	list := []entry{{ID: "a", Name: "one"}, {ID: "b", Name: "two"}}

	next, err := ReplaceAt(list, 1, func(e entry) entry {
		e.Name = "renamed"
		return e
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", next[1].Name)
	assert.Equal(t, "b", next[1].ID)
	assert.Equal(t, "two", list[1].Name, "input list must not be mutated")

	_, err = ReplaceAt(list, 0, func(e entry) entry {
		e.ID = "hijacked"
		return e
	})
	assert.ErrorIs(t, err, ErrIdentityChanged)

	_, err = ReplaceAt(list, 9, func(e entry) entry { return e })
	assert.ErrorIs(t, err, ErrOutOfRange)
}
