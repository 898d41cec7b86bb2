package source

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const eventData = `{"id":1,"name":"created"}
{"id":2,"name":"updated"}

{"id":3,"name":"deleted"}
`

func newEventsFile(t *testing.T) *JSONLines[event] {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "events.jsonl", []byte(eventData), 0o644))
	return NewJSONLines[event](fs, "events.jsonl")
}

func TestJSONLines(t *testing.T) {
	ctx := context.Background()

	t.Run("count skips blank lines", func(t *testing.T) {
		src := newEventsFile(t)
		n, err := src.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("fetch range", func(t *testing.T) {
		src := newEventsFile(t)

		items, err := src.FetchRange(ctx, 1, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, event{ID: 2, Name: "updated"}, items[0])
		assert.Equal(t, event{ID: 3, Name: "deleted"}, items[1])
	})

	t.Run("fetch range short at the end", func(t *testing.T) {
		src := newEventsFile(t)

		items, err := src.FetchRange(ctx, 2, 5)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, event{ID: 3, Name: "deleted"}, items[0])
	})

	t.Run("fetch past the end is empty", func(t *testing.T) {
		src := newEventsFile(t)

		items, err := src.FetchRange(ctx, 3, 5)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("index of with default equality", func(t *testing.T) {
		src := newEventsFile(t)

		index, err := src.IndexOf(ctx, event{ID: 2, Name: "updated"})
		require.NoError(t, err)
		assert.Equal(t, 1, index)

		index, err = src.IndexOf(ctx, event{ID: 9, Name: "missing"})
		require.NoError(t, err)
		assert.Equal(t, -1, index)
	})

	t.Run("index of with custom equality", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "events.jsonl", []byte(eventData), 0o644))
		src := NewJSONLines(fs, "events.jsonl",
			WithEqualFunc(func(a, b event) bool { return a.ID == b.ID }))

		index, err := src.IndexOf(ctx, event{ID: 3})
		require.NoError(t, err)
		assert.Equal(t, 2, index)
	})

	t.Run("missing file", func(t *testing.T) {
		src := NewJSONLines[event](memfs.New(), "absent.jsonl")
		_, err := src.Count(ctx)
		assert.Error(t, err)
	})

	t.Run("malformed record", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "bad.jsonl", []byte("{\"id\":1}\nnot json\n"), 0o644))
		src := NewJSONLines[event](fs, "bad.jsonl")

		_, err := src.FetchRange(ctx, 0, 10)
		assert.ErrorContains(t, err, "decoding record 1")
	})

	t.Run("appended records are observed", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "events.jsonl", []byte(eventData), 0o644))
		src := NewJSONLines[event](fs, "events.jsonl")

		n, err := src.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		grown := eventData + `{"id":4,"name":"archived"}` + "\n"
		require.NoError(t, util.WriteFile(fs, "events.jsonl", []byte(grown), 0o644))

		n, err = src.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})
}
