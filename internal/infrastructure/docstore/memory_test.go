package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID    string   `json:"id"`
	Text  string   `json:"text"`
	Items []string `json:"items"`
}

func TestMemoryCollection_Lifecycle(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[note]()

	require.NoError(t, c.Insert(ctx, "a", note{ID: "a", Text: "first"}))
	require.NoError(t, c.Insert(ctx, "b", note{ID: "b", Text: "second"}))
	assert.Error(t, c.Insert(ctx, "a", note{ID: "a"}), "duplicate id")

	got, err := c.FindByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)

	_, err = c.FindByID(ctx, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.Replace(ctx, "a", note{ID: "a", Text: "changed"}))
	assert.ErrorIs(t, c.Replace(ctx, "zzz", note{}), ErrNotFound)

	all, err := c.Find(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "changed", all[0].Text, "insertion order is kept across replace")

	removed, err := c.Remove(ctx, "a")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = c.Remove(ctx, "a")
	require.NoError(t, err)
	assert.False(t, removed)

	all, err = c.Find(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []note{{ID: "b", Text: "second"}}, all)
}

func TestMemoryCollection_FindFilter(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[note]()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, c.Insert(ctx, id, note{ID: id, Text: "n" + id}))
	}

	got, err := c.Find(ctx, func(n note) bool { return n.ID != "2" })
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestMemoryCollection_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection[note]()
	doc := note{ID: "a", Items: []string{"x"}}
	require.NoError(t, c.Insert(ctx, "a", doc))

	doc.Items[0] = "mutated"
	got, err := c.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.Items)
}

func TestMemoryCollection_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewMemoryCollection[note]()
	_, err := c.Find(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
