package memory

import (
	"context"
	"testing"

	"itemstore/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Create(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	it, err := store.Create(ctx, item.Draft{Name: "widget", Description: "a widget"})

	require.NoError(t, err)
	assert.Equal(t, "1", it.ID)
	assert.Equal(t, "widget", it.Name)
	assert.Equal(t, "a widget", it.Description)
	assert.False(t, it.CreatedAt.IsZero())
	assert.Equal(t, it.CreatedAt, it.UpdatedAt)
}

// Identifiers must stay unique for the process lifetime, even after
// records are deleted.
func TestStore_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		it, err := store.Create(ctx, item.Draft{Name: "widget"})
		require.NoError(t, err)
		assert.False(t, seen[it.ID], "id %s reused", it.ID)
		seen[it.ID] = true

		require.NoError(t, store.Delete(ctx, it.ID))
	}
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	created, err := store.Create(ctx, item.Draft{Name: "widget", Description: "a widget"})
	require.NoError(t, err)

	t.Run("round-trip returns equivalent record", func(t *testing.T) {
		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := store.Get(ctx, "999")
		assert.ErrorIs(t, err, item.ErrNotFound)
	})

	t.Run("returned record is a snapshot", func(t *testing.T) {
		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)

		got.Name = "mutated"

		again, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "widget", again.Name)
	})
}

func TestStore_List_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	for _, name := range []string{"cherry", "apple", "banana"} {
		_, err := store.Create(ctx, item.Draft{Name: name})
		require.NoError(t, err)
	}

	items, err := store.List(ctx)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "cherry", items[0].Name)
	assert.Equal(t, "apple", items[1].Name)
	assert.Equal(t, "banana", items[2].Name)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial merge leaves omitted fields untouched", func(t *testing.T) {
		store := NewStore()
		created, err := store.Create(ctx, item.Draft{Name: "widget", Description: "a widget"})
		require.NoError(t, err)

		name := "renamed"
		updated, err := store.Update(ctx, created.ID, item.Patch{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, "a widget", updated.Description)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("explicit empty description is applied", func(t *testing.T) {
		store := NewStore()
		created, err := store.Create(ctx, item.Draft{Name: "widget", Description: "a widget"})
		require.NoError(t, err)

		empty := ""
		updated, err := store.Update(ctx, created.ID, item.Patch{Description: &empty})

		require.NoError(t, err)
		assert.Equal(t, "", updated.Description)
		assert.Equal(t, "widget", updated.Name)
	})

	t.Run("updatedAt strictly increases across updates", func(t *testing.T) {
		store := NewStore()
		created, err := store.Create(ctx, item.Draft{Name: "widget"})
		require.NoError(t, err)

		name := "renamed"
		prev := created.UpdatedAt
		for i := 0; i < 3; i++ {
			updated, err := store.Update(ctx, created.ID, item.Patch{Name: &name})
			require.NoError(t, err)
			assert.True(t, updated.UpdatedAt.After(prev), "updatedAt did not increase")
			prev = updated.UpdatedAt
		}
	})

	t.Run("missing id", func(t *testing.T) {
		store := NewStore()
		name := "renamed"
		_, err := store.Update(ctx, "999", item.Patch{Name: &name})
		assert.ErrorIs(t, err, item.ErrNotFound)
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	created, err := store.Create(ctx, item.Draft{Name: "widget"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, item.ErrNotFound)

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Repeated delete is NotFound, never a silent success.
	assert.ErrorIs(t, store.Delete(ctx, created.ID), item.ErrNotFound)
}
