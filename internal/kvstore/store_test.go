package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "app.db"), "household_app")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get(ctx, "table:households")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, store.Set(ctx, "table:households", `[{"id":"h1"}]`))

			value, ok, err := store.Get(ctx, "table:households")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `[{"id":"h1"}]`, value)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "k", "a"))
			require.NoError(t, store.Set(ctx, "k", "b"))

			value, ok, err := store.Get(ctx, "k")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "b", value)
		})
	}
}

func TestStoreRemoveAndKeys(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "table:a", "1"))
			require.NoError(t, store.Set(ctx, "table:b", "2"))
			require.NoError(t, store.Remove(ctx, "table:a"))

			keys, err := store.Keys(ctx)
			require.NoError(t, err)
			require.ElementsMatch(t, []string{"table:b"}, keys)

			require.NoError(t, store.Clear(ctx))
			keys, err = store.Keys(ctx)
			require.NoError(t, err)
			require.Empty(t, keys)
		})
	}
}

func TestSQLiteNamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shared.db")

	first, err := OpenSQLite(path, "app_one")
	require.NoError(t, err)
	defer first.Close()

	second, err := OpenSQLite(path, "app_two")
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.Set(ctx, "k", "one"))
	require.NoError(t, second.Set(ctx, "k", "two"))

	value, ok, err := first.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "one", value)

	keys, err := second.Keys(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"k"}, keys)
}
