package store_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fir-lang/tree-sitter-fir/store"
)

func TestMemorySaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	session := uuid.Must(uuid.NewV4())
	key := store.Key{Session: session, Path: "a.fir"}

	_, ok, err := m.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	want := store.Snapshot{Key: key, ByteOffset: 42, State: []byte{1, 2, 3}}
	require.NoError(t, m.Save(ctx, want))

	got, ok, err := m.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	keys, err := m.List(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []store.Key{key}, keys)

	require.NoError(t, m.Delete(ctx, key))
	_, ok, err = m.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySaveIsUpsert(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	key := store.Key{Session: uuid.Must(uuid.NewV4()), Path: "b.fir"}

	require.NoError(t, m.Save(ctx, store.Snapshot{Key: key, ByteOffset: 1, State: []byte{1}}))
	require.NoError(t, m.Save(ctx, store.Snapshot{Key: key, ByteOffset: 2, State: []byte{2}}))

	got, ok, err := m.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 2, got.ByteOffset)
}
