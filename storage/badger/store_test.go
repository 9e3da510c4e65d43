package badger

import (
	"testing"

	"github.com/poiesic/searchdb/index"
	"github.com/poiesic/searchdb/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutGet(t *testing.T) {
	store := newStore(t)

	doc := storage.StoredDoc{Title: "t", Body: []byte("compressed bytes"), Compressed: true}
	doc.Seal()
	require.NoError(t, store.Put(index.DocID(3), doc))

	got, ok := store.Get(index.DocID(3))
	require.True(t, ok)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Body, got.Body)
	assert.True(t, got.Compressed)
}

func TestGetUnknown(t *testing.T) {
	store := newStore(t)

	_, ok := store.Get(index.DocID(99))
	assert.False(t, ok)
}

func TestChecksumRejected(t *testing.T) {
	store := newStore(t)

	doc := storage.StoredDoc{Body: []byte("body")}
	doc.Seal()
	doc.Body = []byte("mutated")
	require.NoError(t, store.Put(index.DocID(0), doc))

	_, ok := store.Get(index.DocID(0))
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	store := newStore(t)

	doc := storage.StoredDoc{Body: []byte("x")}
	doc.Seal()
	require.NoError(t, store.Put(index.DocID(0), doc))
	require.NoError(t, store.Clear())

	_, ok := store.Get(index.DocID(0))
	assert.False(t, ok)
}

func TestOverwrite(t *testing.T) {
	store := newStore(t)

	first := storage.StoredDoc{Body: []byte("first")}
	first.Seal()
	second := storage.StoredDoc{Body: []byte("second")}
	second.Seal()

	require.NoError(t, store.Put(index.DocID(0), first))
	require.NoError(t, store.Put(index.DocID(0), second))

	got, ok := store.Get(index.DocID(0))
	require.True(t, ok)
	assert.Equal(t, []byte("second"), got.Body)
}
