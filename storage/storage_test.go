package storage

import (
	"testing"

	"github.com/poiesic/searchdb/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	doc := StoredDoc{Title: "greeting", Body: []byte("hello world")}
	doc.Seal()
	require.NoError(t, store.Put(index.DocID(0), doc))

	got, ok := store.Get(index.DocID(0))
	require.True(t, ok)
	assert.Equal(t, "greeting", got.Title)
	assert.Equal(t, []byte("hello world"), got.Body)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, ok := store.Get(index.DocID(7))
	assert.False(t, ok)
}

func TestMemoryStoreChecksumMismatch(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	doc := StoredDoc{Body: []byte("intact")}
	doc.Seal()
	doc.Body = []byte("tampered")
	require.NoError(t, store.Put(index.DocID(0), doc))

	_, ok := store.Get(index.DocID(0))
	assert.False(t, ok)
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	doc := StoredDoc{Body: []byte("x")}
	doc.Seal()
	require.NoError(t, store.Put(index.DocID(0), doc))
	require.NoError(t, store.Clear())

	_, ok := store.Get(index.DocID(0))
	assert.False(t, ok)
}

func TestChecksum(t *testing.T) {
	a := ChecksumOf([]byte("alpha"))
	b := ChecksumOf([]byte("beta"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, ChecksumOf([]byte("alpha")))
}

func TestStoredDocSerialization(t *testing.T) {
	doc := StoredDoc{
		Title:      "title",
		Body:       []byte{0x00, 0x01, 0xff, 'a'},
		Compressed: true,
	}
	doc.Seal()

	data := MarshalStoredDoc(doc)
	got, err := UnmarshalStoredDoc(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.True(t, got.Verify())
}

func TestStoredDocSerializationEmpty(t *testing.T) {
	var doc StoredDoc
	doc.Seal()

	got, err := UnmarshalStoredDoc(MarshalStoredDoc(doc))
	require.NoError(t, err)
	assert.Equal(t, doc.Checksum, got.Checksum)
	assert.Empty(t, got.Body)
	assert.False(t, got.Compressed)
}

func TestUnmarshalTruncated(t *testing.T) {
	doc := StoredDoc{Title: "t", Body: []byte("body")}
	doc.Seal()
	data := MarshalStoredDoc(doc)

	_, err := UnmarshalStoredDoc(data[:2])
	assert.Error(t, err)
}
