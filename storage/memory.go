package storage

import (
	"sync"

	"github.com/poiesic/searchdb/index"
)

// MemoryStore is the default in-process document store.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[index.DocID]StoredDoc
}

var _ DocumentStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[index.DocID]StoredDoc)}
}

func (s *MemoryStore) Put(id index.DocID, doc StoredDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = doc
	return nil
}

func (s *MemoryStore) Get(id index.DocID) (StoredDoc, bool) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok || !doc.Verify() {
		return StoredDoc{}, false
	}
	return doc, true
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[index.DocID]StoredDoc)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
