// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package badger provides a document store backed by an in-memory
// BadgerDB instance. The engine itself has no on-disk state; this
// backend exists for embedders that already operate a Badger-shaped
// storage stack and want document bodies kept out of the Go heap maps.
package badger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/searchdb/index"
	"github.com/poiesic/searchdb/storage"
)

// Store is a storage.DocumentStore over an in-memory BadgerDB.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ storage.DocumentStore = (*Store)(nil)

// badgerLoggerAdapter adapts slog.Logger to the badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open creates an in-memory Badger-backed document store.
func Open() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:     db,
		logger: slog.Default(),
	}, nil
}

func (s *Store) Put(id index.DocID, doc storage.StoredDoc) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(makeDocKey(id), storage.MarshalStoredDoc(doc))
	})
}

func (s *Store) Get(id index.DocID) (storage.StoredDoc, bool) {
	var doc storage.StoredDoc
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeDocKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var uerr error
			doc, uerr = storage.UnmarshalStoredDoc(val)
			return uerr
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.logger.Error("error reading stored document", "docID", uint64(id), "err", err)
		}
		return storage.StoredDoc{}, false
	}
	if !doc.Verify() {
		s.logger.Warn("stored document failed checksum verification", "docID", uint64(id))
		return storage.StoredDoc{}, false
	}
	return doc, true
}

func (s *Store) Clear() error {
	return s.db.DropAll()
}

func (s *Store) Close() error {
	return s.db.Close()
}
