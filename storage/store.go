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


package storage

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/searchdb/index"
)

// StoredDoc is a document body as persisted by a store, together with
// its optional title. Body holds either raw or LZW-compressed bytes,
// distinguished by Compressed; the store does not interpret it.
type StoredDoc struct {
	Title      string
	Body       []byte
	Compressed bool
	Checksum   uint64
}

// ChecksumOf computes the 64-bit BLAKE2b digest of a document body.
func ChecksumOf(body []byte) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(body)
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

// Seal fills in the checksum for the current body.
func (d *StoredDoc) Seal() {
	d.Checksum = ChecksumOf(d.Body)
}

// Verify reports whether the body still matches its checksum.
func (d *StoredDoc) Verify() bool {
	return d.Checksum == ChecksumOf(d.Body)
}

// DocumentStore persists document bodies and titles by DocID.
// Implementations must allow concurrent readers; writes come from a
// single writer at a time.
type DocumentStore interface {
	// Put stores doc under id, replacing any previous entry.
	Put(id index.DocID, doc StoredDoc) error

	// Get retrieves the document stored under id. The second result is
	// false when the id is unknown or the stored entry fails checksum
	// verification.
	Get(id index.DocID) (StoredDoc, bool)

	// Clear removes all entries.
	Clear() error

	// Close releases the store's resources.
	Close() error
}
