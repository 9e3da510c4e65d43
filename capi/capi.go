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


// Package capi exposes the search database through opaque integer
// handles, the shape expected by FFI bridges (cgo exports, WASM hosts,
// scripting-language bindings). Handle operations mirror the embedding
// API but never return errors: an unknown handle or id yields empty
// results, and the codec helpers exchange frames as lowercase hex.
package capi

import (
	"sync"

	searchdb "github.com/poiesic/searchdb"
	"github.com/poiesic/searchdb/index"
	"github.com/poiesic/searchdb/lzw"
)

// Handle identifies an open database. The zero Handle is never valid.
type Handle int64

// SearchResult is a ranked hit as crossed over an FFI boundary.
type SearchResult struct {
	DocID uint64
	Score float64
}

var (
	mu         sync.Mutex
	nextHandle Handle = 1
	databases         = make(map[Handle]*searchdb.Database)
)

// Create opens a database and returns its handle. The two flags mirror
// the FFI surface: stemming on/off and compressed document storage
// on/off; everything else uses the defaults.
func Create(useStemming, useCompression bool) Handle {
	options := searchdb.DefaultOptions()
	options.Pipeline.UseStemming = useStemming
	options.CompressDocuments = useCompression

	db, err := searchdb.New(options)
	if err != nil {
		return 0
	}

	mu.Lock()
	defer mu.Unlock()
	h := nextHandle
	nextHandle++
	databases[h] = db
	return h
}

// Destroy closes and forgets a handle. Unknown handles are ignored.
func Destroy(h Handle) {
	mu.Lock()
	db, ok := databases[h]
	delete(databases, h)
	mu.Unlock()
	if ok {
		db.Close()
	}
}

func lookup(h Handle) (*searchdb.Database, bool) {
	mu.Lock()
	defer mu.Unlock()
	db, ok := databases[h]
	return db, ok
}

// AddDocument indexes content with an optional title and returns the
// new document id, or 0 for an unknown handle.
func AddDocument(h Handle, content, title string) uint64 {
	db, ok := lookup(h)
	if !ok {
		return 0
	}
	return uint64(db.AddDocumentWithTitle(content, title))
}

// GetDocument returns the stored body, or "".
func GetDocument(h Handle, docID uint64) string {
	db, ok := lookup(h)
	if !ok {
		return ""
	}
	return db.GetDocument(index.DocID(docID))
}

// GetTitle returns the stored title, or "".
func GetTitle(h Handle, docID uint64) string {
	db, ok := lookup(h)
	if !ok {
		return ""
	}
	return db.GetTitle(index.DocID(docID))
}

// DocumentCount returns the number of indexed documents.
func DocumentCount(h Handle) uint64 {
	db, ok := lookup(h)
	if !ok {
		return 0
	}
	return uint64(db.DocumentCount())
}

// SearchTFIDF ranks documents against a free-form query.
func SearchTFIDF(h Handle, query string, topK int) []SearchResult {
	db, ok := lookup(h)
	if !ok {
		return nil
	}
	hits := db.Search(query, topK)
	out := make([]SearchResult, len(hits))
	for i, hit := range hits {
		out[i] = SearchResult{DocID: uint64(hit.DocID), Score: hit.Score}
	}
	return out
}

// BooleanQuery evaluates a Boolean expression and returns matching ids.
func BooleanQuery(h Handle, expr string) []uint64 {
	db, ok := lookup(h)
	if !ok {
		return nil
	}
	pl := db.BooleanQuery(expr)
	out := make([]uint64, len(pl))
	for i, id := range pl {
		out[i] = uint64(id)
	}
	return out
}

// CompressText LZW-compresses text and returns the frame as lowercase
// hexadecimal.
func CompressText(text string) string {
	return lzw.EncodeHex(lzw.New().Compress([]byte(text)))
}

// DecompressText decodes a hex-encoded LZW frame back to text. Odd
// length, non-hex digits, and malformed frames all yield "".
func DecompressText(hexFrame string) string {
	frame := lzw.DecodeHex(hexFrame)
	if frame == nil {
		return ""
	}
	return string(lzw.New().Decompress(frame))
}
