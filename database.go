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


package searchdb

import (
	"log/slog"

	"github.com/poiesic/searchdb/analysis"
	"github.com/poiesic/searchdb/index"
	"github.com/poiesic/searchdb/lzw"
	"github.com/poiesic/searchdb/search"
	"github.com/poiesic/searchdb/storage"
)

// Options configures a Database.
type Options struct {
	// Pipeline is passed verbatim to the text pipeline.
	Pipeline analysis.Options
	// StoreDocuments retains document bodies for later retrieval.
	StoreDocuments bool
	// CompressDocuments stores bodies LZW-compressed instead of raw.
	// Only meaningful when StoreDocuments is set.
	CompressDocuments bool
	// StoreTitles retains per-document titles.
	StoreTitles bool
}

// DefaultOptions returns the database defaults: the default pipeline,
// with documents stored compressed and titles kept.
func DefaultOptions() Options {
	return Options{
		Pipeline:          analysis.DefaultOptions(),
		StoreDocuments:    true,
		CompressDocuments: true,
		StoreTitles:       true,
	}
}

// Option configures dependencies of a Database.
type Option func(*Database) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(db *Database) error {
		if logger == nil {
			logger = slog.Default()
		}
		db.logger = logger
		return nil
	}
}

// WithDocumentStore replaces the default in-memory document store.
// The database takes ownership and closes the store on Close.
func WithDocumentStore(store storage.DocumentStore) Option {
	return func(db *Database) error {
		if store == nil {
			return ErrDocumentStoreRequired
		}
		db.store = store
		return nil
	}
}

// Database composes the text pipeline, inverted index, Boolean
// evaluator, TF-IDF ranker, LZW codec, and document store behind one
// facade.
//
// A Database has a single writer: AddDocument, AddDocumentTerms, and
// Clear mutate state; every other method is a pure reader and safe to
// call concurrently once writes have quiesced.
type Database struct {
	options  Options
	pipeline *analysis.Pipeline
	ix       *index.Index
	boolean  *search.Boolean
	ranker   *search.Ranker
	codec    *lzw.Codec
	store    storage.DocumentStore
	titles   map[index.DocID]string
	logger   *slog.Logger
}

// New creates a Database with the given options.
func New(options Options, opts ...Option) (*Database, error) {
	pipeline := analysis.NewPipeline(options.Pipeline)
	ix := index.New()

	db := &Database{
		options:  options,
		pipeline: pipeline,
		ix:       ix,
		boolean:  search.NewBoolean(ix, pipeline),
		ranker:   search.NewRanker(ix),
		codec:    lzw.New(),
		store:    storage.NewMemoryStore(),
		titles:   make(map[index.DocID]string),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Close releases the document store.
func (db *Database) Close() error {
	if err := db.store.Close(); err != nil {
		db.logger.Error("error closing document store", "err", err)
		return err
	}
	return nil
}

// AddDocument runs content through the pipeline, indexes the resulting
// terms, and (if configured) stores the body. Returns the new DocID.
func (db *Database) AddDocument(content string) index.DocID {
	return db.AddDocumentWithTitle(content, "")
}

// AddDocumentWithTitle is AddDocument with a title retained when title
// storage is enabled and the title is non-empty.
func (db *Database) AddDocumentWithTitle(content, title string) index.DocID {
	terms := db.pipeline.Process(content)
	docID := db.ix.AddDocument(terms)

	if db.options.StoreDocuments {
		db.storeDocument(docID, content, title)
	}
	if db.options.StoreTitles && title != "" {
		db.titles[docID] = title
	}
	return docID
}

// AddDocumentTerms indexes already-analyzed terms as a new document.
// The terms are used as given; no normalization is applied.
func (db *Database) AddDocumentTerms(terms []string) index.DocID {
	return db.ix.AddDocument(terms)
}

// AddDocumentTermsWithBody indexes already-analyzed terms and stores
// body tagged to the new DocID when document storage is enabled.
func (db *Database) AddDocumentTermsWithBody(terms []string, body string) index.DocID {
	return db.AddPreparedDocument(terms, body, "")
}

// AddPreparedDocument indexes already-analyzed terms and retains body
// and title according to the storage options. Used by bulk ingestion,
// where analysis runs ahead of the single index writer.
func (db *Database) AddPreparedDocument(terms []string, body, title string) index.DocID {
	docID := db.ix.AddDocument(terms)
	if db.options.StoreDocuments {
		db.storeDocument(docID, body, title)
	}
	if db.options.StoreTitles && title != "" {
		db.titles[docID] = title
	}
	return docID
}

// Search ranks documents against a free-form query by TF-IDF and
// returns at most topK results.
func (db *Database) Search(query string, topK int) []search.Result {
	return db.ranker.Search(db.pipeline.Process(query), topK)
}

// SearchTerms ranks documents against already-analyzed query terms.
func (db *Database) SearchTerms(terms []string, topK int) []search.Result {
	return db.ranker.Search(terms, topK)
}

// BooleanAnd returns documents containing every term. Terms are
// normalized through the pipeline.
func (db *Database) BooleanAnd(terms []string) index.PostingList {
	return db.boolean.And(terms)
}

// BooleanOr returns documents containing any term.
func (db *Database) BooleanOr(terms []string) index.PostingList {
	return db.boolean.Or(terms)
}

// BooleanAndNot returns documents containing every include term and no
// exclude term.
func (db *Database) BooleanAndNot(include, exclude []string) index.PostingList {
	return db.boolean.AndNot(include, exclude)
}

// BooleanQuery evaluates an AND/OR/NOT expression with parentheses.
func (db *Database) BooleanQuery(expr string) index.PostingList {
	return db.boolean.Query(expr)
}

// GetDocument returns the stored body for docID, or "" when document
// storage is off, the id is unknown, or the stored frame is corrupt.
func (db *Database) GetDocument(docID index.DocID) string {
	if !db.options.StoreDocuments {
		return ""
	}
	doc, ok := db.store.Get(docID)
	if !ok {
		return ""
	}
	if doc.Compressed {
		return string(db.codec.Decompress(doc.Body))
	}
	return string(doc.Body)
}

// GetTitle returns the stored title for docID, or "" when unknown or
// title storage is off.
func (db *Database) GetTitle(docID index.DocID) string {
	if !db.options.StoreTitles {
		return ""
	}
	return db.titles[docID]
}

// DocumentCount returns the number of indexed documents.
func (db *Database) DocumentCount() int {
	return db.ix.DocCount()
}

// TermCount returns the number of distinct indexed terms.
func (db *Database) TermCount() int {
	return db.ix.TermCount()
}

// Index exposes the inverted index for read-only iteration
// (AllTerms, AllDocIDs, posting lists).
func (db *Database) Index() *index.Index {
	return db.ix
}

// Pipeline exposes the text pipeline used at ingestion.
func (db *Database) Pipeline() *analysis.Pipeline {
	return db.pipeline
}

// Ranker exposes the TF-IDF ranker for per-term inspection.
func (db *Database) Ranker() *search.Ranker {
	return db.ranker
}

// Clear resets the database to empty. DocID assignment restarts at 0.
func (db *Database) Clear() {
	db.ix.Clear()
	db.titles = make(map[index.DocID]string)
	if err := db.store.Clear(); err != nil {
		db.logger.Error("error clearing document store", "err", err)
	}
}

func (db *Database) storeDocument(docID index.DocID, content, title string) {
	doc := storage.StoredDoc{Title: title}
	if db.options.CompressDocuments {
		doc.Body = db.codec.Compress([]byte(content))
		doc.Compressed = true
	} else {
		doc.Body = []byte(content)
	}
	doc.Seal()

	if err := db.store.Put(docID, doc); err != nil {
		db.logger.Error("error storing document", "docID", uint64(docID), "err", err)
	}
}
