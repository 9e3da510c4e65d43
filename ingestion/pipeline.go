package ingestion

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	searchdb "github.com/poiesic/searchdb"
	"github.com/poiesic/searchdb/index"
)

// Document is one unit of bulk ingestion.
type Document struct {
	Body  string
	Title string
}

// Pipeline ingests batches of documents into a Database. Text analysis
// fans out over a worker pool; index writes stay on the calling
// goroutine in submission order, so DocIDs match the batch order and the
// database keeps its single-writer contract.
type Pipeline struct {
	db     *searchdb.Database
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent analysis.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a bulk-ingestion pipeline over db.
func NewPipeline(db *searchdb.Database, opts ...Option) (*Pipeline, error) {
	if db == nil {
		return nil, ErrDatabaseRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		db:     db,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest analyzes and indexes a batch of documents. The returned DocIDs
// are in batch order and are strictly monotonic.
func (p *Pipeline) Ingest(docs []Document) []index.DocID {
	if len(docs) == 0 {
		return nil
	}

	terms := make([][]string, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		i := i
		if err := p.pool.Submit(func() {
			defer wg.Done()
			terms[i] = p.db.Pipeline().Process(docs[i].Body)
		}); err != nil {
			// Pool rejected the task; analyze inline.
			p.logger.Warn("analysis task rejected by pool", "err", err)
			terms[i] = p.db.Pipeline().Process(docs[i].Body)
			wg.Done()
		}
	}
	wg.Wait()

	ids := make([]index.DocID, len(docs))
	for i, doc := range docs {
		ids[i] = p.db.AddPreparedDocument(terms[i], doc.Body, doc.Title)
	}

	p.logger.Debug("ingested batch", "documents", len(docs))
	return ids
}

// Release shuts down the worker pool. The pipeline must not be used
// afterwards.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
