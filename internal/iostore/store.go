// Package iostore implements taxonomy.Store that keeps records of the
// taxonomy flat file in memory.
// This is an impure I/O package that reads the corpus file provided by
// a taxonomy.Fetcher.
package iostore

import (
	"context"
	"iter"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
)

// iostore implements the taxonomy.Store interface.
//
// Maps are never modified after they are published, a load creates new
// ones and swaps them in under the write lock.
type iostore struct {
	cfg     *config.Config
	fetcher taxonomy.Fetcher

	// loadMu allows only one load at a time. EnsureLoaded waits on it,
	// so queries block while a load is in flight.
	loadMu sync.Mutex

	mu       sync.RWMutex
	loaded   bool
	records  map[int]taxon.Record
	children map[int][]int
	ids      []int
	stats    taxonomy.Stats
}

// New creates an empty store. The corpus is obtained from the fetcher
// when the store is loaded.
func New(cfg *config.Config, fetcher taxonomy.Fetcher) taxonomy.Store {
	return &iostore{cfg: cfg, fetcher: fetcher}
}

// Load fetches and parses the corpus, replacing the content of the store.
func (s *iostore) Load(ctx context.Context, overwrite bool) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	return s.load(ctx, overwrite)
}

// EnsureLoaded loads the store unless it was loaded before.
func (s *iostore) EnsureLoaded(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.Loaded() {
		return nil
	}
	return s.load(ctx, false)
}

func (s *iostore) load(ctx context.Context, overwrite bool) error {
	startTime := time.Now()

	path, err := s.fetcher.Fetch(ctx, overwrite)
	if err != nil {
		return err
	}
	slog.Info("Loading taxonomy corpus", "path", path, "overwrite", overwrite)

	f, err := os.Open(path)
	if err != nil {
		return CorpusReadError(path, err)
	}
	defer f.Close()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	var bar *pb.ProgressBar
	if s.cfg.WithProgress {
		bar = newProgressBar(size, "parsing ")
	}

	c, err := parseCorpus(ctx, f, s.cfg.JobsNumber, bar)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if ctx.Err() != nil {
			return LoadCancelledError(err)
		}
		return CorpusReadError(path, err)
	}

	if len(c.records) == 0 {
		return CorpusEmptyError(path, c.stats.Blocks)
	}

	c.stats.Seconds = time.Since(startTime).Seconds()

	s.mu.Lock()
	s.records = c.records
	s.children = c.children
	s.ids = c.ids
	s.stats = c.stats
	s.loaded = true
	s.mu.Unlock()

	slog.Info("Taxonomy corpus loaded",
		"records", c.stats.Records,
		"blocks", c.stats.Blocks,
		"malformed", c.stats.Malformed,
		"duplicates", c.stats.Duplicates,
		"roots", c.stats.Roots,
		"duration", gnfmt.TimeString(c.stats.Seconds),
	)
	if c.stats.Malformed > 0 {
		slog.Warn("Some records were skipped",
			"malformed", humanize.Comma(int64(c.stats.Malformed)))
	}
	return nil
}

// Loaded returns true after a successful load.
func (s *iostore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Len returns the number of records.
func (s *iostore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Record returns a record by its ID.
func (s *iostore) Record(id int) (taxon.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.records[id]
	return res, ok
}

// Children returns IDs of the children of a taxon in corpus order.
func (s *iostore) Children(id int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.children[id])
}

// All iterates over records of the current load in ascending ID order.
// A load that happens during iteration does not affect it.
func (s *iostore) All() iter.Seq[taxon.Record] {
	s.mu.RLock()
	records, ids := s.records, s.ids
	s.mu.RUnlock()

	return func(yield func(taxon.Record) bool) {
		for _, id := range ids {
			if !yield(records[id]) {
				return
			}
		}
	}
}

// Stats returns statistics of the last load.
func (s *iostore) Stats() taxonomy.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
