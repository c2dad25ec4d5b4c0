// Package taxonomy derives lineages, children and family trees from a
// store of taxon records. It also declares interfaces of the store and of
// external collaborators that provide data for it.
//
// This is a pure package, all I/O is done by implementations of its
// interfaces in internal/io* packages.
package taxonomy

import (
	"context"
	"iter"

	"github.com/gnames/taxodb/pkg/taxon"
)

// Store keeps all records of a taxonomy corpus in memory.
//
// The store is empty until loaded. Load replaces the whole content of the
// store. Implementations must allow at most one load at a time, readers
// wait until an in-flight load finishes.
type Store interface {
	// Load reads the corpus and replaces the content of the store.
	// If overwrite is true, the corpus is fetched again from its origin,
	// otherwise a previously fetched corpus is reused.
	Load(ctx context.Context, overwrite bool) error

	// EnsureLoaded loads the store if it was never loaded.
	EnsureLoaded(ctx context.Context) error

	// Loaded returns true after a successful load.
	Loaded() bool

	// Len returns the number of records in the store.
	Len() int

	// Record returns a record by its ID.
	Record(id int) (taxon.Record, bool)

	// Children returns IDs of records which have the given parent ID,
	// in the order they appear in the corpus.
	Children(id int) []int

	// All iterates over all records in ascending order of their IDs.
	All() iter.Seq[taxon.Record]

	// Stats returns statistics of the last load.
	Stats() Stats
}

// Stats describes the result of a store load.
type Stats struct {
	// Blocks is the number of text blocks in the corpus.
	Blocks int `json:"blocks" yaml:"blocks"`

	// Records is the number of records in the store.
	Records int `json:"records" yaml:"records"`

	// Malformed is the number of blocks that could not be parsed.
	Malformed int `json:"malformed" yaml:"malformed"`

	// Duplicates is the number of blocks which IDs were seen before.
	Duplicates int `json:"duplicates" yaml:"duplicates"`

	// Roots is the number of records with the root sentinel as parent.
	Roots int `json:"roots" yaml:"roots"`

	// Seconds is the duration of the load.
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

// Fetcher provides the corpus text as a local file.
type Fetcher interface {
	// Fetch returns a path to the corpus file. A remote corpus is
	// downloaded if it is not cached yet, or if overwrite is true.
	Fetch(ctx context.Context, overwrite bool) (string, error)
}

// Lookuper queries a remote taxonomy service.
type Lookuper interface {
	// ByID returns a taxon by its identifier.
	ByID(ctx context.Context, id int) (taxon.Taxon, error)

	// ByName returns taxa which names match the pattern. The pattern may
	// contain SQL wildcards: '%' for any number of characters and '_' for
	// one character.
	ByName(ctx context.Context, pattern string) ([]taxon.Taxon, error)
}

// Viewer opens a web page of a taxon.
type Viewer interface {
	// URL returns the address of the taxon page.
	URL(id int) string

	// Open shows the taxon page in a browser.
	Open(ctx context.Context, id int) error
}
