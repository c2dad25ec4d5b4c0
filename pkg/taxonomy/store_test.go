package taxonomy_test

import (
	"context"
	"iter"
	"slices"

	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
)

// memStore is a Store that is loaded from a slice of records.
type memStore struct {
	data     []taxon.Record
	records  map[int]taxon.Record
	children map[int][]int
	loads    int
}

func newMemStore(recs ...taxon.Record) *memStore {
	return &memStore{data: recs}
}

func rec(id, parent int, name, rank string) taxon.Record {
	res := taxon.Record{ID: id, ParentID: &parent}
	if name != "" {
		res.ScientificName = &name
	}
	if rank != "" {
		res.Rank = &rank
	}
	return res
}

func (s *memStore) Load(_ context.Context, _ bool) error {
	s.loads++
	s.records = make(map[int]taxon.Record)
	s.children = make(map[int][]int)
	for _, v := range s.data {
		s.records[v.ID] = v
		if p, ok := v.Parent(); ok {
			s.children[p] = append(s.children[p], v.ID)
		}
	}
	return nil
}

func (s *memStore) EnsureLoaded(ctx context.Context) error {
	if s.Loaded() {
		return nil
	}
	return s.Load(ctx, false)
}

func (s *memStore) Loaded() bool { return s.records != nil }

func (s *memStore) Len() int { return len(s.records) }

func (s *memStore) Record(id int) (taxon.Record, bool) {
	res, ok := s.records[id]
	return res, ok
}

func (s *memStore) Children(id int) []int {
	return slices.Clone(s.children[id])
}

func (s *memStore) All() iter.Seq[taxon.Record] {
	return func(yield func(taxon.Record) bool) {
		ids := make([]int, 0, len(s.records))
		for k := range s.records {
			ids = append(ids, k)
		}
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(s.records[id]) {
				return
			}
		}
	}
}

func (s *memStore) Stats() taxonomy.Stats {
	return taxonomy.Stats{Records: len(s.records)}
}

// hominids builds a small real-life hierarchy.
func hominids() *memStore {
	return newMemStore(
		rec(1, 0, "root", "no rank"),
		rec(9604, 1, "Hominidae", "family"),
		rec(9605, 9604, "Homo", "genus"),
		rec(9606, 9605, "Homo sapiens", "species"),
		rec(63221, 9606, "Homo sapiens neanderthalensis", "subspecies"),
		rec(9596, 9604, "Pan", "genus"),
		rec(9598, 9596, "Pan troglodytes", "species"),
		rec(9597, 9596, "Pan paniscus", "species"),
	)
}
