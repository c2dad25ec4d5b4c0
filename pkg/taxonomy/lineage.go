package taxonomy

import (
	"context"
	"slices"

	"github.com/gnames/taxodb/pkg/taxon"
)

// Lineage returns scientific names of the ancestry chain of a taxon, from
// the oldest ancestor to the taxon itself. The top-level taxon (the one
// with the root sentinel as parent) is not included, so a top-level taxon
// has an empty lineage.
func Lineage(ctx context.Context, st Store, id int) ([]string, error) {
	l, err := LineageAndRank(ctx, st, id)
	if err != nil {
		return nil, err
	}
	return l.Names(), nil
}

// LineageAndRank returns the same chain as Lineage, with ranks.
func LineageAndRank(
	ctx context.Context,
	st Store,
	id int,
) (taxon.Lineage, error) {
	if err := st.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return walkLineage(st, id)
}

// walkLineage goes up by parent links until it reaches a record which
// parent is the root sentinel. Every call works with its own accumulator.
func walkLineage(st Store, id int) (taxon.Lineage, error) {
	res := taxon.Lineage{}
	visited := make(map[int]struct{})

	currID := id
	for {
		if _, ok := visited[currID]; ok {
			return nil, CircularLineageError(id, currID)
		}
		visited[currID] = struct{}{}

		rec, ok := st.Record(currID)
		if !ok {
			if currID == id {
				return nil, TaxonNotFoundError(id)
			}
			return nil, AncestorNotFoundError(id, currID)
		}

		parentID, ok := rec.Parent()
		if !ok {
			return nil, MissingParentError(id, currID)
		}
		if parentID == taxon.RootSentinel {
			break
		}

		res = append(res, taxon.LineageItem{
			Name: rec.Name(),
			Rank: rec.RankName(),
		})
		currID = parentID
	}

	slices.Reverse(res)
	return res, nil
}
