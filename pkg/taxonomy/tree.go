package taxonomy

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gnames/taxodb/pkg/taxon"
)

// MethodBFS is the breadth-first family tree expansion, the only supported
// method.
const MethodBFS = "bfs"

// TreeOptions control family tree expansion.
type TreeOptions struct {
	// Limit is the number of edges after which expansion stops. Edges of
	// the round that crossed the limit are kept.
	Limit int

	// Method of traversal, empty string means MethodBFS.
	Method string
}

// Tree is a set of parent/child edges under a root taxon.
type Tree struct {
	Root         int          `json:"root" yaml:"root"`
	Limit        int          `json:"limit" yaml:"limit"`
	Edges        []taxon.Edge `json:"edges" yaml:"edges"`
	LimitReached bool         `json:"limitReached" yaml:"limitReached"`
}

// Children returns IDs of direct children of a taxon. The root sentinel
// is accepted as an ID and returns top-level taxa.
func Children(ctx context.Context, st Store, id int) ([]int, error) {
	if err := st.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	if _, ok := st.Record(id); !ok && id != taxon.RootSentinel {
		return nil, TaxonNotFoundError(id)
	}
	res := st.Children(id)
	if res == nil {
		res = []int{}
	}
	return res, nil
}

// FamilyTree expands descendants of root round by round. Edges are
// returned in the order they were discovered. Expansion stops when there
// are no more children, or when the number of edges exceeds the limit.
// There is no cycle detection, the limit is the only guard against
// circular parent references.
func FamilyTree(
	ctx context.Context,
	st Store,
	root int,
	opts TreeOptions,
) (Tree, error) {
	method := strings.ToLower(strings.TrimSpace(opts.Method))
	if method != "" && method != MethodBFS {
		return Tree{}, UnknownTraversalError(opts.Method)
	}
	if opts.Limit < 0 {
		return Tree{}, NegativeLimitError(opts.Limit)
	}

	if err := st.EnsureLoaded(ctx); err != nil {
		return Tree{}, err
	}
	if _, ok := st.Record(root); !ok && root != taxon.RootSentinel {
		return Tree{}, TaxonNotFoundError(root)
	}

	return bfsTree(ctx, st, root, opts.Limit)
}

func bfsTree(ctx context.Context, st Store, root, limit int) (Tree, error) {
	res := Tree{Root: root, Limit: limit, Edges: []taxon.Edge{}}

	frontier := []int{root}
	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return res, TreeCancelledError(root, ctx.Err())
		default:
		}

		var next []int
		for _, parentID := range frontier {
			for _, childID := range st.Children(parentID) {
				next = append(next, childID)
				res.Edges = append(res.Edges, taxon.Edge{
					ParentID: parentID,
					ChildID:  childID,
				})
			}
		}
		frontier = next

		if len(res.Edges) > limit {
			res.LimitReached = true
			slog.Warn("Reached limit number of family tree edges",
				"root", root,
				"limit", limit,
				"edges", len(res.Edges),
			)
			break
		}
	}

	return res, nil
}
