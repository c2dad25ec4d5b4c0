package taxonomy

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

// TaxonNotFoundError is returned when a queried taxon is not in the store.
func TaxonNotFoundError(id int) error {
	msg := `Taxon <em>%d</em> is not found

<em>Possible causes:</em>
  - Wrong taxon ID
  - Incomplete corpus

<em>How to fix:</em>
  1. Check the ID with 'taxodb lookup'
  2. Reload the corpus with 'taxodb load --overwrite'`
	vars := []any{id}

	return &gn.Error{
		Code: errcode.TaxonNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("taxon %d not found", id),
	}
}

// AncestorNotFoundError is returned when a parent reference in a lineage
// points to a taxon that is not in the store.
func AncestorNotFoundError(id, ancestor int) error {
	msg := `Ancestor <em>%d</em> of taxon <em>%d</em> is not found`
	vars := []any{ancestor, id}

	return &gn.Error{
		Code: errcode.TaxonNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("ancestor %d of taxon %d not found",
			ancestor, id),
	}
}

// MissingParentError is returned when a record in a lineage has no
// PARENT ID field.
func MissingParentError(id, broken int) error {
	msg := `Taxon <em>%d</em> has no parent ID, lineage of <em>%d</em> is broken`
	vars := []any{broken, id}

	return &gn.Error{
		Code: errcode.TaxonMissingParentError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("taxon %d has no parent ID", broken),
	}
}

// CircularLineageError is returned when parent references form a cycle.
func CircularLineageError(id, repeated int) error {
	msg := `Lineage of taxon <em>%d</em> is circular at <em>%d</em>`
	vars := []any{id, repeated}

	return &gn.Error{
		Code: errcode.TaxonCircularLineageError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("circular lineage of %d at %d",
			id, repeated),
	}
}

// UnknownTraversalError is returned for unsupported family tree methods.
func UnknownTraversalError(method string) error {
	msg := `Family tree method <em>%s</em> is not supported.
Supported methods:
  * %s`
	vars := []any{method, MethodBFS}

	return &gn.Error{
		Code: errcode.TreeMethodError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown traversal method %q", method),
	}
}

// NegativeLimitError is returned when a family tree limit is negative.
func NegativeLimitError(limit int) error {
	msg := `Family tree limit cannot be negative: <em>%d</em>`
	vars := []any{limit}

	return &gn.Error{
		Code: errcode.TreeLimitError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("negative tree limit %d", limit),
	}
}

// TreeCancelledError is returned when family tree expansion is cancelled.
func TreeCancelledError(root int, err error) error {
	msg := `Family tree expansion of <em>%d</em> was cancelled`
	vars := []any{root}

	return &gn.Error{
		Code: errcode.TreeCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("tree expansion cancelled: %w", err),
	}
}

// EmptyPatternError is returned when a name search has no pattern.
func EmptyPatternError() error {
	return &gn.Error{
		Code: errcode.SearchPatternError,
		Msg:  "Search pattern cannot be empty",
		Err:  fmt.Errorf("empty search pattern"),
	}
}
