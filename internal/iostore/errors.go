package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

// CorpusReadError is returned when the corpus file cannot be read.
func CorpusReadError(path string, err error) error {
	msg := `Cannot read taxonomy corpus <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CorpusReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read corpus %s: %w", path, err),
	}
}

// CorpusEmptyError is returned when the corpus has no valid records.
func CorpusEmptyError(path string, blocks int) error {
	msg := `Taxonomy corpus <em>%s</em> has no valid records (%d blocks)

<em>How to fix:</em>
  1. Check that the file is in the EBI taxonomy flat file format
  2. Fetch it again with 'taxodb load --overwrite'`
	vars := []any{path, blocks}

	return &gn.Error{
		Code: errcode.CorpusEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no valid records in %s", path),
	}
}

// LoadCancelledError is returned when loading of the corpus is cancelled.
func LoadCancelledError(err error) error {
	return &gn.Error{
		Code: errcode.CorpusLoadCancelledError,
		Msg:  "Loading of taxonomy corpus was cancelled",
		Err:  fmt.Errorf("corpus load cancelled: %w", err),
	}
}
