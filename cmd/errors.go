package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

// BadIDError is returned when a taxon ID argument is not a number.
func BadIDError(s string) error {
	msg := "Taxon ID must be a non-negative integer, got <em>%s</em>"
	vars := []any{s}
	return &gn.Error{
		Code: errcode.ArgumentError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad taxon ID %q", s),
	}
}
