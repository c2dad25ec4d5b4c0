package ioformat

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

// UnknownFormatError is returned for unsupported output formats.
func UnknownFormatError(s string) error {
	msg := `Output format <em>%s</em> is not supported.
Supported formats: %s`
	vars := []any{s, strings.Join(formats, ", ")}

	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown output format %q", s),
	}
}

// EncodeError is returned when output cannot be written.
func EncodeError(f Format, err error) error {
	msg := `Cannot write output as <em>%s</em>`
	vars := []any{f.String()}

	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", f, err),
	}
}
