package taxon

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

// MissingIDError is returned for blocks without an ID line.
func MissingIDError(raw string) error {
	msg := `Record without <em>ID</em> field:
%s`
	vars := []any{raw}

	return &gn.Error{
		Code: errcode.RecordMissingIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("record has no ID field"),
	}
}

// BadFieldError is returned when a numeric field has a wrong value.
func BadFieldError(field, value, raw string) error {
	msg := `Record field <em>%s</em> has invalid value <em>%s</em>:
%s`
	vars := []any{field, value, raw}

	return &gn.Error{
		Code: errcode.RecordBadFieldError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("field %s has invalid value %q",
			field, value),
	}
}
