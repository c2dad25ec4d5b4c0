package ioserver

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

// ServerError is returned when the HTTP API cannot run.
func ServerError(port int, err error) error {
	msg := `HTTP API failed on port <em>%d</em>`
	vars := []any{port}

	return &gn.Error{
		Code: errcode.ServerError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("server on port %d: %w", port, err),
	}
}
