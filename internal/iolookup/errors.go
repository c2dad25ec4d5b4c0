package iolookup

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

// NotFoundError is returned when the service does not know the taxon.
func NotFoundError(query string) error {
	msg := `Remote taxonomy service has no taxa for <em>%s</em>`
	vars := []any{query}

	return &gn.Error{
		Code: errcode.LookupNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no taxa found for %q", query),
	}
}

// RequestError is returned when the service cannot be reached.
func RequestError(query string, err error) error {
	msg := `Cannot query remote taxonomy service for <em>%s</em>

<em>Possible causes:</em>
  - No network connection
  - Service is down or too slow

<em>How to fix:</em>
  1. Try again later
  2. Increase 'lookup.timeout' in config.yaml`
	vars := []any{query}

	return &gn.Error{
		Code: errcode.LookupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("lookup of %q failed: %w", query, err),
	}
}

// StatusError is returned for unexpected HTTP statuses.
func StatusError(query string, status int) error {
	msg := `Remote taxonomy service answered with status <em>%d</em> for <em>%s</em>`
	vars := []any{status, query}

	return &gn.Error{
		Code: errcode.LookupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("lookup of %q: status %d", query, status),
	}
}

// DecodeError is returned when the service answer cannot be decoded.
func DecodeError(query string, err error) error {
	msg := `Cannot decode remote taxonomy answer for <em>%s</em>`
	vars := []any{query}

	return &gn.Error{
		Code: errcode.LookupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode answer for %q: %w", query, err),
	}
}

// EmptyQueryError is returned for an empty name pattern.
func EmptyQueryError() error {
	return &gn.Error{
		Code: errcode.LookupError,
		Msg:  "Name pattern for remote lookup cannot be empty",
		Err:  fmt.Errorf("empty lookup pattern"),
	}
}
