package iobrowser

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

type statusError int

func (s statusError) Error() string {
	return fmt.Sprintf("status %d", int(s))
}

// InvalidTaxonPageError is returned when the taxon page is not available.
func InvalidTaxonPageError(id int, url string, err error) error {
	msg := `Page of taxon <em>%d</em> is not available at <em>%s</em>`
	vars := []any{id, url}

	return &gn.Error{
		Code: errcode.WebPageError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid taxon page %s: %w", url, err),
	}
}

// BrowserError is returned when a browser cannot be started.
func BrowserError(url string, err error) error {
	msg := `Cannot open <em>%s</em> in a web browser`
	vars := []any{url}

	return &gn.Error{
		Code: errcode.WebBrowserError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open browser: %w", err),
	}
}
