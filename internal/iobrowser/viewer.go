// Package iobrowser implements taxonomy.Viewer that opens taxon pages
// of UniProt in a web browser.
package iobrowser

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/pkg/browser"
)

// Option changes the default behavior of the viewer.
type Option func(*viewer)

// OptOpener sets a function that shows a URL to a user.
func OptOpener(fn func(url string) error) Option {
	return func(v *viewer) {
		v.open = fn
	}
}

type viewer struct {
	url    string
	client *http.Client
	open   func(url string) error
}

// New creates a Viewer for pages under cfg.Web.URL.
func New(cfg *config.Config, opts ...Option) taxonomy.Viewer {
	res := &viewer{
		url:    strings.TrimRight(cfg.Web.URL, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
		open:   browser.OpenURL,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// URL returns the address of a taxon page.
func (v *viewer) URL(id int) string {
	return v.url + "/" + strconv.Itoa(id)
}

// Open checks that the taxon page exists and shows it in a browser.
func (v *viewer) Open(ctx context.Context, id int) error {
	u := v.URL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return InvalidTaxonPageError(id, u, err)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return InvalidTaxonPageError(id, u, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return InvalidTaxonPageError(id, u, statusError(resp.StatusCode))
	}

	slog.Info("Opening taxon page", "id", id, "url", u)
	if err = v.open(u); err != nil {
		return BrowserError(u, err)
	}
	return nil
}
