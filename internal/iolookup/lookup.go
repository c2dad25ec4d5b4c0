// Package iolookup implements taxonomy.Lookuper with the taxonomy
// endpoints of the Ensembl REST service.
package iolookup

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
)

type lookup struct {
	url    string
	client *http.Client
	enc    gnfmt.GNjson
}

// New creates a Lookuper for the service at cfg.Lookup.URL.
func New(cfg *config.Config) taxonomy.Lookuper {
	timeout := time.Duration(cfg.Lookup.Timeout) * time.Second
	return &lookup{
		url:    strings.TrimRight(cfg.Lookup.URL, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// ByID returns a taxon by its NCBI taxonomy identifier.
func (l *lookup) ByID(ctx context.Context, id int) (taxon.Taxon, error) {
	var res taxon.Taxon
	query := strconv.Itoa(id)

	body, err := l.get(ctx, "/taxonomy/id/", query)
	if err != nil {
		return res, err
	}

	var et ensemblTaxon
	if err = l.enc.Decode(body, &et); err != nil {
		return res, DecodeError(query, err)
	}
	return et.toTaxon(), nil
}

// ByName returns taxa which names match the pattern. SQL wildcards
// are passed to the service as they are.
func (l *lookup) ByName(
	ctx context.Context,
	pattern string,
) ([]taxon.Taxon, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, EmptyQueryError()
	}

	body, err := l.get(ctx, "/taxonomy/name/", pattern)
	if err != nil {
		return nil, err
	}

	var ets []ensemblTaxon
	if err = l.enc.Decode(body, &ets); err != nil {
		return nil, DecodeError(pattern, err)
	}

	res := make([]taxon.Taxon, len(ets))
	for i := range ets {
		res[i] = ets[i].toTaxon()
	}
	return res, nil
}

func (l *lookup) get(
	ctx context.Context,
	endpoint, query string,
) ([]byte, error) {
	u := l.url + endpoint + url.PathEscape(query) +
		"?content-type=application/json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, RequestError(query, err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Remote taxonomy lookup", "url", u)
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, RequestError(query, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusNotFound:
		return nil, NotFoundError(query)
	case resp.StatusCode != http.StatusOK:
		return nil, StatusError(query, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(query, err)
	}
	return body, nil
}
