package ioserver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnames/gnfmt"
	"github.com/gnames/taxodb/internal/iocorpus"
	"github.com/gnames/taxodb/internal/ioserver"
	"github.com/gnames/taxodb/internal/iostore"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*httptest.Server, taxonomy.Store) {
	cfg := config.New()
	cfg.WithProgress = false
	cfg.Corpus.URL = "../../testdata/taxonomy.dat"
	cfg.Tree.Limit = 100
	st := iostore.New(cfg, iocorpus.New(cfg))
	ts := httptest.NewServer(ioserver.New(cfg, st).Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func get(t *testing.T, ts *httptest.Server, path string, v any) int {
	resp, err := http.Get(ts.URL + "/api/v1" + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if v != nil {
		enc := gnfmt.GNjson{}
		require.NoError(t, enc.Decode(body, v), string(body))
	}
	return resp.StatusCode
}

func TestPing(t *testing.T) {
	ts, st := newServer(t)
	var res string
	assert.Equal(t, http.StatusOK, get(t, ts, "/ping", &res))
	assert.Equal(t, "pong", res)
	assert.False(t, st.Loaded(), "ping does not load the store")
}

func TestTaxon(t *testing.T) {
	ts, st := newServer(t)

	var res taxon.Summary
	assert.Equal(t, http.StatusOK, get(t, ts, "/taxa/9606", &res))
	assert.True(t, st.Loaded())
	assert.Equal(t, "Homo sapiens", res.ScientificName)
	require.NotNil(t, res.ParentID)
	assert.Equal(t, 9605, *res.ParentID)
	require.NotNil(t, res.NameID)
	assert.Equal(t, "16f235a0-e4a3-529c-9b83-bd15fe722110", res.NameID.String())

	assert.Equal(t, http.StatusNotFound, get(t, ts, "/taxa/42", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, ts, "/taxa/abc", nil))
}

func TestLineage(t *testing.T) {
	ts, _ := newServer(t)

	var names []string
	assert.Equal(t, http.StatusOK, get(t, ts, "/lineage/9605", &names))
	assert.Equal(t, []string{
		"cellular organisms", "Eukaryota", "Metazoa", "Chordata",
		"Mammalia", "Primates", "Hominidae", "Homo",
	}, names)

	var ranks taxon.Lineage
	assert.Equal(t, http.StatusOK, get(t, ts, "/lineage/9605?ranks=true", &ranks))
	require.Len(t, ranks, len(names))
	assert.Equal(t, taxon.LineageItem{Name: "Homo", Rank: "genus"},
		ranks[len(ranks)-1])

	var errRes map[string]string
	assert.Equal(t, http.StatusNotFound, get(t, ts, "/lineage/42", &errRes))
	assert.NotEmpty(t, errRes["error"])
}

func TestChildren(t *testing.T) {
	ts, _ := newServer(t)

	var res []int
	assert.Equal(t, http.StatusOK, get(t, ts, "/children/9604", &res))
	assert.Equal(t, []int{9605, 9596}, res)

	assert.Equal(t, http.StatusOK, get(t, ts, "/children/63221", &res))
	assert.Empty(t, res)
}

func TestTree(t *testing.T) {
	ts, _ := newServer(t)

	var res taxonomy.Tree
	assert.Equal(t, http.StatusOK, get(t, ts, "/tree/9604", &res))
	assert.Len(t, res.Edges, 6)
	assert.False(t, res.LimitReached)

	assert.Equal(t, http.StatusOK, get(t, ts, "/tree/9604?limit=1", &res))
	assert.Len(t, res.Edges, 2)
	assert.True(t, res.LimitReached)

	assert.Equal(t, http.StatusBadRequest,
		get(t, ts, "/tree/9604?method=dfs", nil))
	assert.Equal(t, http.StatusBadRequest,
		get(t, ts, "/tree/9604?limit=many", nil))
	assert.Equal(t, http.StatusBadRequest,
		get(t, ts, "/tree/9604?limit=-5", nil))
}

func TestSearch(t *testing.T) {
	ts, _ := newServer(t)

	var res []taxon.Summary
	assert.Equal(t, http.StatusOK, get(t, ts, "/search?q=Pan%25", &res))
	require.Len(t, res, 3)
	assert.Equal(t, 9596, res[0].ID)

	assert.Equal(t, http.StatusBadRequest, get(t, ts, "/search", nil))
}

func TestRunStops(t *testing.T) {
	cfg := config.New()
	cfg.Server.Port = 0
	srv := ioserver.New(cfg, iostore.New(cfg, iocorpus.New(cfg)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- srv.Run(ctx) }()
	cancel()
	assert.NoError(t, <-done)
}
