package iocorpus_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/internal/iocorpus"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpusText = "ID : 1\nPARENT ID : 0\nSCIENTIFIC NAME : root\n//\n"

func testConfig(t *testing.T, url string) *config.Config {
	cfg := config.New()
	cfg.HomeDir = t.TempDir()
	cfg.WithProgress = false
	cfg.Corpus.URL = url
	return cfg
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

func corpusServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			n := hits.Add(1)
			if r.URL.Path != "/taxonomy.dat" {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, corpusText)
			fmt.Fprintf(w, "ID : %d\nPARENT ID : 1\n//\n", n+1)
		}))
	t.Cleanup(ts.Close)
	return ts
}

func TestFetchRemote(t *testing.T) {
	ctx := context.Background()
	var hits atomic.Int32
	ts := corpusServer(t, &hits)

	cfg := testConfig(t, ts.URL+"/taxonomy.dat")
	f := iocorpus.New(cfg)

	path, err := f.Fetch(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, config.CorpusFilePath(cfg.HomeDir, "taxonomy.dat"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID : 2\n")
	assert.Equal(t, int32(1), hits.Load())

	// cached file is reused
	_, err = f.Fetch(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	stray := filepath.Join(config.CorpusDir(cfg.HomeDir), "old.dat")
	require.NoError(t, os.WriteFile(stray, []byte("old"), 0644))

	path, err = f.Fetch(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID : 3\n")
	assert.NoFileExists(t, stray, "cache is cleaned on overwrite")

	entries, err := os.ReadDir(config.CorpusDir(cfg.HomeDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left")
}

func TestFetchFailedOverwriteKeepsCache(t *testing.T) {
	ctx := context.Background()
	var fail atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if fail.Load() {
				http.Error(w, "oops", http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, corpusText)
		}))
	t.Cleanup(ts.Close)

	cfg := testConfig(t, ts.URL+"/taxonomy.dat")
	f := iocorpus.New(cfg)

	path, err := f.Fetch(ctx, false)
	require.NoError(t, err)

	fail.Store(true)
	_, err = f.Fetch(ctx, true)
	assert.Equal(t, errcode.CorpusFetchError, errCode(t, err))

	data, err := os.ReadFile(path)
	require.NoError(t, err, "cached corpus survives a failed download")
	assert.Equal(t, corpusText, string(data))

	entries, err := os.ReadDir(config.CorpusDir(cfg.HomeDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left")

	path2, err := f.Fetch(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, path, path2)
}

func TestFetchRemoteErrors(t *testing.T) {
	ctx := context.Background()
	var hits atomic.Int32
	ts := corpusServer(t, &hits)

	cfg := testConfig(t, ts.URL+"/missing.dat")
	_, err := iocorpus.New(cfg).Fetch(ctx, false)
	assert.Equal(t, errcode.CorpusFetchError, errCode(t, err))
	assert.NoFileExists(t,
		config.CorpusFilePath(cfg.HomeDir, cfg.Corpus.FileName))

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	cfg = testConfig(t, ts.URL+"/taxonomy.dat")
	_, err = iocorpus.New(cfg).Fetch(cctx, false)
	assert.Equal(t, errcode.CorpusFetchError, errCode(t, err))
}

func TestFetchLocal(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	local := filepath.Join(dir, "my.dat")
	require.NoError(t, os.WriteFile(local, []byte(corpusText), 0644))

	tests := []struct {
		msg  string
		url  string
		path string
		code gn.ErrorCode
	}{
		{"local file is used in place", local, local, errcode.UnknownError},
		{"missing file", filepath.Join(dir, "none.dat"), "", errcode.CorpusFetchError},
		{"directory", dir, "", errcode.CorpusFetchError},
	}

	for _, v := range tests {
		cfg := testConfig(t, v.url)
		path, err := iocorpus.New(cfg).Fetch(ctx, true)
		if v.code == errcode.UnknownError {
			require.NoError(t, err, v.msg)
			assert.Equal(t, v.path, path, v.msg)
			continue
		}
		assert.Equal(t, v.code, errCode(t, err), v.msg)
	}
}
