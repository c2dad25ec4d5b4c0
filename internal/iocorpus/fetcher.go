// Package iocorpus implements taxonomy.Fetcher. It downloads the
// taxonomy flat file into the cache directory, or points to a local copy
// of the file.
package iocorpus

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnsys"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/taxonomy"
)

type fetcher struct {
	cfg    *config.Config
	client *http.Client
}

// New creates a Fetcher for the corpus described by cfg.Corpus.
func New(cfg *config.Config) taxonomy.Fetcher {
	return &fetcher{cfg: cfg, client: &http.Client{}}
}

// Fetch returns a path to the corpus file. A local corpus is used in
// place. A remote corpus is downloaded to the cache directory, an
// existing download is reused unless overwrite is true.
func (f *fetcher) Fetch(ctx context.Context, overwrite bool) (string, error) {
	src := f.cfg.Corpus.URL
	if !isRemote(src) {
		return localCorpus(src)
	}

	dir := config.CorpusDir(f.cfg.HomeDir)
	path := config.CorpusFilePath(f.cfg.HomeDir, f.cfg.Corpus.FileName)

	if !overwrite {
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			slog.Info("Using cached taxonomy corpus", "path", path)
			return path, nil
		}
	}

	err := gnsys.MakeDir(dir)
	if err != nil {
		return "", CacheDirError(dir, err)
	}

	// the previous download stays in place until the new one is complete
	err = f.download(ctx, src, path)
	if err != nil {
		return "", err
	}

	if overwrite {
		err = removeStale(dir, filepath.Base(path))
		if err != nil {
			return "", CacheDirError(dir, err)
		}
	}
	return path, nil
}

// removeStale deletes everything in the corpus directory except the
// current corpus file.
func removeStale(dir, keep string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Name() == keep {
			continue
		}
		err = os.RemoveAll(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *fetcher) download(ctx context.Context, src, path string) error {
	startTime := time.Now()
	gn.Info("Downloading <em>%s</em>", src)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return FetchError(src, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return FetchError(src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return BadStatusError(src, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.part")
	if err != nil {
		return FetchError(src, err)
	}
	// removal fails harmlessly after a successful rename
	defer os.Remove(tmp.Name())

	var r io.Reader = resp.Body
	if f.cfg.WithProgress && resp.ContentLength > 0 {
		bar := newProgressBar(resp.ContentLength, "download ")
		defer bar.Finish()
		r = bar.NewProxyReader(resp.Body)
	}

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return FetchError(src, err)
	}
	if err = tmp.Close(); err != nil {
		return FetchError(src, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return FetchError(src, err)
	}

	slog.Info("Taxonomy corpus downloaded",
		"url", src,
		"path", path,
		"size", humanize.Bytes(uint64(size)),
		"duration", time.Since(startTime).String(),
	)
	return nil
}

func localCorpus(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", LocalCorpusError(path, err)
	}
	if info.IsDir() {
		return "", LocalCorpusError(path, errIsDir)
	}
	return path, nil
}

// isRemote returns true for http and https URLs.
func isRemote(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
