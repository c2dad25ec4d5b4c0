package iocorpus

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
)

var errIsDir = errors.New("path is a directory")

// FetchError is returned when the corpus cannot be downloaded.
func FetchError(url string, err error) error {
	msg := `Cannot download taxonomy corpus from <em>%s</em>

<em>Possible causes:</em>
  - No network connection
  - The server is down

<em>How to fix:</em>
  1. Try again later
  2. Download the file manually and set 'corpus.url' to its path`
	vars := []any{url}

	return &gn.Error{
		Code: errcode.CorpusFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot download %s: %w", url, err),
	}
}

// BadStatusError is returned when the corpus server answers with an
// unexpected HTTP status.
func BadStatusError(url string, status int) error {
	msg := `Server of <em>%s</em> answered with status <em>%d</em>`
	vars := []any{url, status}

	return &gn.Error{
		Code: errcode.CorpusFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot download %s: status %d", url, status),
	}
}

// LocalCorpusError is returned when a local corpus file is not usable.
func LocalCorpusError(path string, err error) error {
	msg := `Cannot use local taxonomy corpus <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CorpusFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("local corpus %s: %w", path, err),
	}
}

// CacheDirError is returned when the corpus cache directory cannot be
// prepared.
func CacheDirError(dir string, err error) error {
	msg := `Cannot prepare corpus cache directory <em>%s</em>`
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot prepare %s: %w", dir, err),
	}
}
