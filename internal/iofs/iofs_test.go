package iofs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs verifies all required directories are created and
// that repeated calls succeed.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 2 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "taxodb"),
		filepath.Join(tmpDir, ".cache", "taxodb"),
		filepath.Join(tmpDir, ".cache", "taxodb", "corpus"),
		filepath.Join(tmpDir, ".local", "share", "taxodb", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), v)
	}
}

// TestTouchDir_Error verifies a file in place of a directory is reported.
func TestTouchDir_Error(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	err := touchDir(filepath.Join(file, "sub"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
}

// TestEnsureConfigFile verifies config file is created once and is not
// overwritten later.
func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	err := EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	path := config.ConfigFilePath(tmpDir)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data))

	custom := []byte("tree:\n  limit: 5\n")
	require.NoError(t, os.WriteFile(path, custom, 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, data, "existing config is kept")
}

// TestEnsureConfigFile_NoDir verifies the error when the config
// directory is missing.
func TestEnsureConfigFile_NoDir(t *testing.T) {
	err := EnsureConfigFile(t.TempDir())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CopyFileError, gnErr.Code)
	require.Len(t, gnErr.Vars, 1)
}

// TestConfigYAML_Defaults verifies the embedded config agrees with
// default values.
func TestConfigYAML_Defaults(t *testing.T) {
	var cfg config.Config
	err := yaml.Unmarshal([]byte(ConfigYAML), &cfg)
	require.NoError(t, err)

	def := config.New()
	assert.Equal(t, def.Corpus, cfg.Corpus)
	assert.Equal(t, def.Tree, cfg.Tree)
	assert.Equal(t, def.Lookup, cfg.Lookup)
	assert.Equal(t, def.Web, cfg.Web)
	assert.Equal(t, def.Server, cfg.Server)
	assert.Equal(t, def.Log, cfg.Log)
	assert.True(t, cfg.WithProgress)
}

// TestErrors verifies error constructors wrap their causes.
func TestErrors(t *testing.T) {
	orig := errors.New("disk full")

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"create dir", CreateDirError("/test/dir", orig), errcode.CreateDirError},
		{"copy file", CopyFileError("/test/config.yaml", orig), errcode.CopyFileError},
		{"read file", ReadFileError("/test/config.yaml", orig), errcode.ReadFileError},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "%s", v.msg)
		assert.ErrorIs(t, gnErr.Err, orig, v.msg)
	}
}
