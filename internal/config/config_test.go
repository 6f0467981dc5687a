package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 4000, cfg.Limits.MaxTreeChars)
	assert.Equal(t, 200, cfg.Limits.MaxSymbols)
	assert.Equal(t, int64(512*1024), cfg.Limits.MaxFileBytes)
	assert.Equal(t, int64(20*1024*1024), cfg.Limits.MaxTotalBytes)
	assert.Equal(t, 25, cfg.Limits.MaxSymbolsPerFile)
	assert.Equal(t, 2*time.Second, cfg.GitTimeout)
	require.NoError(t, cfg.Limits.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	content := `limits:
  max_symbols: 10
  max_tree_depth: 2
exclude:
  - "*.lock"
excluded_dirs:
  - vendor
git_timeout: 500ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Limits.MaxSymbols)
	assert.Equal(t, 2, cfg.Limits.MaxTreeDepth)
	assert.Equal(t, 4000, cfg.Limits.MaxTreeChars)
	assert.Equal(t, []string{"*.lock"}, cfg.Exclude)
	assert.Equal(t, []string{"vendor"}, cfg.ExcludedDirs)
	assert.Equal(t, 500*time.Millisecond, cfg.GitTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_NegativeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  max_files: -1\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("limits: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
