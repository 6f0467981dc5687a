package gitmeta

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hashRe = regexp.MustCompile(`^[0-9a-f]{40}$`)

func initRepo(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir, hash.String()
}

func TestHead_Repository(t *testing.T) {
	dir, want := initRepo(t)

	got, err := New(2*time.Second, nil).Head(context.Background(), dir)
	require.NoError(t, err)
	assert.Regexp(t, hashRe, got)
	assert.Equal(t, want, got)
}

func TestHead_Subdirectory(t *testing.T) {
	dir, want := initRepo(t)
	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.Mkdir(sub, 0o755))

	got, err := New(2*time.Second, nil).Head(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHead_NotARepository(t *testing.T) {
	r := New(2*time.Second, nil)
	r.gitBin = filepath.Join(t.TempDir(), "no-such-git")

	got, err := r.Head(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, got)
}

func TestHead_EmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	r := New(2*time.Second, nil)
	r.gitBin = filepath.Join(t.TempDir(), "no-such-git")
	_, err = r.Head(context.Background(), dir)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHead_ContextDone(t *testing.T) {
	dir, _ := initRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := New(2*time.Second, nil).Head(ctx, dir)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, got)
}

func TestHeadFromRepo(t *testing.T) {
	dir, want := initRepo(t)

	got, err := headFromRepo(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
