package repo

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/semver-stamp/internal/version"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

func setupTestRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)
	dir := t.TempDir()

	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	runGit(t, dir, "config", "tag.gpgsign", "false")
	runGit(t, dir, "commit", "--allow-empty", "-m", "initial commit")

	return dir
}

func commit(t *testing.T, dir string, n int) {
	t.Helper()
	for range n {
		runGit(t, dir, "commit", "--allow-empty", "-m", "change")
	}
}

func TestGitDescriber_Describe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no tags returns short commit", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		desc, err := NewGitDescriber("").Describe(ctx, dir)
		require.NoError(t, err)

		head := runGit(t, dir, "rev-parse", "HEAD")
		assert.NotEmpty(t, desc)
		assert.True(t, strings.HasPrefix(head, desc), "%q should prefix %q", desc, head)

		v, err := version.Parse(desc)
		require.NoError(t, err)
		assert.Equal(t, version.Version{Name: "0.0.0", Commit: desc}, v)
	})

	t.Run("exact tag", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		runGit(t, dir, "tag", "v1.4.2")

		desc, err := NewGitDescriber("").Describe(ctx, dir)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(desc, "v1.4.2-0-g"), desc)

		v, err := version.Parse(desc)
		require.NoError(t, err)
		assert.Equal(t, "1.4.2", v.Name)
		assert.Equal(t, "g"+runGit(t, dir, "rev-parse", "--short", "HEAD"), v.Commit)
	})

	t.Run("commits past annotated tag", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		runGit(t, dir, "tag", "-a", "v1.4.2", "-m", "release")
		commit(t, dir, 3)

		desc, err := NewGitDescriber("").Describe(ctx, dir)
		require.NoError(t, err)

		v, err := version.Parse(desc)
		require.NoError(t, err)
		assert.Equal(t, "1.4.3-dev.2", v.Name)
		assert.Equal(t, uint64(3), v.Nano)
	})

	t.Run("nearest tag wins", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		runGit(t, dir, "tag", "1.0.0")
		commit(t, dir, 2)
		runGit(t, dir, "tag", "1.1.0")
		commit(t, dir, 1)

		desc, err := NewGitDescriber("").Describe(ctx, dir)
		require.NoError(t, err)

		v, err := version.Parse(desc)
		require.NoError(t, err)
		assert.Equal(t, "1.1.1-dev.0", v.Name)
	})

	t.Run("repository without commits fails", func(t *testing.T) {
		t.Parallel()
		requireGit(t)
		dir := t.TempDir()
		runGit(t, dir, "init")

		_, err := NewGitDescriber("").Describe(ctx, dir)
		require.Error(t, err)

		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Contains(t, err.Error(), "git describe --tags --always --long failed")
		assert.NotEmpty(t, cmdErr.Stderr)
	})

	t.Run("missing binary fails", func(t *testing.T) {
		t.Parallel()
		_, err := NewGitDescriber(filepath.Join(t.TempDir(), "no-such-git")).Describe(ctx, t.TempDir())
		require.Error(t, err)

		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Empty(t, cmdErr.Stderr)
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewGitDescriber("").Describe(cctx, dir)
		require.Error(t, err)
	})
}

func TestHasMetadata(t *testing.T) {
	t.Parallel()

	t.Run("git directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
		assert.True(t, HasMetadata(dir))
		assert.True(t, NewGitDescriber("").HasMetadata(dir))
	})

	t.Run("gitdir file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: ../main/.git/worktrees/x\n"), 0o600))
		assert.True(t, HasMetadata(dir))
	})

	t.Run("plain directory", func(t *testing.T) {
		t.Parallel()
		assert.False(t, HasMetadata(t.TempDir()))
	})
}

type mockPathResolver struct {
	canonicalPathFn func(path string) (string, error)
	getwdFn         func() (string, error)
}

func (m *mockPathResolver) CanonicalPath(path string) (string, error) {
	if m.canonicalPathFn != nil {
		return m.canonicalPathFn(path)
	}
	return filepath.EvalSymlinks(path)
}

func (m *mockPathResolver) Getwd() (string, error) {
	if m.getwdFn != nil {
		return m.getwdFn()
	}
	return os.Getwd()
}

func TestFindRoot(t *testing.T) {
	t.Parallel()

	t.Run("walks up to repository root", func(t *testing.T) {
		t.Parallel()
		root, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
		nested := filepath.Join(root, "pkg", "sub")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		got, err := FindRoot(nested, nil)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("start is root", func(t *testing.T) {
		t.Parallel()
		root, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

		got, err := FindRoot(root, nil)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("empty start uses working directory", func(t *testing.T) {
		t.Parallel()
		root, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

		pr := &mockPathResolver{getwdFn: func() (string, error) { return root, nil }}
		got, err := FindRoot("", pr)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("getwd error", func(t *testing.T) {
		t.Parallel()
		pr := &mockPathResolver{getwdFn: func() (string, error) { return "", os.ErrPermission }}
		_, err := FindRoot("", pr)
		require.ErrorIs(t, err, os.ErrPermission)
		assert.Contains(t, err.Error(), "failed to determine working directory")
	})

	t.Run("canonical path error", func(t *testing.T) {
		t.Parallel()
		pr := &mockPathResolver{canonicalPathFn: func(string) (string, error) {
			return "", errors.New("resolve failure")
		}}
		_, err := FindRoot("/anywhere", pr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolve failure")
	})

	t.Run("non-existent start", func(t *testing.T) {
		t.Parallel()
		_, err := FindRoot(filepath.Join(t.TempDir(), "missing"), nil)
		require.Error(t, err)
	})
}
