package repo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/andyballingall/semver-stamp/internal/fs"
	"github.com/andyballingall/semver-stamp/internal/version"
)

// DefaultGitBinary is the executable used when none is configured.
const DefaultGitBinary = "git"

// MetadataDir is the entry whose presence marks a git checkout. In worktrees and
// submodules it is a file rather than a directory.
const MetadataDir = ".git"

// describeArgs always falls back to the commit id and always includes the
// distance and hash suffix.
var describeArgs = []string{"describe", "--tags", "--always", "--long"}

// Ensure the interface is satisfied.
var _ version.Describer = (*GitDescriber)(nil)

// GitDescriber is the concrete implementation of version.Describer using the git CLI.
type GitDescriber struct {
	binary string
}

// NewGitDescriber creates a new GitDescriber. An empty binary selects DefaultGitBinary.
func NewGitDescriber(binary string) *GitDescriber {
	if binary == "" {
		binary = DefaultGitBinary
	}
	return &GitDescriber{binary: binary}
}

// HasMetadata reports whether dir contains a .git directory or gitdir file.
func (g *GitDescriber) HasMetadata(dir string) bool {
	return HasMetadata(dir)
}

// Describe runs git describe in dir and returns its trimmed standard output.
func (g *GitDescriber) Describe(ctx context.Context, dir string) (string, error) {
	//nolint:gosec // binary comes from local configuration
	cmd := exec.CommandContext(ctx, g.binary, describeArgs...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:    append([]string{g.binary}, describeArgs...),
			Stderr:  strings.TrimSpace(stderr.String()),
			Wrapped: err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// HasMetadata reports whether dir contains a .git directory or gitdir file.
func HasMetadata(dir string) bool {
	return fs.Exists(filepath.Join(dir, MetadataDir))
}

// FindRoot walks up from start to the nearest directory holding git metadata.
// If no ancestor has any, the canonical start directory is returned.
func FindRoot(start string, pr fs.PathResolver) (string, error) {
	if pr == nil {
		pr = fs.NewPathResolver()
	}

	if start == "" {
		wd, err := pr.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		start = wd
	}

	canonical, err := pr.CanonicalPath(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for dir := canonical; ; {
		if HasMetadata(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return canonical, nil
		}
		dir = parent
	}
}
