package fs

import (
	"os"
	"path/filepath"
)

// PathResolver provides path resolution operations.
type PathResolver interface {
	// CanonicalPath returns the canonical, absolute path by resolving symlinks.
	CanonicalPath(path string) (string, error)
	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// StandardPathResolver is the default implementation using standard library functions.
type StandardPathResolver struct{}

// NewPathResolver creates a new StandardPathResolver.
func NewPathResolver() *StandardPathResolver {
	return &StandardPathResolver{}
}

// CanonicalPath returns the canonical, absolute path by resolving symlinks.
func (r *StandardPathResolver) CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// Getwd returns the current working directory.
func (r *StandardPathResolver) Getwd() (string, error) {
	return os.Getwd()
}

// Exists reports whether anything (file, directory or symlink target) lives at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
