package version

import (
	"context"
	"io"
	"log/slog"
)

// Describer is the version-control query the Resolver depends on.
type Describer interface {
	// HasMetadata reports whether dir carries version-control metadata.
	HasMetadata(dir string) bool

	// Describe returns the nearest-tag/distance/commit descriptor for dir. When no tag
	// exists it returns the bare short commit id.
	Describe(ctx context.Context, dir string) (string, error)
}

// Resolver derives a Version for a repository directory.
type Resolver struct {
	describer Describer
	logger    *slog.Logger
}

// NewResolver creates a new Resolver. A nil logger discards all records.
func NewResolver(d Describer, l *slog.Logger) *Resolver {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{describer: d, logger: l}
}

// Resolve returns the Version for dir. A directory without version-control
// metadata yields Fallback and no error.
func (r *Resolver) Resolve(ctx context.Context, dir string) (Version, error) {
	if !r.describer.HasMetadata(dir) {
		r.logger.Debug("no version-control metadata, using fallback", "dir", dir)
		return Fallback(), nil
	}

	descriptor, err := r.describer.Describe(ctx, dir)
	if err != nil {
		return Version{}, &DescribeError{Dir: dir, Wrapped: err}
	}
	r.logger.Debug("described repository", "dir", dir, "descriptor", descriptor)

	v, err := Parse(descriptor)
	if err != nil {
		return Version{}, err
	}

	r.logger.Debug("resolved version",
		"name", v.Name,
		"major", v.Major,
		"minor", v.Minor,
		"micro", v.Micro,
		"nano", v.Nano,
		"commit", v.Commit,
	)
	return v, nil
}
