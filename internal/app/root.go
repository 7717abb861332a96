package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andyballingall/semver-stamp/internal/config"
	"github.com/andyballingall/semver-stamp/internal/fs"
	"github.com/andyballingall/semver-stamp/internal/repo"
	"github.com/andyballingall/semver-stamp/internal/version"
)

// Version is the current version of semver-stamp, set at build time.
var Version = "dev"

// DebugEnvVar enables debug output on stderr when set to a non-empty value.
const DebugEnvVar = "SEMVER_STAMP_DEBUG"

var LongDescription = `
semver-stamp prints a semantic version for a git checkout, derived from the
nearest tag and the number of commits since it. A checkout exactly on tag
v1.4.2 prints 1.4.2; three commits later it prints 1.4.3-dev.2.

If the version cannot be determined, a diagnostic is written to stderr and
0.0.0 is printed instead. The exit status is always 0.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(ll *slog.LevelVar, stderr io.Writer, env fs.EnvProvider, pr fs.PathResolver) *cobra.Command {
	return &cobra.Command{
		Use:           "semver-stamp [repo]",
		Short:         "Print the semantic version of a git checkout",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.Get(DebugEnvVar) != "" {
				ll.Set(slog.LevelDebug)
			}

			dir, err := repoDir(args, env, pr)
			if err != nil {
				return err
			}

			cfg, err := config.Load(dir, env)
			if err != nil {
				return fmt.Errorf("configuration failed: %w", err)
			}

			logger, closer, err := setupLogger(stderr, ll, cfg.LogFile)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}
			if closer != nil {
				defer closer.Close()
			}

			resolver := version.NewResolver(repo.NewGitDescriber(cfg.Git), logger)
			v, err := resolver.Resolve(cmd.Context(), dir)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), v.Name)
			return nil
		},
	}
}

// repoDir picks the repository from the positional argument, then the
// environment, then the project enclosing the working directory.
func repoDir(args []string, env fs.EnvProvider, pr fs.PathResolver) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if dir := env.Get(config.RepoEnvVar); dir != "" {
		return dir, nil
	}
	return repo.FindRoot("", pr)
}
