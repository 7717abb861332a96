package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/semver-stamp/internal/fs"
	"github.com/andyballingall/semver-stamp/internal/version"
)

// PanicError carries a value recovered while resolving the version.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("unexpected failure: %v", e.Value)
}

// Run executes the command line in args and always leaves exactly one version
// line on stdout. Any failure, including a panic, is reported on stderr and
// replaced by the fallback version. The returned error is the failure that was
// swallowed, for callers that want to log it; it must not change the exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, env fs.EnvProvider) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			fmt.Fprintln(stdout, version.FallbackName)
		}
	}()

	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelWarn)

	if env == nil {
		env = fs.NewEnvProvider()
	}

	rootCmd := NewRootCmd(logLevel, stderr, env, fs.NewPathResolver())
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd.ExecuteContext(ctx)
}
