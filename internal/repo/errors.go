package repo

import (
	"fmt"
	"strings"
)

// CommandError reports a git invocation that did not complete successfully.
type CommandError struct {
	Args    []string
	Stderr  string
	Wrapped error
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed: %v", strings.Join(e.Args, " "), e.Wrapped)
	}
	return fmt.Sprintf("%s failed: %v (output: %s)", strings.Join(e.Args, " "), e.Wrapped, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Wrapped
}
