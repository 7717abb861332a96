package app

import (
	"os/exec"
	"strings"
	"testing"
)

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

// setupTagged creates a repository with tag on the first commit followed by
// extra empty commits.
func setupTagged(t *testing.T, tag string, extra int) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()

	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	runGit(t, dir, "commit", "--allow-empty", "-m", "initial commit")
	if tag != "" {
		runGit(t, dir, "tag", tag)
	}
	for range extra {
		runGit(t, dir, "commit", "--allow-empty", "-m", "change")
	}

	return dir
}
