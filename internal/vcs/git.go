// Package vcs reports version-control state for the working directory.
package vcs

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// BranchReporter reports the current branch name or fails, e.g. when the
// directory is not inside a repository.
type BranchReporter interface {
	Branch(ctx context.Context) (string, error)
}

// Git reads the branch from `git status`.
type Git struct {
	Dir string // empty means the process working directory
}

var _ BranchReporter = Git{}

// Branch runs `git status` and returns the last word of its first line,
// e.g. "main" from "On branch main" or "a1b2c3d" from a detached HEAD.
func (g Git) Branch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "status")
	cmd.Dir = g.Dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git status: %w", err)
	}
	return parseBranch(string(out)), nil
}

func parseBranch(status string) string {
	first, _, _ := strings.Cut(status, "\n")
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// BranchOrEmpty returns the branch reported by r, folding any failure into
// "". Not being in a repository is the common case, so it is only logged
// at debug level.
func BranchOrEmpty(ctx context.Context, r BranchReporter, log *zap.Logger) string {
	branch, err := r.Branch(ctx)
	if err != nil {
		log.Debug("No git branch", zap.Error(err))
		return ""
	}
	return branch
}
