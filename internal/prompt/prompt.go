// Package prompt assembles the left and right prompt strings.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/martinwickman/zshprompt/internal/env"
	"github.com/martinwickman/zshprompt/internal/pathfmt"
	"github.com/martinwickman/zshprompt/internal/style"
	"github.com/martinwickman/zshprompt/internal/terminal"
	"github.com/martinwickman/zshprompt/internal/vcs"
)

// NotFound is shown in place of a working directory that no longer exists.
const NotFound = "[not found]"

var (
	ruleStyle   = style.Spec{Background: style.Black}
	cwdStyle    = style.Spec{Foreground: style.Green}
	statusStyle = style.Spec{Foreground: style.Red}
	venvStyle   = style.Spec{Foreground: style.Blue}
	branchStyle = style.Spec{Foreground: style.Yellow}
	sshStyle    = style.Spec{Foreground: style.White}
)

// Renderer gathers facts about the environment and renders prompts from
// them. Every field is required except Log and MaxPathLength.
type Renderer struct {
	Style  style.Formatter
	Env    env.Snapshot
	Getwd  func() (string, error)
	Branch vcs.BranchReporter
	Width  func() int

	MaxPathLength int // 0 means pathfmt.DefaultMaxLength
	Log           *zap.Logger
}

func (r Renderer) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func (r Renderer) maxPathLength() int {
	if r.MaxPathLength == 0 {
		return pathfmt.DefaultMaxLength
	}
	return r.MaxPathLength
}

// Left returns a full-width rule on a black background followed by the
// shortened working directory in green and a space.
func (r Renderer) Left(ctx context.Context) (string, error) {
	cwd, err := WorkingDir(r.Getwd)
	if err != nil {
		return "", err
	}
	width := r.Width()
	r.logger().Debug("Rendering left prompt", zap.Int("width", width), zap.String("cwd", cwd))

	rule, err := r.Style.Format(terminal.Rule(" ", width, r.Style.Dialect), ruleStyle)
	if err != nil {
		return "", fmt.Errorf("rule: %w", err)
	}
	if cwd != NotFound {
		cwd = pathfmt.Shorten(cwd, r.Env.Home, r.maxPathLength())
	}
	dir, err := r.Style.Format(cwd, cwdStyle)
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	return rule + dir + " ", nil
}

// Right returns the exit status, virtualenv, git branch and SSH
// user@host, each colored, separated by single spaces. Missing pieces are
// left out. A nil or zero status is not shown.
func (r Renderer) Right(ctx context.Context, status *int) (string, error) {
	segments := []struct {
		text string
		spec style.Spec
	}{
		{exitStatus(status), statusStyle},
		{env.VirtualEnvName(r.Env), venvStyle},
		{vcs.BranchOrEmpty(ctx, r.Branch, r.logger()), branchStyle},
		{env.SSHUserAtHost(r.Env), sshStyle},
	}

	var parts []string
	for _, seg := range segments {
		s, err := r.Style.Format(seg.text, seg.spec)
		if err != nil {
			return "", err
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

func exitStatus(status *int) string {
	if status == nil || *status == 0 {
		return ""
	}
	return strconv.Itoa(*status)
}

// WorkingDir returns the current directory from getwd. A directory that
// has been deleted out from under us is reported as NotFound; any other
// error is returned.
func WorkingDir(getwd func() (string, error)) (string, error) {
	dir, err := getwd()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NotFound, nil
		}
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return dir, nil
}
