// Package terminal answers questions about the terminal and shell the
// prompt is rendered for: how wide it is and which shell is asking.
package terminal

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ps "github.com/mitchellh/go-ps"
	"golang.org/x/term"

	"github.com/martinwickman/zshprompt/internal/env"
	"github.com/martinwickman/zshprompt/internal/style"
)

// DefaultWidth is used when no terminal size can be determined.
const DefaultWidth = 80

// Injectable for tests.
var (
	getSize     = term.GetSize
	findProcess = ps.FindProcess
)

// Width returns the column count of the first fd that is a terminal.
// Prompts are rendered inside $(...), so stdout is usually a pipe and
// callers should pass stdin and stderr first. Falls back to $COLUMNS and
// then DefaultWidth.
func Width(s env.Snapshot, fds ...uintptr) int {
	for _, fd := range fds {
		if w, _, err := getSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	if w, err := strconv.Atoi(strings.TrimSpace(s.Columns)); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Rule returns fill repeated to span width visible columns, followed by
// a zero-width newline.
func Rule(fill string, width int, d style.Dialect) string {
	w := lipgloss.Width(fill)
	if w <= 0 {
		fill, w = " ", 1
	}
	n := 0
	if width > 0 {
		n = width / w
	}
	return strings.Repeat(fill, n) + d.ZeroWidth("\n")
}

// DetectDialect picks zero-width markers for the shell that invoked us.
// The parent process wins; $SHELL is the fallback, then zsh.
func DetectDialect(s env.Snapshot, ppid int) style.Dialect {
	if d, ok := dialectFor(parentExecutable(ppid)); ok {
		return d
	}
	if d, ok := dialectFor(s.Shell); ok {
		return d
	}
	return style.Zsh
}

// parentExecutable returns the executable name of ppid, or "" if the
// process table cannot be read.
func parentExecutable(ppid int) string {
	if ppid <= 0 {
		return ""
	}
	p, err := findProcess(ppid)
	if err != nil || p == nil {
		return ""
	}
	return p.Executable()
}

func dialectFor(shell string) (style.Dialect, bool) {
	if shell == "" {
		return style.Zsh, false
	}
	// Login shells show up as "-zsh".
	name := strings.TrimPrefix(filepath.Base(shell), "-")
	switch name {
	case "zsh":
		return style.Zsh, true
	case "bash":
		return style.Bash, true
	}
	return style.Zsh, false
}
