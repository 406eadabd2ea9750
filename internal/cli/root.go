// Package cli wires the zshprompt command line to the prompt renderer.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/martinwickman/zshprompt/internal/env"
	"github.com/martinwickman/zshprompt/internal/prompt"
	"github.com/martinwickman/zshprompt/internal/style"
	"github.com/martinwickman/zshprompt/internal/terminal"
	"github.com/martinwickman/zshprompt/internal/vcs"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitConfigError = 2
)

// ErrInvalidSide is returned for a side other than left or right.
var ErrInvalidSide = errors.New("invalid side")

// Side selects which prompt to print.
type Side int

const (
	Left Side = iota
	Right
)

// ParseSide parses "left" or "right".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w %q: want left or right", ErrInvalidSide, s)
}

// Deps are the process-level inputs of a run. Tests replace them.
type Deps struct {
	Env    env.Snapshot
	Getwd  func() (string, error)
	Branch vcs.BranchReporter
	Width  func() int
	PPID   int
}

// OSDeps returns Deps backed by the running process.
func OSDeps() Deps {
	snap := env.FromOS()
	return Deps{
		Env:    snap,
		Getwd:  os.Getwd,
		Branch: vcs.Git{},
		Width: func() int {
			return terminal.Width(snap, os.Stdin.Fd(), os.Stderr.Fd(), os.Stdout.Fd())
		},
		PPID: os.Getppid(),
	}
}

// NewRootCommand builds the zshprompt command.
func NewRootCommand(deps Deps) *cobra.Command {
	var (
		lastExitStatus int
		log            = zap.NewNop()
	)

	cmd := &cobra.Command{
		Use:   "zshprompt left|right",
		Short: "Print zsh prompts",
		Long: `zshprompt prints the left or right zsh prompt.

The left prompt is a full-width rule followed by the shortened working
directory. The right prompt shows the last exit status, virtualenv, git
branch and, over SSH, user@host.`,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     []string{"left", "right"},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !deps.Env.Debug {
				return nil
			}
			log = newDebugLogger(cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := ParseSide(args[0])
			if err != nil {
				return err
			}
			var status *int
			if cmd.Flags().Changed("last-exit-status") {
				status = &lastExitStatus
			}

			dialect := terminal.DetectDialect(deps.Env, deps.PPID)
			log.Debug("Rendering prompt",
				zap.String("side", args[0]),
				zap.Stringer("dialect", dialect))

			r := prompt.Renderer{
				Style:  style.New(dialect),
				Env:    deps.Env,
				Getwd:  deps.Getwd,
				Branch: deps.Branch,
				Width:  deps.Width,
				Log:    log,
			}

			var out string
			if side == Left {
				out, err = r.Left(cmd.Context())
			} else {
				out, err = r.Right(cmd.Context(), status)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&lastExitStatus, "last-exit-status", 0,
		"exit status of the previous shell command (omit to leave it out of the prompt)")

	return cmd
}

// newDebugLogger logs to w at debug level. stdout is reserved for the
// prompt itself.
func newDebugLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}

// ExitCode maps an error from the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidSide), errors.Is(err, style.ErrUnknownColor):
		return ExitConfigError
	default:
		return ExitError
	}
}

// Execute runs the command and exits the process with ExitCode.
func Execute(cmd *cobra.Command) {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zshprompt: %v\n", err)
	}
	os.Exit(ExitCode(err))
}
