// Package env captures the process environment the prompt depends on, so
// the rest of the program can be tested against a fixed snapshot.
package env

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Snapshot is the subset of process state read once per invocation.
type Snapshot struct {
	Home          string
	VirtualEnv    string // $VIRTUAL_ENV
	SSHConnection string // $SSH_CONNECTION
	User          string
	Host          string
	Columns       string // $COLUMNS
	Shell         string // $SHELL
	Debug         bool   // $ZSHPROMPT_DEBUG
}

// FromOS reads a Snapshot from the running process. Lookups that fail
// leave their field empty.
func FromOS() Snapshot {
	s := Snapshot{
		VirtualEnv:    os.Getenv("VIRTUAL_ENV"),
		SSHConnection: os.Getenv("SSH_CONNECTION"),
		Columns:       os.Getenv("COLUMNS"),
		Shell:         os.Getenv("SHELL"),
		Debug:         os.Getenv("ZSHPROMPT_DEBUG") != "",
	}

	s.Home, _ = os.UserHomeDir()
	if u, err := user.Current(); err == nil {
		s.User = u.Username
		if s.Home == "" {
			s.Home = u.HomeDir
		}
	} else {
		s.User = os.Getenv("USER")
	}
	s.Host, _ = os.Hostname()
	return s
}

// VirtualEnvName returns the last path segment of $VIRTUAL_ENV, or "" if
// no virtualenv is active.
func VirtualEnvName(s Snapshot) string {
	p := strings.TrimRight(s.VirtualEnv, "/")
	if p == "" {
		return ""
	}
	return filepath.Base(p)
}

// SSHUserAtHost returns "user@host" when running over SSH, "" otherwise.
func SSHUserAtHost(s Snapshot) string {
	if s.SSHConnection == "" {
		return ""
	}
	return s.User + "@" + s.Host
}
