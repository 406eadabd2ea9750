// Package style wraps prompt text in ANSI escape sequences, marking every
// escape as zero-width so the shell does not count it towards prompt width.
package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// ErrUnknownColor is returned for a color outside the 8-entry palette.
var ErrUnknownColor = errors.New("unknown color")

// Color is one of the eight basic ANSI colors.
type Color int

// The zero Color means "not set", so palette entries start at 1.
const (
	NoColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
}

// ParseColor looks up a palette color by name.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(name)]
	if !ok {
		return NoColor, fmt.Errorf("%w %q", ErrUnknownColor, name)
	}
	return c, nil
}

func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	if c == NoColor {
		return "none"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// sequence returns the SGR parameter for c, e.g. "31" for a red
// foreground or "41" for a red background.
func (c Color) sequence(background bool) (string, error) {
	if c < Black || c > White {
		return "", fmt.Errorf("%w %s", ErrUnknownColor, c)
	}
	return termenv.ANSIColor(c - Black).Sequence(background), nil
}

// Spec describes how a piece of text should be colored.
type Spec struct {
	Foreground Color
	Background Color
	Bold       bool
	Underline  bool
	Reverse    bool
}

// Dialect is the shell syntax used to mark a region as zero-width.
type Dialect int

const (
	Zsh Dialect = iota
	Bash
)

func (d Dialect) String() string {
	if d == Bash {
		return "bash"
	}
	return "zsh"
}

// ZeroWidth wraps s in the dialect's zero-width markers.
func (d Dialect) ZeroWidth(s string) string {
	if d == Bash {
		return `\[` + s + `\]`
	}
	return "%{" + s + "%}"
}

// Formatter renders Specs for one shell dialect.
type Formatter struct {
	Dialect Dialect
}

// New returns a Formatter for the given dialect.
func New(d Dialect) Formatter {
	return Formatter{Dialect: d}
}

func (f Formatter) escape(param string) string {
	return f.Dialect.ZeroWidth(termenv.CSI + param + "m")
}

// Format wraps text in the escapes described by spec and appends a reset.
// Empty text is returned unchanged.
//
// Escapes are emitted outermost first as reverse, underline, bold,
// background, foreground.
func (f Formatter) Format(text string, spec Spec) (string, error) {
	if text == "" {
		return text, nil
	}

	var b strings.Builder
	if spec.Reverse {
		b.WriteString(f.escape(termenv.ReverseSeq))
	}
	if spec.Underline {
		b.WriteString(f.escape(termenv.UnderlineSeq))
	}
	if spec.Bold {
		b.WriteString(f.escape(termenv.BoldSeq))
	}
	if spec.Background != NoColor {
		seq, err := spec.Background.sequence(true)
		if err != nil {
			return "", fmt.Errorf("background: %w", err)
		}
		b.WriteString(f.escape(seq))
	}
	if spec.Foreground != NoColor {
		seq, err := spec.Foreground.sequence(false)
		if err != nil {
			return "", fmt.Errorf("foreground: %w", err)
		}
		b.WriteString(f.escape(seq))
	}
	b.WriteString(text)
	b.WriteString(f.escape(termenv.ResetSeq))
	return b.String(), nil
}
