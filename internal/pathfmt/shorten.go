// Package pathfmt shortens directory paths for display, fish-style.
package pathfmt

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the display budget used by the left prompt.
const DefaultMaxLength = 20

const sep = "/"

// Shorten collapses the parent directories of path to their first
// character until the result fits in maxLength runes or nothing is left
// to collapse. The final directory is never shortened. A path inside home
// is shown relative to ~.
//
//	/home/seanh                         -> ~
//	/home/seanh/Projects/ckan/ckan/ckan -> ~/P/c/c/ckan
//	/home/seanh/Projects/ckan           -> ~/Projects/ckan
func Shorten(path, home string, maxLength int) string {
	if path == "" {
		return ""
	}

	relative := false
	if rest, ok := trimHome(path, home); ok {
		path = "~" + rest
		relative = true
	}

	var parts []string
	for _, p := range strings.Split(path, sep) {
		if p != "" {
			parts = append(parts, p)
		}
	}

	for joinedLen(parts) > maxLength {
		if !collapse(parts) {
			break
		}
	}

	out := strings.Join(parts, sep)
	if relative {
		return out
	}
	return sep + out
}

// trimHome strips home from the front of path. The match must end on a
// segment boundary so that /home/seanhx is not mistaken for /home/seanh.
func trimHome(path, home string) (string, bool) {
	home = strings.TrimRight(home, sep)
	if home == "" {
		return "", false
	}
	if path == home {
		return "", true
	}
	if rest, ok := strings.CutPrefix(path, home); ok && strings.HasPrefix(rest, sep) {
		return rest, true
	}
	return "", false
}

// collapse makes one left-to-right pass over every part but the last,
// cutting each to its first rune. It reports whether anything changed.
func collapse(parts []string) bool {
	changed := false
	for i := 0; i < len(parts)-1; i++ {
		if utf8.RuneCountInString(parts[i]) <= 1 {
			continue
		}
		_, size := utf8.DecodeRuneInString(parts[i])
		parts[i] = parts[i][:size]
		changed = true
	}
	return changed
}

func joinedLen(parts []string) int {
	if len(parts) == 0 {
		return 0
	}
	n := len(parts) - 1
	for _, p := range parts {
		n += utf8.RuneCountInString(p)
	}
	return n
}
