// Package render implements the boxed terminal layout used by lxfetch:
// visible-width measurement of styled strings, the bordered section boxes,
// and the centered banner. All functions write to an io.Writer and take
// their style tokens explicitly, so output is deterministic under test.
package render

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// csiRegex matches ANSI/VT100 CSI sequences: ESC '[' followed by parameter
// bytes, optional intermediate bytes, and one final byte in @..~.
// Malformed sequences are left alone and count toward the width.
var csiRegex = regexp.MustCompile(`\x1b\[[0-9;:?]*[ -/]*[@-~]`)

// StripANSI removes all well-formed CSI escape sequences from s.
// Stripping is idempotent.
func StripANSI(s string) string {
	return csiRegex.ReplaceAllString(s, "")
}

// VisibleWidth calculates the number of terminal columns a string occupies,
// excluding ANSI escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The display width in columns (wide glyphs count as two)
//
// This is essential for proper alignment when strings contain color codes
// or box-drawing and icon glyphs.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
