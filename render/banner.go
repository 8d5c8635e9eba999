package render

import (
	"fmt"
	"io"
	"strings"
)

// RenderBanner centers each art line within termWidth and wraps it in the
// theme's banner color. Lines are emitted in order, one per output line.
// Art lines contain only spaces and block glyphs, so they always measure.
func RenderBanner(w io.Writer, art []string, termWidth int, th Theme) {
	for _, line := range art {
		pad := (termWidth - VisibleWidth(line)) / 2
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(w, "%s%s%s%s\n", strings.Repeat(" ", pad), th.Banner, line, th.Reset)
	}
}
