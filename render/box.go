package render

import (
	"fmt"
	"io"
	"strings"
)

// InteriorWidth is the fixed content width of every box, independent of
// terminal size or content length. All three border rows derive from it,
// so they can never drift apart.
const InteriorWidth = 40

// Box-drawing characters for the section border.
const (
	topLeft     = "╔"
	topRight    = "╗"
	bottomLeft  = "╚"
	bottomRight = "╝"
	sepLeft     = "╠"
	sepRight    = "╣"
	horizontal  = "═"
	vertical    = "║"
)

// RenderSection renders one titled group of facts as a bordered box centered
// within termWidth, followed by a blank line. Each fact's value is resolved
// exactly once; absent facts are omitted. If every fact is absent the section
// produces no output at all, which is not an error.
//
// Rows wider than InteriorWidth are emitted unpadded and overflow the right
// border; content is never truncated.
func RenderSection(w io.Writer, title string, facts []Fact, termWidth int, th Theme) {
	type row struct {
		label string
		value string
	}

	rows := make([]row, 0, len(facts))
	for _, f := range facts {
		if v, ok := f.resolve(); ok {
			rows = append(rows, row{label: f.Label, value: v})
		}
	}
	if len(rows) == 0 {
		return
	}

	indent := strings.Repeat(" ", boxIndent(termWidth))
	bar := strings.Repeat(horizontal, InteriorWidth)

	fmt.Fprintf(w, "%s%s%s%s\n", indent, topLeft, bar, topRight)

	left, right := centerPads(VisibleWidth(title))
	fmt.Fprintf(w, "%s%s%s%s%s%s%s%s\n", indent, vertical,
		strings.Repeat(" ", left), th.Title, title, th.Reset,
		strings.Repeat(" ", right), vertical)

	fmt.Fprintf(w, "%s%s%s%s\n", indent, sepLeft, bar, sepRight)

	for _, r := range rows {
		line := r.label + th.Reset + " " + r.value
		left, right := centerPads(VisibleWidth(line))
		fmt.Fprintf(w, "%s%s%s%s%s%s\n", indent, vertical,
			strings.Repeat(" ", left), line, strings.Repeat(" ", right), vertical)
	}

	fmt.Fprintf(w, "%s%s%s%s\n", indent, bottomLeft, bar, bottomRight)
	fmt.Fprintln(w)
}

// boxIndent returns the leading spaces that center a box of border width
// InteriorWidth+2 within termWidth. Narrow (or nonsensical) terminal widths
// clamp to zero: the box renders left-aligned rather than crashing.
func boxIndent(termWidth int) int {
	indent := (termWidth - (InteriorWidth + 2)) / 2
	if indent < 0 {
		indent = 0
	}
	return indent
}

// centerPads splits the free space around content of the given visible width.
// The rounding remainder goes to the right pad. Negative padding (content
// wider than the box) clamps to zero; the row then overflows the border.
func centerPads(width int) (left, right int) {
	left = (InteriorWidth - width) / 2
	if left < 0 {
		left = 0
	}
	right = InteriorWidth - width - left
	if right < 0 {
		right = 0
	}
	return left, right
}
