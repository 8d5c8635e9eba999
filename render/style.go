package render

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorFaint  = "\033[2m"
)

// Theme holds the style tokens the renderers wrap around their output.
// Tokens are passed explicitly rather than read from ambient state; an
// all-empty Theme renders plain text, which is what the tests use.
type Theme struct {
	// Banner styles each banner art line
	Banner string

	// Title styles the section title inside the box
	Title string

	// Label prefixes a fact label; the renderer inserts Reset between
	// label and value
	Label string

	// Faint styles the diagnostic marker line
	Faint string

	// Reset terminates any of the above
	Reset string
}

// DefaultTheme is the color scheme used when stdout is a terminal.
var DefaultTheme = Theme{
	Banner: ColorCyan,
	Title:  ColorYellow,
	Label:  ColorBlue,
	Faint:  ColorFaint,
	Reset:  ColorReset,
}

// PlainTheme disables all styling. Used when stdout is not a terminal or
// color is turned off.
var PlainTheme = Theme{}

// Colorize wraps text with a style token and a reset.
func Colorize(text, color string) string {
	if color == "" {
		return text
	}
	return color + text + ColorReset
}
