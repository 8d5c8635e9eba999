// Package ascii provides the static banner art displayed above the
// information boxes. Lines use only spaces and block glyphs so their
// visible width is always measurable.
package ascii

// Banner returns the LearnixOS wordmark, one string per output line.
// The renderer applies color; the art itself carries no styling.
func Banner() []string {
	return []string{
		"█░░ █▀▀ ▄▀█ █▀█ █▄░█ █ ▀▄▀ █▀█ █▀",
		"█▄▄ ██▄ █▀█ █▀▄ █░▀█ █ █░█ █▄█ ▄█",
		"",
		"─── s y s t e m   f e t c h ───",
	}
}
