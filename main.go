// Package main provides the lxfetch command-line tool: a one-shot system
// information display that renders host facts in bordered, centered boxes
// under the LearnixOS banner.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LearnixOS/lxfetch/ascii"
	"github.com/LearnixOS/lxfetch/logging"
	"github.com/LearnixOS/lxfetch/render"
	"github.com/LearnixOS/lxfetch/sysinfo"
)

// version is set at build time via -ldflags.
var version = "dev"

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

var (
	verbosity int
	noColor   bool

	rootCmd = &cobra.Command{
		Use:   "lxfetch",
		Short: "LearnixOS system information fetch",
		Long: `lxfetch displays a decorative snapshot of the machine: OS identity,
kernel, uptime, package counts and hardware utilization, rendered in
centered boxes under the LearnixOS banner.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lxfetch version %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the single render pass: clear, banner, System box, Hardware
// box, bell. The terminal width is queried once and reused for every element
// so output stays consistently centered even if the terminal is resized
// mid-render.
func run(cmd *cobra.Command, args []string) error {
	tty := isatty.IsTerminal(os.Stdout.Fd())
	th := render.DefaultTheme
	if noColor || !tty {
		th = render.PlainTheme
	}
	width := terminalWidth()

	out := bufio.NewWriter(os.Stdout)

	if tty {
		fmt.Fprint(out, "\033[2J\033[H")
	}
	fmt.Fprintf(out, "%slxfetch %s #%08x%s\n", th.Faint, version,
		uint32(time.Now().UnixNano()), th.Reset)

	render.RenderBanner(out, ascii.Banner(), width, th)
	render.RenderSection(out, "System", systemFacts(th), width, th)
	render.RenderSection(out, "Hardware", hardwareFacts(th), width, th)

	fmt.Fprint(out, "\a")
	return out.Flush()
}

// terminalWidth queries the width of stdout once per invocation.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// label builds a styled fact label: color token, icon glyph, name.
// No trailing reset; the renderer inserts it before the value.
func label(th render.Theme, icon, name string) string {
	return th.Label + icon + " " + name
}

func systemFacts(th render.Theme) []render.Fact {
	return []render.Fact{
		{Label: label(th, "", "OS"), Value: render.Lazy(sysinfo.OSName)},
		{Label: label(th, "", "Kernel"), Value: render.Lazy(sysinfo.Kernel)},
		{Label: label(th, "󰅐", "Uptime"), Value: render.Lazy(sysinfo.Uptime)},
		{Label: label(th, "󰏖", "Packages"), Value: render.Lazy(sysinfo.Packages)},
		{Label: label(th, "", "Terminal"), Value: render.Lazy(sysinfo.Terminal)},
	}
}

func hardwareFacts(th render.Theme) []render.Fact {
	return []render.Fact{
		{Label: label(th, "", "CPU"), Value: render.Lazy(sysinfo.CPUUsage)},
		{Label: label(th, "󰍛", "Memory"), Value: render.Lazy(sysinfo.Memory)},
		{Label: label(th, "󰋊", "Disk"), Value: render.Lazy(sysinfo.Disk)},
		{Label: label(th, "󰁹", "Battery"), Value: render.Lazy(sysinfo.Battery)},
	}
}
