package sysinfo

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// packageManager describes one known package manager: the binary to probe
// for and the arguments that list installed packages one per line.
type packageManager struct {
	name string
	args []string
}

// Listing commands are chosen for speed: query-only flags, no version
// resolution, no network.
var packageManagers = []packageManager{
	{"pacman", []string{"-Qq"}},
	{"dpkg-query", []string{"-f", ".\n", "-W"}},
	{"rpm", []string{"-qa", "--qf", ".\n"}},
	{"apk", []string{"info"}},
	{"xbps-query", []string{"-l"}},
	{"flatpak", []string{"list", "--app"}},
}

// Packages counts installed packages across every package manager present
// on the system.
//
// Returns:
//   - A summary like "1482 (pacman), 12 (flatpak)"
//   - An error if no package manager produced a count
//
// Managers whose binary is missing or whose listing fails are skipped
// silently; only a total absence of counts is an error.
func Packages() (string, error) {
	var parts []string
	for _, pm := range packageManagers {
		if _, err := exec.LookPath(pm.name); err != nil {
			continue
		}
		out, err := runCmd(pm.name, pm.args...)
		if err != nil {
			continue
		}
		if n := countLines(out); n > 0 {
			parts = append(parts, fmt.Sprintf("%d (%s)", n, pm.name))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no package manager detected")
	}
	return strings.Join(parts, ", "), nil
}

// countLines counts non-empty lines in trimmed command output.
func countLines(out string) int {
	if out == "" {
		return 0
	}
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
