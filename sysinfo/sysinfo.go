// Package sysinfo is the data-provider side of lxfetch: every probe is a
// zero-argument function returning (string, error). Probes may read files,
// query gopsutil, or run package-manager binaries, but a failure is always
// returned as an error, never raised past this boundary — the renderer maps
// any error to an omitted row.
package sysinfo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// probeTimeout bounds every subprocess a probe starts, so a hung package
// manager cannot stall the render.
const probeTimeout = 1200 * time.Millisecond

// runCmd executes a command with the probe timeout and returns its trimmed
// standard output.
func runCmd(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
