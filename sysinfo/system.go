package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// OSName returns the operating system identity, e.g. "arch rolling x86_64".
//
// Returns:
//   - The platform name, version and architecture joined with single spaces
//   - An error if host information cannot be retrieved
func OSName() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("failed to get host info: %w", err)
	}
	// Platform version is empty on rolling-release distros; collapse the gap.
	parts := strings.Fields(info.Platform + " " + info.PlatformVersion + " " + info.KernelArch)
	if len(parts) == 0 {
		return "", errors.New("host info empty")
	}
	return strings.Join(parts, " "), nil
}

// Kernel returns the running kernel release string.
func Kernel() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("failed to get host info: %w", err)
	}
	if info.KernelVersion == "" {
		return "", errors.New("kernel version unavailable")
	}
	return info.KernelVersion, nil
}

// Uptime returns the formatted system uptime, e.g. "3d 4h 12m".
func Uptime() (string, error) {
	secs, err := host.Uptime()
	if err != nil {
		return "", fmt.Errorf("failed to get uptime: %w", err)
	}
	return FormatUptime(secs), nil
}

// Terminal returns the terminal emulator name, preferring TERM_PROGRAM
// over TERM.
func Terminal() (string, error) {
	if t := os.Getenv("TERM_PROGRAM"); t != "" {
		return t, nil
	}
	if t := os.Getenv("TERM"); t != "" {
		return t, nil
	}
	return "", errors.New("no terminal detected")
}
