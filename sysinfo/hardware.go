package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuSampleInterval is how long CPUUsage blocks while sampling. Sampling
// happens lazily at render time so it runs exactly once per invocation.
const cpuSampleInterval = 500 * time.Millisecond

// usageBarWidth is the number of segments in the utilization bar.
const usageBarWidth = 10

// powerSupplyPath is where the kernel exposes battery state. A variable so
// tests can point it at a fixture tree.
var powerSupplyPath = "/sys/class/power_supply"

// CPUUsage samples overall CPU utilization and renders it with a segment
// bar, e.g. "45.0% [▰▰▰▰▰░░░░░]".
func CPUUsage() (string, error) {
	percents, err := cpu.Percent(cpuSampleInterval, false)
	if err != nil {
		return "", fmt.Errorf("failed to sample cpu: %w", err)
	}
	if len(percents) == 0 {
		return "", errors.New("no cpu samples")
	}
	p := percents[0]
	return fmt.Sprintf("%.1f%% %s", p, UsageBar(p, usageBarWidth)), nil
}

// Memory returns used and total RAM in MiB, e.g. "8192M/16384M".
func Memory() (string, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return "", fmt.Errorf("failed to get memory info: %w", err)
	}
	const mib = 1024 * 1024
	return fmt.Sprintf("%dM/%dM", vm.Used/mib, vm.Total/mib), nil
}

// Disk returns used and total space of the root filesystem,
// e.g. "45.2G/512.0G (9%)".
func Disk() (string, error) {
	du, err := disk.Usage("/")
	if err != nil {
		return "", fmt.Errorf("failed to get disk usage: %w", err)
	}
	return fmt.Sprintf("%s/%s (%.0f%%)",
		FormatBytes(du.Used), FormatBytes(du.Total), du.UsedPercent), nil
}

// Battery reads charge level and state from the first battery under
// /sys/class/power_supply, e.g. "85% (Charging)". A machine without a
// battery returns an error, which renders as an omitted row.
func Battery() (string, error) {
	for _, bat := range []string{"BAT0", "BAT1"} {
		base := filepath.Join(powerSupplyPath, bat)
		raw, err := os.ReadFile(filepath.Join(base, "capacity"))
		if err != nil {
			continue
		}
		pct, err := strconv.Atoi(strings.TrimSpace(string(raw)))
		if err != nil {
			continue
		}
		status := "Unknown"
		if raw, err := os.ReadFile(filepath.Join(base, "status")); err == nil {
			status = strings.TrimSpace(string(raw))
		}
		return fmt.Sprintf("%d%% (%s)", pct, status), nil
	}
	return "", errors.New("no battery present")
}
