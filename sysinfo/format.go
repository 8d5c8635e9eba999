// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
)

// FormatBytes converts a byte count to a compact human-readable string.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - A formatted string with the most appropriate unit suffix (B, K, M, G, T)
//
// Example: FormatBytes(1536) returns "1.5K"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%dB", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"K", "M", "G", "T", "P"}
	return fmt.Sprintf("%.1f%s", float64(bytes)/float64(div), units[exp])
}

// FormatUptime converts an uptime in seconds to "3d 4h 12m" form.
// Zero components on the left are dropped; less than a minute reads "0m".
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// UsageBar renders a percentage as a bracketed segment bar.
//
// Parameters:
//   - percent: Utilization in the range 0..100 (values outside are clamped)
//   - width: Number of segments in the bar
//
// Example: UsageBar(45.0, 10) returns "[▰▰▰▰▰░░░░░]"
func UsageBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("▰", filled) + strings.Repeat("░", width-filled) + "]"
}
