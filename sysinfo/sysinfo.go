// Package sysinfo gathers host facts for the fetch display: OS and kernel,
// hardware, desktop environment and theming, network, battery and package
// counts. Every probe returns either a real value or a fixed fallback string,
// so callers never have to handle errors.
package sysinfo

import (
	"context"
	"log/slog"
)

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
)

// Fallback values reported when a probe cannot determine its fact.
const (
	Unknown   = "Unknown"
	NoGPU     = "No GPU found"
	NoBattery = "No Battery"
)

// CPUInfo is the processor brand and its logical core count.
type CPUInfo struct {
	Model string `yaml:"model"`
	Cores int    `yaml:"cores"`
}

// Usage is a used/total pair in bytes, used for RAM and swap.
type Usage struct {
	Used  uint64 `yaml:"used"`
	Total uint64 `yaml:"total"`
}

// DiskUsage describes one mounted filesystem.
type DiskUsage struct {
	Mountpoint string `yaml:"mountpoint"`
	Total      uint64 `yaml:"total"`
	Used       uint64 `yaml:"used"`
}

// PackageCount is the number of packages a package manager reports as installed.
type PackageCount struct {
	Manager string `yaml:"manager"`
	Count   uint64 `yaml:"count"`
}

// SystemInfo holds the facts gathered in a single run.
type SystemInfo struct {
	// User is the current user's login name
	User string `yaml:"user"`

	// Hostname is the computer's network name
	Hostname string `yaml:"hostname"`

	// OS is the distribution's pretty name, e.g. "Zorin OS 17.1"
	OS string `yaml:"os"`

	// Host is the machine vendor and product name
	Host string `yaml:"host"`

	// Kernel is the kernel release
	Kernel string `yaml:"kernel"`

	// Arch is the machine architecture, e.g. "x86_64"
	Arch string `yaml:"arch"`

	CPU    CPUInfo `yaml:"cpu"`
	GPU    string  `yaml:"gpu"`
	Memory Usage   `yaml:"memory"`
	Swap   Usage   `yaml:"swap"`

	// Uptime is formatted as "Xh Ym Zs"
	Uptime string `yaml:"uptime"`

	Resolution   string `yaml:"resolution"`
	DE           string `yaml:"de"`
	WM           string `yaml:"wm"`
	WMTheme      string `yaml:"wm_theme"`
	GTKTheme     string `yaml:"gtk_theme"`
	IconTheme    string `yaml:"icon_theme"`
	Terminal     string `yaml:"terminal"`
	TerminalFont string `yaml:"terminal_font"`
	SystemFont   string `yaml:"system_font"`

	Disks []DiskUsage `yaml:"disks"`

	// LocalIP is the primary local IPv4 address
	LocalIP string `yaml:"local_ip"`

	// Battery is "<percentage> [<state>]"
	Battery string `yaml:"battery"`

	// Locale is the value of $LANG
	Locale string `yaml:"locale"`

	Packages []PackageCount `yaml:"packages"`
}

// GetSystemInfo runs every probe against the live host and returns the result.
// Probe failures are logged at debug level and replaced by fallback values.
func GetSystemInfo(ctx context.Context, logger *slog.Logger) *SystemInfo {
	return NewProber(logger).Collect(ctx)
}
