package sysinfo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	upowerBatteryPath = "/org/freedesktop/UPower/devices/battery_BAT0"
	sysfsBatteryDir   = "/sys/class/power_supply/BAT0"
)

// Battery returns "<percentage> [<state>]" for the first battery. upower is
// asked first; without it the kernel's power_supply class is read directly.
func (p *Prober) Battery(ctx context.Context) string {
	lines, err := p.runLines(ctx, "upower", "-i", upowerBatteryPath)
	if err == nil {
		return parseUpower(lines)
	}
	p.Logger.Debug("upower", "error", err)

	b, err := p.sysfsBattery()
	if err != nil {
		return p.fail("battery", err, NoBattery)
	}
	return b
}

// parseUpower pulls percentage and state out of `upower -i` output. Missing
// keys are reported as Unknown.
func parseUpower(lines []string) string {
	percentage, state := Unknown, Unknown
	for _, line := range lines {
		switch {
		case strings.Contains(line, "percentage:"):
			percentage = upowerValue(line)
		case strings.Contains(line, "state:"):
			state = upowerValue(line)
		}
	}
	return fmt.Sprintf("%s [%s]", percentage, state)
}

func upowerValue(line string) string {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return Unknown
	}
	return strings.TrimSpace(parts[1])
}

func (p *Prober) sysfsBattery() (string, error) {
	capacity, err := p.ReadFile(filepath.Join(sysfsBatteryDir, "capacity"))
	if err != nil {
		return "", fmt.Errorf("read battery capacity: %w", err)
	}
	pct := strings.TrimSpace(string(capacity))
	if pct == "" {
		return "", fmt.Errorf("read battery capacity: %w", errEmptyOutput)
	}

	state := Unknown
	if status, err := p.ReadFile(filepath.Join(sysfsBatteryDir, "status")); err == nil {
		if s := strings.TrimSpace(string(status)); s != "" {
			state = strings.ToLower(s)
		}
	}
	return fmt.Sprintf("%s%% [%s]", pct, state), nil
}
