package sysinfo

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"
)

const osReleasePath = "/etc/os-release"

// goos is the platform the OS probe reports for; tests override it.
var goos = runtime.GOOS

// placeholderProducts are DMI strings firmware vendors leave unset.
var placeholderProducts = map[string]bool{
	"to be filled by o.e.m.": true,
	"default string":         true,
	"system product name":    true,
	"system manufacturer":    true,
	"unknown":                true,
}

// OS returns the distribution name. On Linux NAME from os-release wins, then
// PRETTY_NAME, then the platform gopsutil detects, then plain "Linux".
func (p *Prober) OS(ctx context.Context) string {
	if goos != "linux" {
		version := Unknown
		if hi, err := p.Source.HostInfo(ctx); err == nil && hi.PlatformVersion != "" {
			version = hi.PlatformVersion
		}
		return fmt.Sprintf("%s %s", goos, version)
	}

	if data, err := p.ReadFile(osReleasePath); err == nil {
		if name, err := osReleaseName(data); err == nil {
			return name
		}
	} else {
		p.Logger.Debug("read os-release", "error", err)
	}

	hi, err := p.Source.HostInfo(ctx)
	if err != nil {
		return p.fail("os", err, "Linux")
	}
	if hi.Platform == "" {
		return "Linux"
	}
	return strings.TrimSpace(Capitalize(hi.Platform) + " " + hi.PlatformVersion)
}

// osReleaseName extracts NAME from os-release content, or PRETTY_NAME when
// NAME is missing.
func osReleaseName(data []byte) (string, error) {
	values := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		key, v, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok {
			continue
		}
		if v = strings.Trim(v, `"'`); v != "" {
			values[key] = v
		}
	}

	for _, key := range []string{"NAME", "PRETTY_NAME"} {
		if v, ok := values[key]; ok {
			return v, nil
		}
	}
	return "", errNoMatch
}

// Host returns the machine's vendor and product name.
func (p *Prober) Host() string {
	vendor, name, err := p.Source.Product()
	if err != nil {
		return p.fail("host", err, Unknown)
	}

	var parts []string
	for _, s := range []string{vendor, name} {
		s = strings.TrimSpace(s)
		if s == "" || placeholderProducts[strings.ToLower(s)] {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return Unknown
	}
	return strings.Join(parts, " ")
}

// Kernel returns the kernel release.
func (p *Prober) Kernel(ctx context.Context) string {
	if v, err := p.Source.KernelVersion(ctx); err == nil && v != "" {
		return v
	}
	release, _, err := p.Source.Uname()
	if err != nil || release == "" {
		return p.fail("kernel", err, Unknown)
	}
	return release
}

// Arch returns the machine architecture as the kernel names it (x86_64,
// aarch64), falling back to the Go architecture name.
func (p *Prober) Arch() string {
	if a, err := p.Source.KernelArch(); err == nil && a != "" {
		return a
	}
	if _, machine, err := p.Source.Uname(); err == nil && machine != "" {
		return machine
	}
	return runtime.GOARCH
}

// Uptime returns the time since boot as "Xh Ym Zs".
func (p *Prober) Uptime(ctx context.Context) string {
	secs, err := p.Source.Uptime(ctx)
	if err != nil {
		return p.fail("uptime", err, Unknown)
	}
	return FormatUptime(secs)
}

// Hostname returns the computer's network name.
func (p *Prober) Hostname() string {
	h, err := p.Source.Hostname()
	if err != nil || h == "" {
		return p.fail("hostname", err, Unknown)
	}
	return h
}

// User returns the current user's login name.
func (p *Prober) User() string {
	if u, err := p.Source.Username(); err == nil && u != "" {
		return u
	}
	if u := p.env("USER"); u != "" {
		return u
	}
	return Unknown
}

// Locale returns $LANG. An empty value counts as unset.
func (p *Prober) Locale() string {
	if v := p.env("LANG"); v != "" {
		return v
	}
	return Unknown
}
