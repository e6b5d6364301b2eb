package sysinfo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

var (
	errEmptyOutput = errors.New("empty output")
	errNoMatch     = errors.New("no matching line")
)

// Prober runs the individual probes. The zero value is not usable; build one
// with NewProber or fill every field (tests swap in fakes).
type Prober struct {
	Runner    Runner
	Source    Source
	LookupEnv func(key string) (string, bool)
	ReadFile  func(name string) ([]byte, error)
	Logger    *slog.Logger
}

// NewProber returns a Prober wired to the live host. A nil logger discards
// all output.
func NewProber(logger *slog.Logger) *Prober {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Prober{
		Runner:    execRunner{},
		Source:    hostSource{},
		LookupEnv: os.LookupEnv,
		ReadFile:  os.ReadFile,
		Logger:    logger,
	}
}

// Collect runs every probe in presentation order. Probes are independent and
// run one after another.
func (p *Prober) Collect(ctx context.Context) *SystemInfo {
	info := &SystemInfo{}

	info.OS = p.OS(ctx)
	info.Host = p.Host()
	info.Kernel = p.Kernel(ctx)
	info.Arch = p.Arch()
	info.CPU = p.CPU(ctx)
	info.Memory = p.Memory(ctx)
	info.Swap = p.Swap(ctx)
	info.Uptime = p.Uptime(ctx)
	info.Hostname = p.Hostname()
	info.User = p.User()
	info.GPU = p.GPU(ctx)
	info.Packages = p.Packages(ctx)
	info.Resolution = p.Resolution(ctx)
	info.DE = p.DesktopEnvironment()
	info.WM = p.WindowManager(ctx)
	info.WMTheme = p.WindowManagerTheme(ctx)
	info.GTKTheme = p.GTKTheme(ctx)
	info.IconTheme = p.IconTheme(ctx)
	info.Terminal = p.Terminal()
	info.TerminalFont = p.TerminalFont(ctx)
	info.SystemFont = p.SystemFont(ctx)
	info.Disks = p.Disks(ctx)
	info.LocalIP = p.LocalIP(ctx)
	info.Battery = p.Battery(ctx)
	info.Locale = p.Locale()

	return info
}

// env returns the value of key, or "" when it is unset.
func (p *Prober) env(key string) string {
	v, _ := p.LookupEnv(key)
	return v
}

// fail records a probe failure and hands back the fallback value.
func (p *Prober) fail(probe string, err error, fallback string) string {
	p.Logger.Debug("probe failed", "probe", probe, "error", err, "fallback", fallback)
	return fallback
}
