package sysinfo

import (
	"context"
	"strconv"
	"strings"
)

// packageManager counts installed packages with a shell pipeline. native, when
// set, is tried first.
type packageManager struct {
	name   string
	cmd    string
	native func() (uint64, error)
}

var packageManagers = []packageManager{
	{name: "dpkg", cmd: "dpkg-query -f '.\n' -W 2>/dev/null | wc -l"},
	{name: "apt", cmd: "apt list --installed 2>/dev/null | wc -l"},
	{name: "rpm", cmd: "rpm -qa 2>/dev/null | wc -l"},
	{name: "pacman", cmd: "pacman -Q 2>/dev/null | wc -l", native: pacmanLocalCount},
	{name: "dnf", cmd: "dnf list installed 2>/dev/null | wc -l"},
	{name: "snap", cmd: "snap list 2>/dev/null | wc -l"},
	{name: "flatpak", cmd: "flatpak list 2>/dev/null | wc -l"},
}

// Packages returns the package count of every manager that reports at least
// one installed package.
func (p *Prober) Packages(ctx context.Context) []PackageCount {
	counts := []PackageCount{}
	for _, pm := range packageManagers {
		n, ok := p.countPackages(ctx, pm)
		if ok && n > 0 {
			counts = append(counts, PackageCount{Manager: pm.name, Count: n})
		}
	}
	return counts
}

func (p *Prober) countPackages(ctx context.Context, pm packageManager) (uint64, bool) {
	if pm.native != nil {
		n, err := pm.native()
		if err == nil {
			return n, true
		}
		p.Logger.Debug("native package count", "manager", pm.name, "error", err)
	}

	out, err := p.runString(ctx, "sh", "-c", pm.cmd)
	if err != nil {
		p.Logger.Debug("package count", "manager", pm.name, "error", err)
		return 0, false
	}
	n, err := strconv.ParseUint(strings.TrimSpace(out), 10, 64)
	if err != nil {
		p.Logger.Debug("package count", "manager", pm.name, "error", err)
		return 0, false
	}
	return n, true
}
