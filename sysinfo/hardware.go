package sysinfo

import (
	"context"
	"strings"
)

// CPU returns the brand of the first processor and the logical core count.
func (p *Prober) CPU(ctx context.Context) CPUInfo {
	info := CPUInfo{Model: Unknown}

	stats, err := p.Source.CPUInfo(ctx)
	if err != nil {
		p.fail("cpu", err, Unknown)
	} else if len(stats) > 0 {
		if m := strings.TrimSpace(stats[0].ModelName); m != "" {
			info.Model = m
		}
	}

	n, err := p.Source.CPUCount(ctx)
	if err != nil {
		p.fail("cpu cores", err, "0")
		return info
	}
	info.Cores = n
	return info
}

// Memory returns used and total physical memory in bytes.
func (p *Prober) Memory(ctx context.Context) Usage {
	vm, err := p.Source.VirtualMemory(ctx)
	if err != nil {
		p.fail("memory", err, "0")
		return Usage{}
	}
	return Usage{Used: vm.Used, Total: vm.Total}
}

// Swap returns used and total swap in bytes.
func (p *Prober) Swap(ctx context.Context) Usage {
	sw, err := p.Source.SwapMemory(ctx)
	if err != nil {
		p.fail("swap", err, "0")
		return Usage{}
	}
	return Usage{Used: sw.Used, Total: sw.Total}
}

// Disks reports every mounted filesystem outside /snap. Used space is total
// minus the space available to unprivileged users.
func (p *Prober) Disks(ctx context.Context) []DiskUsage {
	parts, err := p.Source.Partitions(ctx)
	if err != nil {
		p.fail("disks", err, "none")
		return []DiskUsage{}
	}

	disks := []DiskUsage{}
	seen := make(map[string]bool)
	for _, part := range parts {
		mp := part.Mountpoint
		if mp == "" || strings.HasPrefix(mp, "/snap") || seen[mp] {
			continue
		}
		seen[mp] = true

		u, err := p.Source.DiskUsage(ctx, mp)
		if err != nil {
			p.Logger.Debug("disk usage", "mountpoint", mp, "error", err)
			continue
		}
		used := uint64(0)
		if u.Total > u.Free {
			used = u.Total - u.Free
		}
		disks = append(disks, DiskUsage{Mountpoint: mp, Total: u.Total, Used: used})
	}
	return disks
}

// GPU returns the first display controller lspci lists, falling back to the
// PCI database ghw reads.
func (p *Prober) GPU(ctx context.Context) string {
	lines, err := p.runLines(ctx, "lspci")
	if err == nil {
		if gpu, err := parseLspciGPU(lines); err == nil {
			return gpu
		}
	} else {
		p.Logger.Debug("lspci", "error", err)
	}

	cards, err := p.Source.GraphicsCards()
	if err != nil {
		return p.fail("gpu", err, NoGPU)
	}
	if len(cards) == 0 {
		return NoGPU
	}
	return cards[0]
}

func parseLspciGPU(lines []string) (string, error) {
	for _, line := range lines {
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D controller") {
			continue
		}
		if _, desc, ok := strings.Cut(line, ": "); ok {
			return strings.TrimSpace(desc), nil
		}
	}
	return "", errNoMatch
}
