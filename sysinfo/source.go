package sysinfo

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// Source is the set of library-backed lookups the probes build on.
type Source interface {
	Hostname() (string, error)
	Username() (string, error)
	HostInfo(ctx context.Context) (*host.InfoStat, error)
	KernelVersion(ctx context.Context) (string, error)
	KernelArch() (string, error)
	Uname() (release, machine string, err error)
	Uptime(ctx context.Context) (uint64, error)
	CPUInfo(ctx context.Context) ([]cpu.InfoStat, error)
	CPUCount(ctx context.Context) (int, error)
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error)
	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
	Interfaces(ctx context.Context) (psnet.InterfaceStatList, error)
	GraphicsCards() ([]string, error)
	Product() (vendor, name string, err error)
}

// hostSource answers Source queries from the running host via gopsutil,
// ghw and the uname syscall.
type hostSource struct{}

func (hostSource) Hostname() (string, error) { return os.Hostname() }

func (hostSource) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (hostSource) HostInfo(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (hostSource) KernelVersion(ctx context.Context) (string, error) {
	return host.KernelVersionWithContext(ctx)
}

func (hostSource) KernelArch() (string, error) { return host.KernelArch() }

func (hostSource) Uname() (string, string, error) { return uname() }

func (hostSource) Uptime(ctx context.Context) (uint64, error) {
	return host.UptimeWithContext(ctx)
}

func (hostSource) CPUInfo(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (hostSource) CPUCount(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

func (hostSource) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (hostSource) SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(ctx)
}

func (hostSource) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

func (hostSource) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (hostSource) Interfaces(ctx context.Context) (psnet.InterfaceStatList, error) {
	return psnet.InterfacesWithContext(ctx)
}

// GraphicsCards lists "<vendor> <product>" for every PCI display device ghw
// can see.
func (hostSource) GraphicsCards() ([]string, error) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("failed to get GPU info: %w", err)
	}

	var cards []string
	for _, card := range info.GraphicsCards {
		if card.DeviceInfo == nil {
			continue
		}
		var parts []string
		if v := card.DeviceInfo.Vendor; v != nil && v.Name != "" {
			parts = append(parts, v.Name)
		}
		if p := card.DeviceInfo.Product; p != nil && p.Name != "" {
			parts = append(parts, p.Name)
		}
		if len(parts) > 0 {
			cards = append(cards, strings.Join(parts, " "))
		}
	}
	return cards, nil
}

func (hostSource) Product() (string, string, error) {
	info, err := ghw.Product(ghw.WithDisableWarnings())
	if err != nil {
		return "", "", fmt.Errorf("failed to get product info: %w", err)
	}
	return info.Vendor, info.Name, nil
}
