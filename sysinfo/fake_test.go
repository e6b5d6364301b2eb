package sysinfo

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

var errFake = errors.New("fake failure")

// fakeRunner answers commands by their full command line. Unknown commands
// fail as if the binary were missing.
type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (r *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, line)
	out, ok := r.outputs[line]
	if !ok {
		return nil, errFake
	}
	return []byte(out), nil
}

// fakeSource returns canned values; a nil field makes its lookup fail.
type fakeSource struct {
	hostname   string
	username   string
	hostInfo   *host.InfoStat
	kernel     string
	kernelArch string
	release    string
	machine    string
	uptime     *uint64
	cpus       []cpu.InfoStat
	cores      int
	vmem       *mem.VirtualMemoryStat
	swap       *mem.SwapMemoryStat
	partitions []disk.PartitionStat
	usage      map[string]*disk.UsageStat
	ifaces     psnet.InterfaceStatList
	gpus       []string
	vendor     string
	product    string
}

func (f *fakeSource) Hostname() (string, error) { return orFail(f.hostname) }
func (f *fakeSource) Username() (string, error) { return orFail(f.username) }

func (f *fakeSource) HostInfo(context.Context) (*host.InfoStat, error) {
	if f.hostInfo == nil {
		return nil, errFake
	}
	return f.hostInfo, nil
}

func (f *fakeSource) KernelVersion(context.Context) (string, error) { return orFail(f.kernel) }
func (f *fakeSource) KernelArch() (string, error)                   { return orFail(f.kernelArch) }

func (f *fakeSource) Uname() (string, string, error) {
	if f.release == "" && f.machine == "" {
		return "", "", errFake
	}
	return f.release, f.machine, nil
}

func (f *fakeSource) Uptime(context.Context) (uint64, error) {
	if f.uptime == nil {
		return 0, errFake
	}
	return *f.uptime, nil
}

func (f *fakeSource) CPUInfo(context.Context) ([]cpu.InfoStat, error) {
	if f.cpus == nil {
		return nil, errFake
	}
	return f.cpus, nil
}

func (f *fakeSource) CPUCount(context.Context) (int, error) {
	if f.cores == 0 {
		return 0, errFake
	}
	return f.cores, nil
}

func (f *fakeSource) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	if f.vmem == nil {
		return nil, errFake
	}
	return f.vmem, nil
}

func (f *fakeSource) SwapMemory(context.Context) (*mem.SwapMemoryStat, error) {
	if f.swap == nil {
		return nil, errFake
	}
	return f.swap, nil
}

func (f *fakeSource) Partitions(context.Context) ([]disk.PartitionStat, error) {
	if f.partitions == nil {
		return nil, errFake
	}
	return f.partitions, nil
}

func (f *fakeSource) DiskUsage(_ context.Context, path string) (*disk.UsageStat, error) {
	u, ok := f.usage[path]
	if !ok {
		return nil, errFake
	}
	return u, nil
}

func (f *fakeSource) Interfaces(context.Context) (psnet.InterfaceStatList, error) {
	if f.ifaces == nil {
		return nil, errFake
	}
	return f.ifaces, nil
}

func (f *fakeSource) GraphicsCards() ([]string, error) {
	if f.gpus == nil {
		return nil, errFake
	}
	return f.gpus, nil
}

func (f *fakeSource) Product() (string, string, error) {
	if f.vendor == "" && f.product == "" {
		return "", "", errFake
	}
	return f.vendor, f.product, nil
}

func orFail(s string) (string, error) {
	if s == "" {
		return "", errFake
	}
	return s, nil
}

// newTestProber builds a Prober over fakes. env and files may be nil.
func newTestProber(outputs map[string]string, src *fakeSource, env map[string]string, files map[string]string) (*Prober, *fakeRunner) {
	r := &fakeRunner{outputs: outputs}
	if src == nil {
		src = &fakeSource{}
	}
	return &Prober{
		Runner: r,
		Source: src,
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		ReadFile: func(name string) ([]byte, error) {
			data, ok := files[name]
			if !ok {
				return nil, fs.ErrNotExist
			}
			return []byte(data), nil
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, r
}

func uptimeOf(v uint64) *uint64 { return &v }
