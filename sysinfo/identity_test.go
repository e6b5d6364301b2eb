package sysinfo

import (
	"context"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
)

func TestOS(t *testing.T) {
	tests := []struct {
		name  string
		goos  string
		files map[string]string
		src   *fakeSource
		want  string
	}{
		{
			name:  "name wins over pretty name",
			goos:  "linux",
			files: map[string]string{osReleasePath: "PRETTY_NAME=\"Fedora Linux 40 (Workstation Edition)\"\nNAME=\"Fedora Linux\"\n"},
			want:  "Fedora Linux",
		},
		{
			name:  "pretty name without name",
			goos:  "linux",
			files: map[string]string{osReleasePath: "PRETTY_NAME=Alpine\n"},
			want:  "Alpine",
		},
		{
			name:  "empty name uses pretty name",
			goos:  "linux",
			files: map[string]string{osReleasePath: "NAME=\"\"\nPRETTY_NAME='Void Linux'\n"},
			want:  "Void Linux",
		},
		{
			name:  "no names falls back to platform",
			goos:  "linux",
			files: map[string]string{osReleasePath: "ID=debian\nVERSION_ID=12\n"},
			src:   &fakeSource{hostInfo: &host.InfoStat{Platform: "debian", PlatformVersion: "12.5"}},
			want:  "Debian 12.5",
		},
		{
			name: "nothing known",
			goos: "linux",
			src:  &fakeSource{hostInfo: &host.InfoStat{}},
			want: "Linux",
		},
		{
			name: "other platform",
			goos: "darwin",
			src:  &fakeSource{hostInfo: &host.InfoStat{PlatformVersion: "14.4"}},
			want: "darwin 14.4",
		},
		{
			name: "other platform without version",
			goos: "freebsd",
			want: "freebsd Unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withGOOS(t, tc.goos)
			p, _ := newTestProber(nil, tc.src, nil, tc.files)
			if got := p.OS(context.Background()); got != tc.want {
				t.Fatalf("OS() = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestHostSkipsPlaceholders(t *testing.T) {
	tests := []struct {
		vendor, product, want string
	}{
		{"Dell Inc.", "XPS 15 9520", "Dell Inc. XPS 15 9520"},
		{"To Be Filled By O.E.M.", "To Be Filled By O.E.M.", Unknown},
		{"ASUS", "System Product Name", "ASUS"},
		{"", "", Unknown},
	}

	for _, tc := range tests {
		p, _ := newTestProber(nil, &fakeSource{vendor: tc.vendor, product: tc.product}, nil, nil)
		if got := p.Host(); got != tc.want {
			t.Fatalf("Host() with %q/%q = %q; want %q", tc.vendor, tc.product, got, tc.want)
		}
	}
}

func TestKernelAndArchFallBackToUname(t *testing.T) {
	p, _ := newTestProber(nil, &fakeSource{release: "6.8.0", machine: "aarch64"}, nil, nil)
	if got := p.Kernel(context.Background()); got != "6.8.0" {
		t.Fatalf("Kernel() = %q; want 6.8.0", got)
	}
	if got := p.Arch(); got != "aarch64" {
		t.Fatalf("Arch() = %q; want aarch64", got)
	}

	p, _ = newTestProber(nil, nil, nil, nil)
	if got := p.Arch(); got != runtime.GOARCH {
		t.Fatalf("Arch() = %q; want %q", got, runtime.GOARCH)
	}
}

func TestUserFallsBackToEnv(t *testing.T) {
	p, _ := newTestProber(nil, nil, map[string]string{"USER": "grace"}, nil)
	if got := p.User(); got != "grace" {
		t.Fatalf("User() = %q; want grace", got)
	}
}

func TestLocaleReadsLang(t *testing.T) {
	p, _ := newTestProber(nil, nil, map[string]string{"LANG": "C.UTF-8"}, nil)
	if got := p.Locale(); got != "C.UTF-8" {
		t.Fatalf("Locale() = %q; want C.UTF-8", got)
	}
}

func TestLocaleTreatsEmptyLangAsUnset(t *testing.T) {
	p, _ := newTestProber(nil, nil, map[string]string{"LANG": ""}, nil)
	if got := p.Locale(); got != Unknown {
		t.Fatalf("Locale() = %q; want %q", got, Unknown)
	}
}
