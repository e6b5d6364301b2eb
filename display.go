package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v2"

	"quickfetch/ascii"
	"quickfetch/sysinfo"
)

// stripColors are the bright foregrounds the color strip cycles through.
var stripColors = []int{91, 92, 93, 94, 95, 96, 97}

// renderPlain prints one "Label: value" line per fact followed by the color
// strip. This is the default layout and the fallback for distributions
// without artwork.
func renderPlain(w io.Writer, info *sysinfo.SystemInfo) {
	lines := []string{fmt.Sprintf("User: %s@%s", info.User, info.Hostname)}
	lines = append(lines, systemLines(info, plainLabel)...)
	lines = append(lines, desktopLines(info, plainLabel)...)
	lines = append(lines, diskLines(info, plainLabel)...)
	lines = append(lines, environmentLines(info, plainLabel)...)
	lines = append(lines, packageLines(info, plainLabel)...)
	lines = append(lines, colorStrip())

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// renderExperimental prints the distribution artwork and the facts side by
// side. Distributions without artwork get the plain layout.
func renderExperimental(w io.Writer, info *sysinfo.SystemInfo, gapSize int) {
	logo, ok := ascii.GetLogo(info.OS)
	if !ok {
		renderPlain(w, info)
		return
	}

	label := color.New(color.FgBlue).SprintFunc()
	accent := color.New(color.FgCyan).SprintFunc()

	userColored := accent(info.User)
	hostColored := accent(info.Hostname)
	// Use visible width (stripping ANSI) so colors don't break alignment
	sepLen := sysinfo.VisibleWidth(userColored) + sysinfo.VisibleWidth(hostColored) + 1

	infoLines := []string{
		"",
		fmt.Sprintf("%s@%s", userColored, hostColored),
		strings.Repeat("-", sepLen),
	}
	infoLines = append(infoLines, systemLines(info, label)...)
	infoLines = append(infoLines, desktopLines(info, label)...)
	infoLines = append(infoLines, environmentLines(info, label)...)
	infoLines = append(infoLines, diskLines(info, label)...)
	infoLines = append(infoLines, packageLines(info, label)...)
	infoLines = append(infoLines, "", colorStrip(), "")

	sideBySide(w, logo, infoLines, gapSize)
}

// renderYAML writes the report as a YAML document.
func renderYAML(w io.Writer, info *sysinfo.SystemInfo) error {
	out, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal system info: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// sideBySide writes logo and info top-aligned in two columns. Logo lines are
// padded to the widest logo line so the info column stays straight.
func sideBySide(w io.Writer, logo, infoLines []string, gapSize int) {
	logoWidth := 0
	for _, line := range logo {
		if vw := sysinfo.VisibleWidth(line); vw > logoWidth {
			logoWidth = vw
		}
	}

	maxLines := max(len(logo), len(infoLines))
	gap := strings.Repeat(" ", gapSize)

	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if pad := logoWidth - sysinfo.VisibleWidth(logoLine); pad > 0 {
				logoLine += strings.Repeat(" ", pad)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		fmt.Fprintf(w, "%s%s%s\n", logoLine, gap, infoLine)
	}
}

type labelFunc func(a ...interface{}) string

func plainLabel(a ...interface{}) string { return fmt.Sprint(a...) }

func field(label labelFunc, name, value string) string {
	return fmt.Sprintf("%s: %s", label(name), value)
}

func systemLines(info *sysinfo.SystemInfo, label labelFunc) []string {
	return []string{
		field(label, "OS", info.OS),
		field(label, "Host", info.Host),
		field(label, "Kernel", info.Kernel),
		field(label, "Architecture", info.Arch),
		field(label, "CPU", fmt.Sprintf("%s (%d cores)", info.CPU.Model, info.CPU.Cores)),
		field(label, "GPU", info.GPU),
		field(label, "Memory", usage(info.Memory.Used, info.Memory.Total)),
		field(label, "Swap", usage(info.Swap.Used, info.Swap.Total)),
		field(label, "Uptime", info.Uptime),
	}
}

func desktopLines(info *sysinfo.SystemInfo, label labelFunc) []string {
	return []string{
		field(label, "Resolution", info.Resolution),
		field(label, "DE", info.DE),
		field(label, "WM", info.WM),
		field(label, "WM Theme", info.WMTheme),
		field(label, "Theme", info.GTKTheme),
		field(label, "Icons", info.IconTheme),
		field(label, "Terminal", info.Terminal),
		field(label, "Terminal Font", info.TerminalFont),
		field(label, "System Font", info.SystemFont),
	}
}

func environmentLines(info *sysinfo.SystemInfo, label labelFunc) []string {
	return []string{
		field(label, "Local IP", info.LocalIP),
		field(label, "Battery", info.Battery),
		field(label, "Locale", info.Locale),
	}
}

func diskLines(info *sysinfo.SystemInfo, label labelFunc) []string {
	lines := make([]string, 0, len(info.Disks))
	for _, d := range info.Disks {
		lines = append(lines, field(label, fmt.Sprintf("Disk (%s)", d.Mountpoint), usage(d.Used, d.Total)))
	}
	return lines
}

func packageLines(info *sysinfo.SystemInfo, label labelFunc) []string {
	lines := make([]string, 0, len(info.Packages))
	for _, p := range info.Packages {
		lines = append(lines, field(label, sysinfo.Capitalize(p.Manager), fmt.Sprintf("%d packages", p.Count)))
	}
	return lines
}

func usage(used, total uint64) string {
	return fmt.Sprintf("%s / %s", sysinfo.GiB(used), sysinfo.GiB(total))
}

// colorStrip returns a row of full blocks in the bright terminal colors,
// similar to other fetch utilities.
func colorStrip() string {
	var b strings.Builder
	for range 2 {
		for _, c := range stripColors {
			fmt.Fprintf(&b, "\033[%dm█", c)
		}
	}
	b.WriteString(sysinfo.ColorReset)
	return b.String()
}
