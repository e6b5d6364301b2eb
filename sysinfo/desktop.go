package sysinfo

import (
	"context"
	"strings"
)

// desktopNames maps a substring of $DESKTOP_SESSION to a display name. Order
// matters: Zorin sessions also contain "gnome".
var desktopNames = []struct {
	match, name string
}{
	{"zorin", "Zorin"},
	{"gnome", "GNOME"},
	{"kde", "KDE Plasma"},
	{"xfce", "XFCE"},
	{"lxqt", "LXQt"},
	{"lxde", "LXDE"},
	{"mate", "MATE"},
	{"cinnamon", "Cinnamon"},
	{"budgie", "Budgie"},
	{"pantheon", "Pantheon"},
}

// session returns the lowercased $DESKTOP_SESSION.
func (p *Prober) session() string {
	return strings.ToLower(p.env("DESKTOP_SESSION"))
}

// gsetting reads one key through gsettings, stripped of GVariant quoting.
func (p *Prober) gsetting(ctx context.Context, schema, key string) (string, error) {
	out, err := p.runString(ctx, "gsettings", "get", schema, key)
	if err != nil {
		return "", err
	}
	v := trimSetting(out)
	if v == "" {
		return "", errEmptyOutput
	}
	return v, nil
}

// Resolution returns the active display mode, e.g. "1920x1080".
func (p *Prober) Resolution(ctx context.Context) string {
	if lines, err := p.runLines(ctx, "xrandr"); err == nil {
		for _, line := range lines {
			if !strings.Contains(line, "*") {
				continue
			}
			if fields := strings.Fields(line); len(fields) > 0 {
				return fields[0]
			}
		}
	}

	lines, err := p.runLines(ctx, "xdpyinfo")
	if err != nil {
		return p.fail("resolution", err, Unknown)
	}
	for _, line := range lines {
		if !strings.Contains(line, "dimensions:") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 1 {
			return fields[1]
		}
	}
	return p.fail("resolution", errNoMatch, Unknown)
}

// DesktopEnvironment names the running desktop from $DESKTOP_SESSION.
func (p *Prober) DesktopEnvironment() string {
	s := p.session()
	if s == "" {
		return Unknown
	}
	for _, d := range desktopNames {
		if strings.Contains(s, d.match) {
			return d.name
		}
	}
	return Capitalize(s)
}

// WindowManager returns "Wayland" for Wayland sessions and asks wmctrl on X11.
func (p *Prober) WindowManager(ctx context.Context) string {
	switch strings.ToLower(p.env("XDG_SESSION_TYPE")) {
	case "wayland":
		return "Wayland"
	case "x11":
		lines, err := p.runLines(ctx, "wmctrl", "-m")
		if err != nil {
			return p.fail("wm", err, Unknown)
		}
		for _, line := range lines {
			if _, name, ok := strings.Cut(line, "Name:"); ok {
				if name = strings.TrimSpace(name); name != "" {
					return name
				}
			}
		}
		return p.fail("wm", errNoMatch, Unknown)
	}
	return Unknown
}

// WindowManagerTheme reads the WM theme from GNOME or KDE settings.
func (p *Prober) WindowManagerTheme(ctx context.Context) string {
	s := p.session()
	var (
		v   string
		err error
	)
	switch {
	case strings.Contains(s, "gnome") || strings.Contains(s, "zorin"):
		v, err = p.gsetting(ctx, "org.gnome.desktop.wm.preferences", "theme")
	case strings.Contains(s, "kde"):
		v, err = p.runString(ctx, "kreadconfig5", "--group", "WM", "--key", "theme")
	default:
		return Unknown
	}
	if err != nil {
		return p.fail("wm theme", err, Unknown)
	}
	return v
}

// GTKTheme returns the GTK theme name.
func (p *Prober) GTKTheme(ctx context.Context) string {
	v, err := p.gsetting(ctx, "org.gnome.desktop.interface", "gtk-theme")
	if err != nil {
		return p.fail("gtk theme", err, Unknown)
	}
	return v
}

// IconTheme returns the icon theme name.
func (p *Prober) IconTheme(ctx context.Context) string {
	v, err := p.gsetting(ctx, "org.gnome.desktop.interface", "icon-theme")
	if err != nil {
		return p.fail("icon theme", err, Unknown)
	}
	return v
}

// Terminal returns the first of $TERMINAL, $COLORTERM and $TERM that is set
// to a non-empty value.
func (p *Prober) Terminal() string {
	for _, key := range []string{"TERMINAL", "COLORTERM", "TERM"} {
		if v := p.env(key); v != "" {
			return v
		}
	}
	return Unknown
}

// TerminalFont returns the GNOME monospace font, or the font of the first
// Konsole profile.
func (p *Prober) TerminalFont(ctx context.Context) string {
	if v, err := p.gsetting(ctx, "org.gnome.desktop.interface", "monospace-font-name"); err == nil {
		return v
	}

	lines, err := p.runLines(ctx, "konsole", "--list-profiles")
	if err != nil {
		return p.fail("terminal font", err, Unknown)
	}
	profile := strings.TrimSpace(lines[0])
	if profile == "" {
		return p.fail("terminal font", errNoMatch, Unknown)
	}
	font, err := p.runString(ctx, "konsoleprofile", "Profile", profile, "-p", "Font")
	if err != nil {
		return p.fail("terminal font", err, Unknown)
	}
	return font
}

// SystemFont returns the interface font of GNOME or KDE.
func (p *Prober) SystemFont(ctx context.Context) string {
	s := p.session()
	var (
		v   string
		err error
	)
	switch {
	case strings.Contains(s, "gnome"):
		v, err = p.gsetting(ctx, "org.gnome.desktop.interface", "font-name")
	case strings.Contains(s, "kde"):
		v, err = p.runString(ctx, "kreadconfig5", "--group", "General", "--key", "font")
	default:
		return Unknown
	}
	if err != nil {
		return p.fail("system font", err, Unknown)
	}
	return v
}
