package sysinfo

import (
	"context"
	"net"
	"slices"
)

// LocalIP returns the first IPv4 address of an interface that is up and not a
// loopback. Private (RFC 1918) addresses are preferred over public ones.
func (p *Prober) LocalIP(ctx context.Context) string {
	ifaces, err := p.Source.Interfaces(ctx)
	if err != nil {
		return p.fail("local ip", err, Unknown)
	}

	var fallback string
	for _, iface := range ifaces {
		if !slices.Contains(iface.Flags, "up") || slices.Contains(iface.Flags, "loopback") {
			continue
		}
		for _, a := range iface.Addrs {
			ip := parseAddr(a.Addr)
			if ip == nil || ip.IsLoopback() {
				continue
			}
			ip4 := ip.To4()
			if ip4 == nil {
				continue
			}
			if ip4.IsPrivate() {
				return ip4.String()
			}
			if fallback == "" {
				fallback = ip4.String()
			}
		}
	}

	if fallback != "" {
		return fallback
	}
	return p.fail("local ip", errNoMatch, Unknown)
}

// parseAddr accepts both CIDR ("10.0.0.2/24") and bare addresses.
func parseAddr(s string) net.IP {
	if ip, _, err := net.ParseCIDR(s); err == nil {
		return ip
	}
	return net.ParseIP(s)
}
