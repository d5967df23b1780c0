// Package netutil finds the address other devices on the LAN can use to reach this host.
package netutil

import (
	"net"
)

// Fallback is returned when no usable interface address exists.
const Fallback = "localhost"

// LocalIPv4 returns the first non-loopback IPv4 address of an interface
// that is up, or Fallback.
func LocalIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return Fallback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if ip := firstIPv4(addrs); ip != "" {
			return ip
		}
	}
	return Fallback
}

func firstIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}
