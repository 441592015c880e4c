package resolver

import (
	"context"
	"net"
	"strings"
	"time"
)

// LookupAddr is the subset of *net.Resolver used here.
type LookupAddr interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// HostnameResolver turns the local side of a connection into a host name.
type HostnameResolver struct {
	lookup  LookupAddr
	timeout time.Duration
}

func NewHostnameResolver(lookup LookupAddr, timeout time.Duration) *HostnameResolver {
	if lookup == nil {
		lookup = net.DefaultResolver
	}

	return &HostnameResolver{lookup: lookup, timeout: timeout}
}

// Hostname returns the first reverse-DNS name of addr's IP. It falls back to
// the IP literal when the lookup fails or finds nothing, and to "localhost"
// when addr carries no IP at all.
func (h *HostnameResolver) Hostname(ctx context.Context, addr net.Addr) string {
	ip := ipOf(addr)
	if ip == nil {
		return "localhost"
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	names, err := h.lookup.LookupAddr(ctx, ip.String())
	if err != nil || len(names) == 0 {
		return ip.String()
	}

	return strings.TrimSuffix(names[0], ".")
}

func ipOf(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.TCPAddr:
		if a == nil {
			return nil
		}
		return a.IP
	case *net.UDPAddr:
		if a == nil {
			return nil
		}
		return a.IP
	case nil:
		return nil
	}

	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return nil
	}
	return net.ParseIP(host)
}
