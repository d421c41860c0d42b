package ratelimit

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIP is the address publishes are counted against. Behind a trusted proxy it is
// the rightmost public hop of X-Forwarded-For, the one the proxy itself appended.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if hops := forwardedHops(r.Header.Get("X-Forwarded-For")); len(hops) > 0 {
			for i := len(hops) - 1; i >= 0; i-- {
				if public(hops[i]) {
					return hops[i]
				}
			}
			return hops[len(hops)-1]
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func forwardedHops(header string) []string {
	var hops []string
	for _, part := range strings.Split(header, ",") {
		if hop := strings.TrimSpace(part); hop != "" {
			hops = append(hops, hop)
		}
	}
	return hops
}

func public(value string) bool {
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return !addr.IsPrivate() && !addr.IsLoopback() && !addr.IsLinkLocalUnicast() && !addr.IsUnspecified()
}
