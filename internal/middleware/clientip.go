package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/m1z23r/drift/pkg/drift"
)

const ClientIPKey = "client_ip"

// RealIP resolves the client address once per request. Forwarding headers
// are read only when the socket peer is one of the trusted proxies;
// otherwise the peer address is the client.
func RealIP(trusted []netip.Prefix) drift.HandlerFunc {
	return func(c *drift.Context) {
		c.Set(ClientIPKey, resolveClientIP(c.Request, trusted))
		c.Next()
	}
}

// ClientIP returns the address stored by RealIP, or the socket peer when
// RealIP is not installed.
func ClientIP(c *drift.Context) string {
	if v, ok := c.Get(ClientIPKey); ok {
		if ip, ok := v.(string); ok && ip != "" {
			return ip
		}
	}
	return peerAddr(c.Request)
}

func resolveClientIP(r *http.Request, trusted []netip.Prefix) string {
	peer := peerAddr(r)
	if !isTrusted(peer, trusted) {
		return peer
	}

	// Walk X-Forwarded-For from the nearest hop and stop at the first
	// address no trusted proxy vouches for.
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		hops := strings.Split(forwarded, ",")
		client := ""
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				break
			}
			client = hop
			if !isTrusted(hop, trusted) {
				break
			}
		}
		if client != "" {
			return client
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		if _, err := netip.ParseAddr(realIP); err == nil {
			return realIP
		}
	}
	return peer
}

func peerAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
