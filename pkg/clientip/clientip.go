package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Headers checked before falling back to RemoteAddr.
const (
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderRealIP       = "X-Real-IP"
)

// GetIP returns the normalised client address for r, or "" if none is valid.
func GetIP(r *http.Request) string {
	if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
		for candidate := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get(HeaderRealIP)); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return ""
	}
	return addr.Unmap().String()
}
