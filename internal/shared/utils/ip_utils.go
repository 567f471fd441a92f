package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// proxyHeaders are consulted in order before the socket peer.
// X-Forwarded-For lists "client, proxy1, proxy2"; only the first entry counts.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// ExtractClientIP returns the caller's address as reported by the first
// proxy header holding a parseable IP, else the connection's remote host.
// An unparseable remote address yields "".
func ExtractClientIP(c *gin.Context) string {
	for _, h := range proxyHeaders {
		first, _, _ := strings.Cut(c.GetHeader(h), ",")
		if ip := strings.TrimSpace(first); isValidIP(ip) {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		host = c.Request.RemoteAddr
	}
	if isValidIP(host) {
		return host
	}
	return ""
}

func isValidIP(ip string) bool {
	return ip != "" && net.ParseIP(ip) != nil
}
