package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware rejects requests from blocked CIDR ranges.
// Invalid entries in the blocklist are skipped.
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blockedCIDRs := make([]*net.IPNet, 0, len(blocklist))
	for _, cidr := range blocklist {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err == nil {
			blockedCIDRs = append(blockedCIDRs, ipNet)
		}
	}

	return func(c *gin.Context) {
		clientIP := net.ParseIP(ClientIP(c))
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				c.AbortWithStatus(403)
				return
			}
		}

		c.Next()
	}
}
