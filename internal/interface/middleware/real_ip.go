package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIPHeaders are checked in order; for lists the left-most entry wins.
var clientIPHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// RealIP stores the client address under "real_ip" for the rate limiter and the
// access log. It falls back to c.ClientIP when no header holds a valid IP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", clientIP(c))
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	for _, h := range clientIPHeaders {
		v := c.GetHeader(h)
		if v == "" {
			continue
		}
		first, _, _ := strings.Cut(v, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
