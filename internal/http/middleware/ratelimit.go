package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientWindow struct {
	start time.Time
	count int
}

var (
	rlMu    sync.Mutex
	clients = make(map[string]*clientWindow)
)

// SimpleRateLimit is an in-process fallback limiter for deployments without
// Redis. Per-IP fixed window; state is lost on restart, which is fine for
// its only job of slowing down brute force against the auth endpoints.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rlMu.Lock()
		w, ok := clients[ip]
		if !ok || now.Sub(w.start) > window {
			clients[ip] = &clientWindow{start: now, count: 1}
			rlMu.Unlock()
			c.Next()
			return
		}
		w.count++
		count := w.count
		rlMu.Unlock()

		if count > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
