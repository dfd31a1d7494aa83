package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// writeLimiter 按 IP 记录窗口内的写请求时间
// 过期数据在请求路径上顺带清理，每个窗口最多整表扫描一次，不需要后台协程
type writeLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	hits        map[string][]time.Time
	lastSweep   time.Time
}

func newWriteLimiter(maxRequests int, window time.Duration) *writeLimiter {
	return &writeLimiter{
		maxRequests: maxRequests,
		window:      window,
		hits:        make(map[string][]time.Time),
		lastSweep:   time.Now(),
	}
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// allow 记录一次写请求，超过限制返回 false
func (l *writeLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		for key, ts := range l.hits {
			if kept := prune(ts, cutoff); len(kept) == 0 {
				delete(l.hits, key)
			} else {
				l.hits[key] = kept
			}
		}
		l.lastSweep = now
	}

	ts := prune(l.hits[ip], cutoff)
	if len(ts) >= l.maxRequests {
		l.hits[ip] = ts
		return false
	}
	l.hits[ip] = append(ts, now)
	return true
}

// WriteRateLimit 写接口限流中间件
// 每 IP 在 window 内最多 maxRequests 次写请求，超过则返回 429；GET/HEAD/OPTIONS 不计数
func WriteRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	if maxRequests <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newWriteLimiter(maxRequests, window)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "操作过于频繁，请稍后再试",
			})
			return
		}
		c.Next()
	}
}
