package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit applies a per-client token bucket. Limiters are created lazily
// per IP and pruned when idle so the map does not grow without bound.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	type entry struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	clients := make(map[string]*entry)

	prune := func(now time.Time) {
		for ip, e := range clients {
			if now.Sub(e.lastSeen) > 3*per {
				delete(clients, ip)
			}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			now := time.Now()

			mu.Lock()
			e, ok := clients[ip]
			if !ok {
				e = &entry{limiter: rate.NewLimiter(rate.Limit(float64(limit)/per.Seconds()), limit)}
				clients[ip] = e
				if len(clients)%256 == 0 {
					prune(now)
				}
			}
			e.lastSeen = now
			allowed := e.limiter.Allow()
			mu.Unlock()

			if !allowed {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip == "" {
				continue
			}
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	} else if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}

	return r.RemoteAddr
}
