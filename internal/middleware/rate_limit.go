package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per caller IP. Entries idle past ttl are
// evicted by a background sweep so the map stays bounded.
type ipLimiter struct {
	sync.RWMutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

func Limit(rps, burst int, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	l := &ipLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}

	go l.sweep()

	return l.middleware(logger)
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.RLock()
	c, ok := l.clients[ip]
	l.RUnlock()

	if !ok {
		limiter := rate.NewLimiter(l.limit, l.burst)
		l.Lock()
		l.clients[ip] = &client{limiter, time.Now()}
		l.Unlock()
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

func (l *ipLimiter) sweep() {
	for {
		time.Sleep(time.Minute)
		l.Lock()
		for ip, c := range l.clients {
			if time.Since(c.lastSeen) > l.ttl {
				delete(l.clients, ip)
			}
		}
		l.Unlock()
	}
}

func (l *ipLimiter) middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				logger.Error("rate limiter failed to parse remote addr", slog.String("error", err.Error()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.get(ip).Allow() {
				logger.Warn("rate limit exceeded", slog.String("ip", ip))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
