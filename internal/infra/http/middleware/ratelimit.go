package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const staleClientAfter = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PerClientLimiter hands out one token bucket per client IP. Stale buckets
// are swept on access, so no background goroutine is needed.
type PerClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewPerClientLimiter allows perMinute requests per client with a burst of
// the same size.
func NewPerClientLimiter(perMinute int) *PerClientLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &PerClientLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		now:     time.Now,
	}
}

func (l *PerClientLimiter) reserve(ip string) *rate.Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > staleClientAfter {
		for key, cl := range l.clients {
			if now.Sub(cl.lastSeen) > staleClientAfter {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.ReserveN(now, 1)
}

// Handler rejects requests over the budget with 429 and a Retry-After hint.
func (l *PerClientLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reservation := l.reserve(clientIP(r))
		if !reservation.OK() {
			writeTooManyRequests(w, 0)
			return
		}
		now := l.now()
		if delay := reservation.DelayFrom(now); delay > 0 {
			reservation.CancelAt(now)
			writeTooManyRequests(w, int(delay.Seconds())+1)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.burst))
		next.ServeHTTP(w, r)
	})
}

// clientIP uses RemoteAddr only; forwarded headers are client controlled.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeTooManyRequests(w http.ResponseWriter, retryAfterSecs int) {
	if retryAfterSecs > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSecs))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "rate limit exceeded",
		"code":  "RATE_LIMITED",
	})
}
