package middlewares

import (
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/exceptions"
	"daily-journal-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-IP token bucket. A client that exhausts its bucket is blocked for
// blockTime. Clients idle for idleTTL are forgotten.
type RateLimiter struct {
	clients   map[string]*clientLimiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	idleTTL   time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, burst int, per, blockTime time.Duration) *RateLimiter {
	// A bucket left alone for burst*per is full again.
	idleTTL := per * time.Duration(burst)
	if idleTTL < blockTime {
		idleTTL = blockTime
	}
	if idleTTL <= 0 {
		idleTTL = time.Minute
	}

	return &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		blocked:   make(map[string]time.Time),
		requests:  burst,
		per:       per,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		log:       log,
		now:       time.Now,
	}
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if retryAfter, ok := l.allow(ip); !ok {
			l.log.Warn("RateLimiter.Limit client blocked",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			seconds := int(retryAfter.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
			utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(ip string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	if blockedUntil, found := l.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return blockedUntil.Sub(now), false
		}
		delete(l.blocked, ip)
	}

	client, exists := l.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(rate.Every(l.per), l.requests)}
		l.clients[ip] = client
	}
	client.lastSeen = now

	if !client.limiter.AllowN(now, 1) {
		l.blocked[ip] = now.Add(l.blockTime)
		return l.blockTime, false
	}
	return 0, true
}

// sweep runs at most once per idleTTL. Callers hold mu.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	l.lastSweep = now

	for ip, client := range l.clients {
		if now.Sub(client.lastSeen) >= l.idleTTL {
			delete(l.clients, ip)
		}
	}
	for ip, blockedUntil := range l.blocked {
		if !now.Before(blockedUntil) {
			delete(l.blocked, ip)
		}
	}
}
