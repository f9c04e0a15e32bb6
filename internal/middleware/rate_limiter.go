package middleware

import (
	"net/http"
	"sync"
	"time"

	"nomina/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type rateMap struct {
	entries map[string]*rateEntry
	mu      sync.Mutex
}

func (m *rateMap) get(ip string) *rateEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[ip]
	if !ok {
		entry = &rateEntry{}
		m.entries[ip] = entry
	}
	return entry
}

func (m *rateMap) purge(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	purged := 0
	for ip, entry := range m.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(m.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

var (
	apiRates   = &rateMap{entries: make(map[string]*rateEntry)}
	loginRates = &rateMap{entries: make(map[string]*rateEntry)}
)

// RateLimiter returns a sliding-window per-IP rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return limiterFor(apiRates, limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.")
}

// LoginRateLimiter limits login attempts to 20 per minute per IP, tracked
// separately from the general API counter.
func LoginRateLimiter() gin.HandlerFunc {
	return limiterFor(loginRates, 20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
}

func limiterFor(m *rateMap, limit int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := m.get(c.ClientIP())

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// Periodically drop expired entries so IPs that never return do not
// accumulate forever.
const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purgedAPI := apiRates.purge(now)
		purgedLogin := loginRates.purge(now)
		if purgedAPI > 0 || purgedLogin > 0 {
			log.Debug().
				Int("api_entries_purged", purgedAPI).
				Int("login_entries_purged", purgedLogin).
				Msg("rate limiter maps purged")
		}
	}
}
