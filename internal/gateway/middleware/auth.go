package middleware

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/switmer/Get-Site-Styles-API/internal/gateway/apikey"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/usage"
)

// Auth checks X-API-Key against the key store, applies the per-key rate
// limit, and records the request in the usage log. Health checks bypass it
// at the router, not here.
func Auth(keys *apikey.Store, limiter *Limiter, log *usage.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(r.Header.Get("X-API-Key"))
		if key == "" {
			http.Error(w, "missing X-API-Key", http.StatusUnauthorized)
			return
		}
		if _, ok := keys.Lookup(key); !ok {
			http.Error(w, "invalid or revoked API key", http.StatusUnauthorized)
			return
		}
		if limiter != nil && !limiter.Allow(key) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if log != nil {
			log.Append(usage.Record{
				Key:      key,
				Endpoint: r.URL.Path,
				Status:   rec.status,
				Duration: time.Since(start).Milliseconds(),
			})
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrade work through the recorder.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return h.Hijack()
}
