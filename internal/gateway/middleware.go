package gateway

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/paw-chain/pawdex/internal/telemetry"
)

const requestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

// requestIDMiddleware echoes the caller's X-Request-ID or assigns a new one
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ipRateLimiter keeps one token bucket per client IP
type ipRateLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{rps: rate.Limit(rps), burst: burst}
}

func (l *ipRateLimiter) allow(ip string) bool {
	limiter, _ := l.limiters.LoadOrStore(ip, rate.NewLimiter(l.rps, l.burst))
	return limiter.(*rate.Limiter).Allow()
}

func (l *ipRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			respondJSON(w, http.StatusTooManyRequests, ErrorResponse{
				Error:     "rate limit exceeded",
				RequestID: requestID(r.Context()),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP reads RemoteAddr, which ProxyHeaders has already replaced with
// the forwarded address when one is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		latency := time.Since(start)
		s.metrics.observe(r.Context(), r.Method, rec.status, latency)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"latency", latency.String(),
			"request_id", requestID(r.Context()),
		)
	})
}

type gatewayMetrics struct {
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

func newGatewayMetrics() (*gatewayMetrics, error) {
	meter := telemetry.Meter()
	requests, err := meter.Int64Counter("gateway.requests",
		metric.WithDescription("HTTP requests served by the gateway"))
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram("gateway.request.duration",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &gatewayMetrics{requests: requests, latency: latency}, nil
}

func (m *gatewayMetrics) observe(ctx context.Context, method string, status int, latency time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.Int("http.status_code", status),
	)
	m.requests.Add(ctx, 1, attrs)
	m.latency.Record(ctx, latency.Seconds(), attrs)
}
