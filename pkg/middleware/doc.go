// Package middleware provides HTTP middleware for the tabs server's chi router.
//
// This package includes:
//   - OpenTelemetry tracing, one span per HTTP request
//   - Prometheus request metrics
//   - Structured request logging with log/slog
//
// # OpenTelemetry Middleware
//
//	r := chi.NewRouter()
//	r.Use(middleware.Tracing(
//	    middleware.WithTracerName("tabsd"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer comes from the global OpenTelemetry provider; see
// internal/tracing for how tabsd installs one.
//
// # Prometheus Metrics
//
//	reg := prometheus.NewRegistry()
//	r.Use(middleware.Metrics(middleware.WithRegistry(reg)))
//
// Collected metrics, under the configured namespace:
//   - http_requests_total{method,route,status}
//   - http_request_duration_seconds{method,route}
//   - http_requests_in_flight
//
// Every middleware wraps the response writer with chi's WrapResponseWriter,
// which keeps http.Hijacker available for WebSocket upgrades.
package middleware
