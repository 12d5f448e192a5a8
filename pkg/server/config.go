package server

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/tabs/internal/errors"
	"github.com/vango-dev/tabs/pkg/render"
	"github.com/vango-dev/tabs/pkg/tabs"
)

// SessionConfig holds configuration for individual sessions.
type SessionConfig struct {
	// ReadTimeout is the maximum time to wait for a message from the client.
	// Heartbeats keep healthy connections inside it.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// HeartbeatInterval is the time between heartbeat pings.
	// Default: 30 seconds.
	HeartbeatInterval time.Duration

	// MaxMessageSize is the maximum size of an incoming WebSocket message.
	// Default: 64KB.
	MaxMessageSize int64

	// MaxEventQueue is the size of the event channel buffer.
	// Default: 64.
	MaxEventQueue int
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    64 * 1024,
		MaxEventQueue:     64,
	}
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	// Address is the host:port to listen on.
	// Default: "localhost:3000".
	Address string

	// HTTP timeouts.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// WebSocket buffer sizes.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the Origin header of WebSocket upgrades.
	// nil uses the gorilla/websocket same-origin check.
	CheckOrigin func(r *http.Request) bool

	// MaxSessions caps concurrent sessions. Zero means unlimited.
	MaxSessions int

	// Session configures each session.
	Session *SessionConfig

	// Page controls the page shell and client endpoints.
	Page render.PageConfig

	// Tabs are passed to every collection the server builds.
	Tabs []tabs.Option

	// MetricsNamespace prefixes every metric name.
	// Default: "tabs".
	MetricsNamespace string

	// Registry receives the server's collectors and backs /metrics.
	// nil creates a private registry.
	Registry *prometheus.Registry

	// TracerName names the OpenTelemetry tracer.
	// Default: "github.com/vango-dev/tabs/pkg/server".
	TracerName string

	// Logger is the base logger. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           "localhost:3000",
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		Session:           DefaultSessionConfig(),
		MetricsNamespace:  "tabs",
		TracerName:        "github.com/vango-dev/tabs/pkg/server",
	}
}

// withDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	d := DefaultServerConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = d.ReadBufferSize
	}
	if out.WriteBufferSize == 0 {
		out.WriteBufferSize = d.WriteBufferSize
	}
	if out.Session == nil {
		out.Session = d.Session
	} else {
		s := *out.Session
		ds := d.Session
		if s.ReadTimeout == 0 {
			s.ReadTimeout = ds.ReadTimeout
		}
		if s.WriteTimeout == 0 {
			s.WriteTimeout = ds.WriteTimeout
		}
		if s.HeartbeatInterval == 0 {
			s.HeartbeatInterval = ds.HeartbeatInterval
		}
		if s.MaxMessageSize == 0 {
			s.MaxMessageSize = ds.MaxMessageSize
		}
		if s.MaxEventQueue == 0 {
			s.MaxEventQueue = ds.MaxEventQueue
		}
		out.Session = &s
	}
	if out.MetricsNamespace == "" {
		out.MetricsNamespace = d.MetricsNamespace
	}
	if out.TracerName == "" {
		out.TracerName = d.TracerName
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return &out
}

// ValidateConfig checks the listen address.
func (c *ServerConfig) ValidateConfig() error {
	_, port, err := net.SplitHostPort(c.Address)
	if err != nil {
		return errors.New("E122").WithDetailf("address %q", c.Address).Wrap(err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return errors.New("E122").WithDetailf("port %q", port)
	}
	return nil
}
