package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tabs/internal/errors"
	"github.com/vango-dev/tabs/pkg/dom"
	"github.com/vango-dev/tabs/pkg/middleware"
	"github.com/vango-dev/tabs/pkg/render"
	"github.com/vango-dev/tabs/pkg/tabs"
)

// Server serves one host page and its live tab groups.
type Server struct {
	page     []byte // source markup, read-only after New
	rendered []byte // page with initial state applied
	etag     string
	groups   int

	config   *ServerConfig
	sessions *SessionManager
	metrics  *Metrics
	registry *prometheus.Registry
	tracer   trace.Tracer
	upgrader websocket.Upgrader
	router   chi.Router

	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a server for page. The page is parsed and rendered once; tab
// groups that fail to build are logged and left static.
func New(page []byte, config *ServerConfig) (*Server, error) {
	config = config.withDefaults()
	logger := config.Logger.With("component", "server")

	registry := config.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := NewMetrics(registry, config.MetricsNamespace)

	s := &Server{
		page:     page,
		config:   config,
		metrics:  metrics,
		registry: registry,
		sessions: NewSessionManager(config.MaxSessions, metrics, logger),
		tracer:   otel.Tracer(config.TracerName),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: logger,
	}

	if err := s.renderPage(); err != nil {
		return nil, err
	}
	s.router = s.routes()
	return s, nil
}

// renderPage builds the initial document and caches its HTML.
func (s *Server) renderPage() error {
	doc, err := dom.Parse(bytes.NewReader(s.page))
	if err != nil {
		return errors.New("E132").Wrap(err)
	}

	opts := append([]tabs.Option{}, s.config.Tabs...)
	opts = append(opts, tabs.WithLogger(s.logger))
	coll, err := tabs.NewCollection(doc, opts...)
	if coll == nil {
		return err
	}
	if err != nil {
		s.logger.Warn("tab groups skipped", "error", err)
	}
	s.groups = coll.Len()

	var buf bytes.Buffer
	if err := render.NewRenderer(render.RendererConfig{}).RenderPage(&buf, doc, s.config.Page); err != nil {
		return err
	}
	s.rendered = buf.Bytes()
	sum := sha256.Sum256(s.rendered)
	s.etag = fmt.Sprintf("%q", fmt.Sprintf("%x", sum[:8]))

	s.logger.Info("page rendered", "groups", s.groups, "bytes", len(s.rendered))
	return nil
}

func (s *Server) routes() chi.Router {
	page := s.config.Page
	clientPath := page.ClientScript
	if clientPath == "" {
		clientPath = render.DefaultClientScript
	}
	wsPath := page.WebSocketPath
	if wsPath == "" {
		wsPath = render.DefaultWebSocketPath
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Tracing(middleware.WithTracerName(s.config.TracerName)))
	r.Use(middleware.Metrics(
		middleware.WithRegistry(s.registry),
		middleware.WithNamespace(s.config.MetricsNamespace),
	))

	r.Get("/", s.servePage)
	r.Head("/", s.servePage)
	r.Get(clientPath, s.serveThinClient)
	r.Head(clientPath, s.serveThinClient)
	r.Get(wsPath, s.HandleWebSocket)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", s.serveHealth)
	return r
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", s.etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), s.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(s.rendered)
}

func (s *Server) serveHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "ok sessions=%d groups=%d\n", s.sessions.Count(), s.groups)
}

// HandleWebSocket upgrades the connection and starts a session.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.sessions.Full() {
		http.Error(w, "Too many sessions", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(s.config.Session.MaxMessageSize)

	sess, err := newSession(conn, s.page, s.config, s.metrics, s.tracer)
	if err != nil {
		s.logger.Error("session setup failed", "error", err)
		conn.Close()
		return
	}
	if err := s.sessions.Add(sess); err != nil {
		s.logger.Warn("session rejected", "error", err)
		sess.Close()
		return
	}

	sess.Start()
}

// Run starts the server and blocks until SIGINT/SIGTERM or a listen error.
func (s *Server) Run() error {
	return s.RunContext(context.Background())
}

// RunContext is Run with a context whose cancellation also triggers
// graceful shutdown.
func (s *Server) RunContext(ctx context.Context) error {
	if err := s.config.ValidateConfig(); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.sessions.Shutdown()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Groups returns the number of tab groups on the page.
func (s *Server) Groups() int {
	return s.groups
}

// Registry returns the Prometheus registry backing /metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}
