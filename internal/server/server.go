package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/thinkscotty/contentspark/internal/ai"
	"github.com/thinkscotty/contentspark/internal/config"
	"github.com/thinkscotty/contentspark/internal/database"
	"github.com/thinkscotty/contentspark/internal/metrics"
	"github.com/thinkscotty/contentspark/internal/studio"
)

type Server struct {
	cfg     config.Config
	db      *database.DB
	studio  *studio.Studio
	ai      *ai.Client
	palette []config.Accent
	metrics *metrics.Metrics
	version string
	httpSrv *http.Server
}

func New(cfg config.Config, db *database.DB, st *studio.Studio, aiClient *ai.Client, palette []config.Accent, m *metrics.Metrics, version string) *Server {
	return &Server{
		cfg:     cfg,
		db:      db,
		studio:  st,
		ai:      aiClient,
		palette: palette,
		metrics: m,
		version: version,
	}
}

// Handler returns the routed API with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.routes(mux)
	return recoveryMiddleware(loggingMiddleware(s.metricsMiddleware(mux)))
}

// Start sets up routes and starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	slog.Info("Starting server", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) routes(mux *http.ServeMux) {
	// Public
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	// Generation
	mux.Handle("POST /api/v1/posts", s.requireAPIKey(http.HandlerFunc(s.handleCreatePost)))
	mux.Handle("POST /api/v1/quotes", s.requireAPIKey(http.HandlerFunc(s.handleCreateQuotes)))
	mux.Handle("POST /api/v1/illustrated", s.requireAPIKey(http.HandlerFunc(s.handleCreateIllustrated)))
	mux.Handle("GET /api/v1/trends", s.requireAPIKey(http.HandlerFunc(s.handleTrends)))
	mux.Handle("GET /api/v1/options", s.requireAPIKey(http.HandlerFunc(s.handleOptions)))

	// State
	mux.Handle("GET /api/v1/history", s.requireAPIKey(http.HandlerFunc(s.handleHistory)))
	mux.Handle("DELETE /api/v1/history", s.requireAPIKey(http.HandlerFunc(s.handleClearHistory)))
	mux.Handle("GET /api/v1/theme", s.requireAPIKey(http.HandlerFunc(s.handleTheme)))
	mux.Handle("PUT /api/v1/theme", s.requireAPIKey(http.HandlerFunc(s.handleThemeUpdate)))

	// Analytics and settings
	mux.Handle("GET /api/v1/analytics", s.requireAPIKey(http.HandlerFunc(s.handleAnalytics)))
	mux.Handle("GET /api/v1/settings", s.requireAPIKey(http.HandlerFunc(s.handleSettings)))
	mux.Handle("POST /api/v1/settings", s.requireAPIKey(http.HandlerFunc(s.handleSettingsUpdate)))
	mux.Handle("POST /api/v1/settings/gemini/test", s.requireAPIKey(http.HandlerFunc(s.handleGeminiKeyTest)))
	mux.Handle("GET /api/v1/settings/ollama/models", s.requireAPIKey(http.HandlerFunc(s.handleOllamaModels)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "ok", "version": s.version})
}
