package server

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/earshot/earshot/pkg/adapters/stt"
	"github.com/earshot/earshot/pkg/alerts"
	"github.com/earshot/earshot/pkg/classify"
	"github.com/earshot/earshot/pkg/logging"
	"github.com/earshot/earshot/pkg/metrics"
	"github.com/earshot/earshot/pkg/sessions"
)

type Config struct {
	Addr           string   `mapstructure:"addr"`
	AllowAnyOrigin bool     `mapstructure:"allow_any_origin"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if !c.AllowAnyOrigin && len(c.AllowedOrigins) == 0 {
		c.AllowAnyOrigin = true
	}
	return c
}

// Language is one supported recognition language as reported on the wire.
type Language struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// Deps carries the registries and adapters the handlers operate on. The
// server holds references; it owns no domain state of its own.
type Deps struct {
	Alerts          *alerts.Registry
	Sessions        *sessions.Registry
	Classifier      *classify.Classifier
	Recognizer      stt.Recognizer
	Languages       []Language
	DefaultLanguage string
	Observer        metrics.Observer
}

type Server struct {
	cfg      Config
	deps     Deps
	server   *http.Server
	upgrader websocket.Upgrader
	obs      metrics.Observer
	logger   *slog.Logger

	draining atomic.Bool
}

func New(cfg Config, deps Deps) *Server {
	cfg = cfg.withDefaults()
	if deps.Observer == nil {
		deps.Observer = metrics.NoopObserver{}
	}
	if deps.DefaultLanguage == "" {
		deps.DefaultLanguage = "vi-VN"
	}
	s := &Server{
		cfg:  cfg,
		deps: deps,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		obs:    deps.Observer,
		logger: logging.NewComponentLogger(slog.Default(), "server"),
	}
	s.upgrader.CheckOrigin = s.checkOrigin
	return s
}

// Handler builds the full route table. Exposed so tests can serve it with
// httptest.
func (s *Server) Handler() http.Handler {
	r := httprouter.New()

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)

	r.POST("/api/speech/upload", s.handleSpeechUpload)
	r.GET("/api/speech/languages", s.handleSpeechLanguages)
	r.GET("/api/speech/status", s.handleSpeechStatus)

	r.POST("/api/alerts/configure", s.handleAlertConfigure)
	r.GET("/api/alerts/settings", s.handleAlertSettings)
	r.GET("/api/alerts/history", s.handleAlertHistory)
	r.POST("/api/alerts/test", s.handleAlertTest)
	r.DELETE("/api/alerts/history/:id", s.handleAlertDelete)
	r.GET("/api/alerts/statistics", s.handleAlertStatistics)

	r.POST("/api/transcription/sessions", s.handleSessionStart)
	r.GET("/api/transcription/sessions", s.handleSessionList)
	r.POST("/api/transcription/sessions/:id/end", s.handleSessionEnd)
	r.GET("/api/transcription/sessions/:id/transcript", s.handleSessionTranscript)
	r.DELETE("/api/transcription/sessions/:id", s.handleSessionDelete)
	r.POST("/api/transcription/sessions/:id/export", s.handleSessionExport)
	r.GET("/api/transcription/live", s.handleLive)

	r.POST("/api/audio/classify", s.handleClassify)
	r.GET("/api/audio/sound-classes", s.handleSoundClasses)
	r.GET("/api/audio/critical-sounds", s.handleCriticalSounds)
	r.GET("/api/audio/status", s.handleClassifierStatus)

	return s.instrument(r)
}

func (s *Server) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.server = &http.Server{
		Addr:              s.cfg.Addr,
		ReadHeaderTimeout: 5 * time.Second,
		Handler:           s.Handler(),
	}
	go func() {
		<-ctx.Done()
		_ = s.server.Close()
	}()
	go func() {
		s.logger.Info("server_listening", "addr", s.cfg.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server_error", "error", err.Error())
		}
	}()
	return nil
}

func (s *Server) Stop() error {
	s.draining.Store(true)
	if s.server == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.obs.RecordEvent(metrics.Event{
			Name:  "http_request",
			Time:  start,
			Value: time.Since(start).Seconds(),
			Tags: map[string]string{
				"method": r.Method,
				"path":   r.URL.Path,
				"status": strconv.Itoa(sw.status),
			},
		})
	})
}

// statusWriter records the response code for the request event. Hijack is
// passed through so websocket upgrades keep working under the middleware.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return h.Hijack()
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if s.cfg.AllowAnyOrigin {
		return true
	}
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return true
	}
	origin = strings.TrimRight(origin, "/")
	originHost := strings.TrimPrefix(origin, "https://")
	originHost = strings.TrimPrefix(originHost, "http://")
	for _, allowed := range s.cfg.AllowedOrigins {
		a := strings.TrimRight(strings.TrimSpace(allowed), "/")
		if a == "" {
			continue
		}
		if strings.HasPrefix(a, "http://") || strings.HasPrefix(a, "https://") {
			if strings.EqualFold(a, origin) {
				return true
			}
			continue
		}
		if strings.EqualFold(a, originHost) {
			return true
		}
	}
	return false
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Earshot API",
		"version": "1.0.0",
		"status":  "running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
