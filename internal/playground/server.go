package playground

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lehtoroni/shorthand"
	"github.com/lehtoroni/shorthand/internal/config"
	"github.com/lehtoroni/shorthand/pkg/dom"
)

const tracerName = "shorthand/playground"

// reloadScript reconnects-and-reloads; injected into served pages when
// watching is enabled.
const reloadScript = `<script>
(function () {
  var ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = function (e) {
    var msg = JSON.parse(e.data);
    if (msg.type === "reload") location.reload();
  };
})();
</script>`

// Server is the playground HTTP server around one live document.
type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *shorthand.Registry
	hub      *reloadHub
	metrics  *metrics
	tracer   trace.Tracer

	mu sync.RWMutex
	sh *shorthand.Shorthand
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithRegisterer sets the Prometheus registerer metrics register
// against.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Server) { s.metrics = newMetrics(reg) }
}

// New loads cfg.File into a document and builds a server around it.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		logger:   slog.Default(),
		registry: shorthand.NewRegistry(),
		hub:      newReloadHub(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = newMetrics(nil)
	}

	if err := s.loadDocument(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadDocument parses cfg.File into a fresh document and swaps it in.
func (s *Server) loadDocument() error {
	f, err := os.Open(s.cfg.File)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	doc, err := dom.ParseDocument(f)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	sh, err := s.registry.Install(doc)
	if err != nil {
		return err
	}
	doc.FireReady()

	s.mu.Lock()
	if s.sh != nil {
		s.registry.Uninstall(s.sh.Document())
	}
	s.sh = sh
	s.mu.Unlock()
	return nil
}

// dispatcher returns the current document's dispatcher.
func (s *Server) dispatcher() *shorthand.Shorthand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sh
}

// Router builds the playground's HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handlePage)
	r.Get("/api/query", s.handleQuery)
	r.Get("/ws", s.hub.handleWebSocket)
	if s.cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := dom.OuterHTML(s.dispatcher().Document().Root())
	if s.cfg.Watch {
		if i := strings.LastIndex(page, "</body>"); i >= 0 {
			page = page[:i] + reloadScript + page[i:]
		} else {
			page += reloadScript
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

// queryMatch is one matched node in a query response.
type queryMatch struct {
	Tag   string `json:"tag"`
	ID    string `json:"id,omitempty"`
	Class string `json:"class,omitempty"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
}

type queryResponse struct {
	Selector string       `json:"selector"`
	Count    int          `json:"count"`
	Matches  []queryMatch `json:"matches"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	selector := r.URL.Query().Get("selector")
	if selector == "" {
		http.Error(w, "missing selector parameter", http.StatusBadRequest)
		s.metrics.queries.WithLabelValues("invalid").Inc()
		return
	}

	_, span := s.tracer.Start(r.Context(), "playground.query",
		trace.WithAttributes(attribute.String("selector", selector)))
	defer span.End()

	start := time.Now()
	col, err := s.dispatcher().Query(selector)
	s.metrics.queryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "selector compile failed")
		s.metrics.queries.WithLabelValues("error").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.Int("matches", col.Len()))
	s.metrics.queries.WithLabelValues("ok").Inc()
	s.metrics.queryMatches.Observe(float64(col.Len()))

	resp := queryResponse{Selector: selector, Count: col.Len(), Matches: []queryMatch{}}
	col.Each(func(one *shorthand.Collection) {
		id, _ := one.Attr("id")
		class, _ := one.Attr("class")
		resp.Matches = append(resp.Matches, queryMatch{
			Tag:   one.Get(0).Data,
			ID:    id,
			Class: class,
			Text:  one.Text(),
			HTML:  one.HTML(),
		})
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode query response", "err", err)
	}
}

// Run serves until ctx is canceled. With watching enabled the source
// file is polled alongside and browsers reloaded on change.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.Router(),
	}

	if s.cfg.Watch {
		w := newWatcher(s.cfg.File, s.cfg.WatchInterval.Std())
		w.OnChange(func() {
			if err := s.loadDocument(); err != nil {
				s.logger.Error("reload document", "file", s.cfg.File, "err", err)
				return
			}
			s.metrics.reloads.Inc()
			s.hub.notifyReload(s.cfg.File)
			s.logger.Info("document reloaded", "file", s.cfg.File, "clients", s.hub.clientCount())
		})
		go func() {
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error("watcher stopped", "err", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("playground listening", "addr", srv.Addr, "file", s.cfg.File)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
