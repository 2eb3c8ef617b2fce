package preview

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/gee/internal/config"
	"github.com/vango-dev/gee/internal/document"
	"github.com/vango-dev/gee/internal/errors"
	"github.com/vango-dev/gee/pkg/gee"
	"github.com/vango-dev/gee/pkg/metrics"
	"github.com/vango-dev/gee/pkg/render"
	"github.com/vango-dev/gee/pkg/vdom"
)

// Options configures a Server.
type Options struct {
	// Document is the path of the YAML or JSON document to serve.
	Document string

	// Config supplies builder, render and serve settings.
	Config *config.Config

	// Logger receives request and rebuild logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry collects builder metrics. A private registry is created
	// when nil.
	Registry *prometheus.Registry

	// OnRebuild is called after every rebuild with its error, if any.
	OnRebuild func(err error)
}

// Server renders a document and serves the preview routes.
type Server struct {
	opts      Options
	logger    *slog.Logger
	hub       *Hub
	registry  *prometheus.Registry
	collector *metrics.Collector
	renderer  *render.Renderer

	mu       sync.RWMutex
	page     []byte
	captures map[string]map[string]string
	lastErr  error
}

// NewServer creates a server. Call Rebuild before serving to render the
// initial page.
func NewServer(opts Options) *Server {
	if opts.Config == nil {
		opts.Config = config.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	return &Server{
		opts:      opts,
		logger:    logger.With("component", "preview"),
		hub:       NewHub(),
		registry:  registry,
		collector: metrics.NewCollector(metrics.WithRegistry(registry)),
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty: opts.Config.Render.Pretty,
			Indent: opts.Config.Render.Indent,
		}),
	}
}

// Hub returns the reload hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Rebuild reads, evaluates and renders the document. On failure the last
// good page is kept and connected browsers show the error.
func (s *Server) Rebuild(ctx context.Context) error {
	start := time.Now()
	page, captures, err := s.build(ctx)

	s.mu.Lock()
	s.lastErr = err
	if err == nil {
		s.page = page
		s.captures = captures
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("rebuild failed", "document", s.opts.Document, "code", errors.CodeOf(err), "err", err)
		s.hub.Error(err.Error())
	} else {
		s.logger.Info("rebuilt", "document", s.opts.Document, "duration", time.Since(start))
		s.hub.Reload()
	}
	if s.opts.OnRebuild != nil {
		s.opts.OnRebuild(err)
	}
	return err
}

func (s *Server) build(ctx context.Context) ([]byte, map[string]map[string]string, error) {
	tree, err := document.ReadFile(s.opts.Document)
	if err != nil {
		return nil, nil, err
	}

	opts := append(s.opts.Config.BuilderOptions(),
		gee.WithLogger(s.logger),
		gee.WithObserver(s.collector),
	)
	ev, err := document.Evaluate(ctx, vdom.NewBuilder(opts...), tree)
	if err != nil {
		return nil, nil, err
	}

	var buf strings.Builder
	err = s.renderer.RenderPage(&buf, render.Page{
		Title: s.opts.Config.Render.Title,
		Head:  ReloadScript,
		Body:  ev.Root.Node,
	})
	if err != nil {
		return nil, nil, errors.New("G060").WithDetail(err.Error()).Wrap(err)
	}

	captures := make(map[string]map[string]string, len(ev.Captures))
	for path, caps := range ev.Captures {
		rendered := make(map[string]string, len(caps))
		for name, node := range caps {
			html, err := s.renderer.RenderToString(node)
			if err != nil {
				return nil, nil, errors.New("G060").WithPath(path).WithDetail(err.Error()).Wrap(err)
			}
			rendered[name] = html
		}
		captures[path] = rendered
	}
	return []byte(buf.String()), captures, nil
}

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Get("/captures", s.handleCaptures)
	r.Handle(ReloadPath, s.hub)
	if s.opts.Config.Serve.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	page, lastErr := s.page, s.lastErr
	s.mu.RUnlock()

	if page == nil {
		msg := "document has not been rendered"
		if lastErr != nil {
			msg = lastErr.Error()
		}
		http.Error(w, msg, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleCaptures(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	captures := s.captures
	s.mu.RUnlock()

	if captures == nil {
		captures = map[string]map[string]string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(captures)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Run serves on the configured address until ctx is done. When watching is
// enabled the document is rebuilt on change. A failed initial build is
// logged and served as an error until the document is fixed.
func (s *Server) Run(ctx context.Context) error {
	s.Rebuild(ctx)

	ln, err := net.Listen("tcp", s.opts.Config.Serve.Addr)
	if err != nil {
		return errors.New("G080").WithDetail(err.Error()).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. It does not perform the initial
// build.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.opts.Config.Serve.Watch {
		go func() {
			err := Watch(ctx, s.opts.Document, DefaultDebounce, func() {
				s.Rebuild(ctx)
			})
			if err != nil {
				s.logger.Error("watch failed", "document", s.opts.Document, "err", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", ln.Addr().String(), "document", s.opts.Document)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("G080").WithDetail(err.Error()).Wrap(err)
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("G080").WithDetail(err.Error()).Wrap(err)
	}
	return nil
}
