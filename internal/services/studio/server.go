// Package studio hosts the coming soon landing page service.
package studio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/comingsoon/internal/platform/timeouts"
	"github.com/louisbranch/comingsoon/internal/services/studio/app"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
	module "github.com/louisbranch/comingsoon/internal/services/studio/module"
	"github.com/louisbranch/comingsoon/internal/services/studio/modules"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/httpx"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/observability"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/pagerender"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/weberror"
	"go.opentelemetry.io/otel/trace"
)

// Config defines startup inputs for the studio service.
type Config struct {
	HTTPAddr string
	// Content defaults to the embedded content table when zero.
	Content content.Content
	// TracerProvider defaults to the global provider when nil.
	TracerProvider trace.TracerProvider
	// Logger receives request lines and defaults to log.Default().
	Logger *log.Logger
}

// Server hosts the studio HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	c := cfg.Content
	if c.IsZero() {
		c = content.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	renderer := pagerender.New(cfg.TracerProvider)
	deps := module.Dependencies{
		Content:  c,
		Renderer: renderer,
		Errors:   weberror.Writer{Content: c, Renderer: renderer},
	}
	h, err := app.Composer{}.Compose(app.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(h,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a studio server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose studio handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("studio server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown studio http server: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve studio http: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve studio http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
