// Package pagerender centralizes full-page rendering for studio modules.
package pagerender

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/louisbranch/comingsoon/internal/services/studio/platform/pagerender"

// ErrRender marks failures that happened before anything was written to the
// response.
var ErrRender = errors.New("render page")

// Page describes one full-document response.
type Page struct {
	Name       string
	StatusCode int
	Component  templ.Component
}

// Renderer writes pages and records a span per render.
type Renderer struct {
	tracer trace.Tracer
}

// New builds a Renderer on tp. A nil provider uses the global one.
func New(tp trace.TracerProvider) Renderer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return Renderer{tracer: tp.Tracer(instrumentationName)}
}

// WritePage renders page into a buffer and only then writes headers and body,
// so a failed render leaves the response untouched for the caller to handle.
func (r Renderer) WritePage(w http.ResponseWriter, req *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	if page.Component == nil {
		return fmt.Errorf("%w %q: component is required", ErrRender, page.Name)
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	tracer := r.tracer
	if tracer == nil {
		tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}

	ctx, span := tracer.Start(httpx.RequestContext(req), "render "+page.Name,
		trace.WithAttributes(
			attribute.String("page.name", page.Name),
			attribute.Int("http.response.status_code", statusCode),
		),
	)
	defer span.End()

	var buf bytes.Buffer
	if err := page.Component.Render(ctx, &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return fmt.Errorf("%w %q: %w", ErrRender, page.Name, err)
	}
	span.SetAttributes(attribute.Int("page.bytes", buf.Len()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}
