// Package templates renders the landing page sections as templ components.
//
// Each section is a pure function from a slice of the content table to a
// component; LandingPage composes them in their fixed order.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/platform/icons"
)

// markupWriter writes HTML fragments and keeps the first write error.
type markupWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkupWriter(ctx context.Context, w io.Writer) *markupWriter {
	return &markupWriter{ctx: ctx, w: w}
}

func (m *markupWriter) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markupWriter) text(s string) {
	m.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs alternates attribute names and values.
func (m *markupWriter) open(tag string, attrs ...string) {
	m.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		m.raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	m.raw(">")
}

func (m *markupWriter) close(tag string) {
	m.raw("</" + tag + ">")
}

// element writes a start tag, escaped text and the end tag.
func (m *markupWriter) element(tag, text string, attrs ...string) {
	m.open(tag, attrs...)
	m.text(text)
	m.close(tag)
}

func (m *markupWriter) render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func (m *markupWriter) icon(id icons.ID, class string) {
	m.render(Icon(id, class))
}

// safeURL neutralizes targets with schemes outside http, https, mailto, tel
// and ftp.
func safeURL(target string) string {
	return string(templ.URL(target))
}

// Icon renders an inline Lucide SVG.
func Icon(id icons.ID, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkupWriter(ctx, w)
		name, ok := icons.LucideName(id)
		if !ok {
			name, _ = icons.LucideName(icons.IDLink)
		}
		m.open("svg",
			"class", class,
			"xmlns", "http://www.w3.org/2000/svg",
			"width", "24",
			"height", "24",
			"viewBox", "0 0 24 24",
			"fill", "none",
			"stroke", "currentColor",
			"stroke-width", "2",
			"stroke-linecap", "round",
			"stroke-linejoin", "round",
			"aria-hidden", "true",
			"data-icon", name,
		)
		m.raw(icons.LucideGlyph(id))
		m.close("svg")
		return m.err
	})
}
