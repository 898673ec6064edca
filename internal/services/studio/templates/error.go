package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
)

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(statusCode int, studioName string) string {
	return strconv.Itoa(statusCode) + " " + http.StatusText(statusCode) + " | " + strings.TrimSpace(studioName)
}

// ErrorState renders the error body: status, message and a link home.
func ErrorState(statusCode int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkupWriter(ctx, w)
		m.open("section", "class", "section error-state", "data-section", "error")
		m.open("div", "class", "container container-narrow")
		m.element("h1", strconv.Itoa(statusCode)+" "+http.StatusText(statusCode), "class", "section-title")
		if message = strings.TrimSpace(message); message != "" {
			m.element("p", message, "class", "section-subtitle")
		}
		m.element("a", "Back to home", "class", "error-home", "href", "/")
		m.close("div")
		m.close("section")
		return m.err
	})
}

// ErrorPage renders a full error document that keeps the studio footer.
func ErrorPage(statusCode int, message string, c content.Content) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		studio := c.Studio()
		opts := DocumentOptions{
			Title: ErrorPageTitle(statusCode, studio.Name),
			Lang:  c.Locale().String(),
		}
		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			m := newMarkupWriter(ctx, w)
			m.open("div", "class", "landing")
			m.open("main")
			m.render(ErrorState(statusCode, message))
			m.close("main")
			m.render(Footer(studio, c.SocialLinks(), c.Footer()))
			m.close("div")
			return m.err
		})
		return Document(opts).Render(templ.WithChildren(ctx, body), w)
	})
}
