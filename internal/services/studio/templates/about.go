package templates

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Both are safe for concurrent use once built.
var (
	markdown  = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// About renders the studio blurb. The description is Markdown; raw HTML in
// it is dropped.
func About(about content.AboutCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := renderMarkdown(about.Description)
		if err != nil {
			return err
		}
		m := newMarkupWriter(ctx, w)
		m.open("section", "id", "about", "class", "section section-light", "data-section", SectionAbout)
		m.open("div", "class", "container container-narrow")
		m.element("h2", about.Title, "class", "section-title")
		m.open("div", "class", "about-body")
		m.raw(body)
		m.close("div")
		m.close("div")
		m.close("section")
		return m.err
	})
}

func renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render about markdown: %w", err)
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
