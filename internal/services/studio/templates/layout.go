package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	pageTitleSuffix      = "Coming Soon"
	defaultStylesheetURL = "/static/studio.css"
	defaultLang          = "en"
)

// DocumentOptions configures the HTML document shell.
type DocumentOptions struct {
	Title         string
	Description   string
	Keywords      []string
	Lang          string
	StylesheetURL string
}

// ComposePageTitle appends the page suffix to a studio name.
func ComposePageTitle(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return pageTitleSuffix
	}
	if strings.HasSuffix(name, " | "+pageTitleSuffix) {
		return name
	}
	return name + " | " + pageTitleSuffix
}

// Document renders the HTML5 shell around the children in ctx.
func Document(opts DocumentOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = defaultLang
		}
		stylesheet := strings.TrimSpace(opts.StylesheetURL)
		if stylesheet == "" {
			stylesheet = defaultStylesheetURL
		}

		m := newMarkupWriter(ctx, w)
		m.raw("<!doctype html>")
		m.open("html", "lang", lang)
		m.open("head")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.element("title", opts.Title)
		if opts.Description != "" {
			m.open("meta", "name", "description", "content", opts.Description)
		}
		if keywords := joinKeywords(opts.Keywords); keywords != "" {
			m.open("meta", "name", "keywords", "content", keywords)
		}
		m.open("meta", "property", "og:type", "content", "website")
		m.open("meta", "property", "og:title", "content", opts.Title)
		if opts.Description != "" {
			m.open("meta", "property", "og:description", "content", opts.Description)
		}
		m.open("link", "rel", "stylesheet", "href", safeURL(stylesheet))
		m.close("head")
		m.open("body")
		m.render(templ.GetChildren(ctx))
		m.close("body")
		m.close("html")
		return m.err
	})
}

func joinKeywords(keywords []string) string {
	parts := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			parts = append(parts, keyword)
		}
	}
	return strings.Join(parts, ", ")
}
