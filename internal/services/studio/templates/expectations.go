package templates

import (
	"context"
	"io"
	"iter"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/platform/icons"
)

// WhatToExpect renders one list row per item, preserving order.
func WhatToExpect(title string, items iter.Seq[string]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkupWriter(ctx, w)
		m.open("section", "id", "expectations", "class", "section section-light", "data-section", SectionExpectations)
		m.open("div", "class", "container container-narrow")
		m.element("h2", title, "class", "section-title")
		m.open("ul", "class", "expectations")
		if items != nil {
			for item := range items {
				m.open("li", "class", "expectation")
				m.icon(icons.IDArrowRight, "icon icon-accent")
				m.element("span", item, "class", "expectation-text")
				m.close("li")
			}
		}
		m.close("ul")
		m.close("div")
		m.close("section")
		return m.err
	})
}
