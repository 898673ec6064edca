package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
)

// Hero renders the full-viewport banner with the launch announcement.
func Hero(hero content.HeroCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkupWriter(ctx, w)
		m.open("section", "id", "hero", "class", "hero", "data-section", SectionHero)
		m.raw(`<div class="hero-backdrop" aria-hidden="true"></div>`)
		m.open("div", "class", "hero-inner")
		m.open("h1", "class", "hero-title")
		m.text(hero.Title)
		m.raw("<br>")
		m.element("span", hero.Highlight, "class", "hero-highlight")
		m.close("h1")
		m.element("p", hero.Subtitle, "class", "hero-subtitle")
		m.open("div", "class", "hero-launch")
		m.element("p", hero.LaunchMessage)
		m.close("div")
		m.close("div")
		m.close("section")
		return m.err
	})
}
