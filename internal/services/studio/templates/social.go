package templates

import (
	"context"
	"io"
	"iter"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/platform/icons"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
)

// SocialMedia renders one grid cell per placeholder post, in order, followed
// by the studio's social platform links. The links do not depend on posts.
func SocialMedia(social content.SocialCopy, posts iter.Seq[content.PostPlaceholder], links []content.SocialLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkupWriter(ctx, w)
		m.open("section", "id", "social", "class", "section", "data-section", SectionSocial)
		m.open("div", "class", "container")
		m.open("header", "class", "section-header")
		m.element("h2", social.Title, "class", "section-title")
		m.element("p", social.Subtitle, "class", "section-subtitle")
		m.close("header")

		m.open("div", "class", "post-grid")
		if posts != nil {
			for post := range posts {
				m.open("div", "class", "post-cell", "data-post-image", post.Image)
				m.element("span", post.Type, "class", "post-label")
				m.close("div")
			}
		}
		m.close("div")

		m.open("nav", "class", "social-links", "aria-label", "Social media")
		for _, link := range links {
			m.open("a", "class", "social-link", "href", safeURL(link.URL), "data-platform", link.Platform)
			m.icon(icons.ForPlatform(link.Platform), "icon icon-lg")
			m.element("span", link.Label)
			m.close("a")
		}
		m.close("nav")
		m.close("div")
		m.close("section")
		return m.err
	})
}
