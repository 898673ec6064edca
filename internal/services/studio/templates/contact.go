package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/platform/icons"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
)

// ContactPreview renders exactly one mail and one phone affordance.
func ContactPreview(contact content.ContactCopy, studio content.StudioInfo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkupWriter(ctx, w)
		m.open("section", "id", "contact", "class", "section section-muted", "data-section", SectionContact)
		m.open("div", "class", "container container-narrow contact")
		m.element("p", contact.Prompt, "class", "contact-prompt")
		m.open("div", "class", "contact-links")

		m.open("a", "class", "contact-link", "href", safeURL(content.MailtoURI(studio.Email)))
		m.icon(icons.IDMail, "icon")
		m.element("span", studio.Email)
		m.close("a")

		m.open("a", "class", "contact-link", "href", safeURL(content.TelURI(studio.Phone)))
		m.icon(icons.IDPhone, "icon")
		m.element("span", studio.Phone)
		m.close("a")

		m.close("div")
		m.close("div")
		m.close("section")
		return m.err
	})
}
