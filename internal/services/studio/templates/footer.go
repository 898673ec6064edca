package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/platform/icons"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
)

// Footer renders the contact, address and connect groups plus the bottom
// bar with copyright and legal links.
func Footer(studio content.StudioInfo, links []content.SocialLink, footer content.FooterCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkupWriter(ctx, w)
		m.open("footer", "id", "footer", "class", "footer", "data-section", SectionFooter)
		m.open("div", "class", "footer-main")
		m.open("div", "class", "container")

		m.open("div", "class", "footer-brand")
		m.element("h3", studio.Name)
		m.element("p", studio.Tagline)
		m.close("div")

		m.open("div", "class", "footer-columns")
		writeFooterContact(m, studio)
		writeFooterAddress(m, studio)
		writeFooterConnect(m, links)
		m.close("div")

		m.close("div")
		m.close("div")

		m.open("div", "class", "footer-bar")
		m.open("div", "class", "container footer-bar-inner")
		m.open("div", "class", "footer-credits")
		m.element("p", fmt.Sprintf("© %d %s. All rights reserved.", footer.CopyrightYear, studio.Name))
		m.element("p", footer.Signature, "class", "footer-muted")
		m.close("div")
		m.open("nav", "class", "footer-legal", "aria-label", "Legal")
		for _, link := range footer.Legal {
			m.element("a", link.Label, "href", safeURL(link.URL))
		}
		m.close("nav")
		m.close("div")
		m.close("div")

		m.close("footer")
		return m.err
	})
}

func writeFooterContact(m *markupWriter, studio content.StudioInfo) {
	m.open("div", "class", "footer-column")
	m.element("h4", "Contact Information")
	m.open("ul", "class", "footer-list")

	m.open("li")
	m.icon(icons.IDPhone, "icon icon-accent")
	m.element("a", studio.Phone, "href", safeURL(content.TelURI(studio.Phone)))
	m.close("li")

	m.open("li")
	m.icon(icons.IDMail, "icon icon-accent")
	m.element("a", studio.Email, "href", safeURL(content.MailtoURI(studio.Email)))
	m.close("li")

	m.open("li")
	m.icon(icons.IDClock, "icon icon-accent")
	m.element("span", studio.WorkingHours)
	m.close("li")

	m.close("ul")
	m.close("div")
}

func writeFooterAddress(m *markupWriter, studio content.StudioInfo) {
	m.open("div", "class", "footer-column")
	m.element("h4", "Our Studio")
	m.open("div", "class", "footer-address")
	m.icon(icons.IDMapPin, "icon icon-accent")
	m.open("address")
	for _, line := range studio.Address.Lines() {
		m.element("p", line)
	}
	m.close("address")
	m.close("div")
	m.element("a", "Get Directions →", "class", "footer-directions", "href", safeURL(studio.MapsURL))
	m.close("div")
}

func writeFooterConnect(m *markupWriter, links []content.SocialLink) {
	m.open("div", "class", "footer-column")
	m.element("h4", "Connect")
	m.element("p", "Follow our journey", "class", "footer-muted")
	m.open("div", "class", "footer-social")
	for _, link := range links {
		m.open("a", "class", "footer-social-link", "href", safeURL(link.URL), "aria-label", link.Label, "data-platform", link.Platform)
		m.icon(icons.ForPlatform(link.Platform), "icon")
		m.close("a")
	}
	m.close("div")
	m.close("div")
}
