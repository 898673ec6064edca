package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
)

// Section markers, in page order.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionSocial       = "social"
	SectionExpectations = "expectations"
	SectionContact      = "contact"
	SectionFooter       = "footer"
)

// SectionOrder lists the section markers in the order LandingPage renders
// them.
func SectionOrder() []string {
	return []string{SectionHero, SectionAbout, SectionSocial, SectionExpectations, SectionContact, SectionFooter}
}

// LandingSections renders the six sections in fixed order without the
// document shell.
func LandingSections(c content.Content) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		studio := c.Studio()
		links := c.SocialLinks()

		m := newMarkupWriter(ctx, w)
		m.open("div", "class", "landing")
		m.open("main")
		m.render(Hero(c.Hero()))
		m.render(About(c.About()))
		m.render(SocialMedia(c.Social(), c.Posts(), links))
		m.render(WhatToExpect(c.ExpectationsTitle(), c.Expectations()))
		m.render(ContactPreview(c.Contact(), studio))
		m.close("main")
		m.render(Footer(studio, links, c.Footer()))
		m.close("div")
		return m.err
	})
}

// LandingPage renders the complete landing page document.
func LandingPage(c content.Content) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Document(LandingDocumentOptions(c)).Render(templ.WithChildren(ctx, LandingSections(c)), w)
	})
}

// LandingDocumentOptions derives the document metadata from the content.
func LandingDocumentOptions(c content.Content) DocumentOptions {
	studio := c.Studio()
	return DocumentOptions{
		Title:       ComposePageTitle(studio.Name),
		Description: studio.Tagline,
		Keywords:    c.Services(),
		Lang:        c.Locale().String(),
	}
}
