package templates

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
	"golang.org/x/net/html"
)

func TestSocialMediaRendersOneCellPerPostInOrder(t *testing.T) {
	t.Parallel()

	posts := []content.PostPlaceholder{
		{Type: "Sketch", Image: "p1"},
		{Type: "Model", Image: "p2"},
		{Type: "Site Visit", Image: "p3"},
	}
	markup := renderComponent(t, SocialMedia(content.SocialCopy{Title: "Find Us", Subtitle: "Soon"}, slices.Values(posts), nil))
	cells := findAll(parseFragment(t, markup), byClass("post-cell"))

	var got []string
	for _, cell := range cells {
		got = append(got, textContent(cell))
	}
	want := []string{"Sketch", "Model", "Site Visit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("post cells mismatch (-want +got):\n%s", diff)
	}
	if image := attr(cells[1], "data-post-image"); image != "p2" {
		t.Fatalf("data-post-image = %q, want %q", image, "p2")
	}
}

func TestSocialMediaHandlesEmptyAndNilPosts(t *testing.T) {
	t.Parallel()

	for name, posts := range map[string][]content.PostPlaceholder{"empty": {}, "nil": nil} {
		markup := renderComponent(t, SocialMedia(content.SocialCopy{}, slices.Values(posts), nil))
		root := parseFragment(t, markup)
		if got := len(findAll(root, byClass("post-cell"))); got != 0 {
			t.Fatalf("%s: post cells = %d, want 0", name, got)
		}
		if got := len(findAll(root, byClass("post-grid"))); got != 1 {
			t.Fatalf("%s: post grids = %d, want 1", name, got)
		}
	}

	markup := renderComponent(t, SocialMedia(content.SocialCopy{}, nil, nil))
	if !strings.Contains(markup, `class="post-grid"></div>`) {
		t.Fatalf("nil sequence should render an empty grid: %q", markup)
	}
}

func TestSocialMediaRendersPlatformLinksIndependentOfPosts(t *testing.T) {
	t.Parallel()

	links := []content.SocialLink{
		{Platform: "instagram", Label: "Instagram", URL: "https://instagram.com/studio"},
		{Platform: "facebook", Label: "Facebook", URL: "#"},
		{Platform: "linkedin", Label: "LinkedIn", URL: "#"},
	}
	markup := renderComponent(t, SocialMedia(content.SocialCopy{}, nil, links))
	anchors := findAll(parseFragment(t, markup), byClass("social-link"))

	var got []string
	for _, a := range anchors {
		got = append(got, attr(a, "data-platform")+"="+textContent(a))
	}
	want := []string{"instagram=Instagram", "facebook=Facebook", "linkedin=LinkedIn"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("social links mismatch (-want +got):\n%s", diff)
	}
	if href := attr(anchors[0], "href"); href != "https://instagram.com/studio" {
		t.Fatalf("href = %q, want instagram url", href)
	}
	if !strings.Contains(markup, `data-icon="lucide-instagram"`) {
		t.Fatalf("missing instagram icon: %q", markup)
	}
}

func TestWhatToExpectRendersRowsWithIdenticalText(t *testing.T) {
	t.Parallel()

	items := []string{"Portfolio <beta>", "Philosophy & approach", "Services"}
	markup := renderComponent(t, WhatToExpect("What's Coming", slices.Values(items)))
	rows := findAll(parseFragment(t, markup), byClass("expectation"))

	var got []string
	for _, row := range rows {
		got = append(got, textContent(row))
	}
	if diff := cmp.Diff(items, got); diff != "" {
		t.Fatalf("expectation rows mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(markup, "<beta>") {
		t.Fatalf("row text was not escaped: %q", markup)
	}
}

func TestWhatToExpectEmptyRendersEmptyList(t *testing.T) {
	t.Parallel()

	markup := renderComponent(t, WhatToExpect("What's Coming", slices.Values([]string(nil))))
	if !strings.Contains(markup, `<ul class="expectations"></ul>`) {
		t.Fatalf("expected empty list, got %q", markup)
	}
}

func TestContactPreviewExposesOneMailtoAndOneTel(t *testing.T) {
	t.Parallel()

	studio := content.Default().Studio()
	markup := renderComponent(t, ContactPreview(content.ContactCopy{Prompt: "Reach us"}, studio))
	anchors := findAll(parseFragment(t, markup), byTag("a"))

	var hrefs []string
	for _, a := range anchors {
		hrefs = append(hrefs, attr(a, "href"))
	}
	want := []string{"mailto:hello@studioname.com", "tel:+919876543210"}
	if diff := cmp.Diff(want, hrefs); diff != "" {
		t.Fatalf("contact hrefs mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(markup, "+91 98765 43210") {
		t.Fatalf("display phone should keep formatting: %q", markup)
	}
}

func TestAboutRendersMarkdownAndDropsRawHTML(t *testing.T) {
	t.Parallel()

	markup := renderComponent(t, About(content.AboutCopy{
		Title:       "Who We Are",
		Description: "We build **calm** spaces.\n\n<script>alert(1)</script>\n\n[Site](javascript:alert(1))",
	}))
	if !strings.Contains(markup, "<strong>calm</strong>") {
		t.Fatalf("expected rendered emphasis: %q", markup)
	}
	for _, forbidden := range []string{"<script", "javascript:"} {
		if strings.Contains(markup, forbidden) {
			t.Fatalf("markup contains %q: %q", forbidden, markup)
		}
	}
}

func TestHeroRendersLaunchMessage(t *testing.T) {
	t.Parallel()

	markup := renderComponent(t, Hero(content.Default().Hero()))
	for _, marker := range []string{
		`data-section="hero"`,
		"Something Extraordinary",
		`<span class="hero-highlight">is Coming</span>`,
		"Launching post-Diwali 2025",
	} {
		if !strings.Contains(markup, marker) {
			t.Fatalf("hero missing marker %q: %q", marker, markup)
		}
	}
}

func TestFooterIsBoundToStudioInfo(t *testing.T) {
	t.Parallel()

	c := content.Default()
	markup := renderComponent(t, Footer(c.Studio(), c.SocialLinks(), c.Footer()))
	root := parseFragment(t, markup)

	for _, marker := range []string{
		"© 2025 [Studio Name]. All rights reserved.",
		"Designed with passion in Ahmedabad",
		"Mon - Sat: 9:00 AM - 6:00 PM",
		"Vastrapur, Ahmedabad,",
		"Get Directions →",
		"Privacy Policy",
		"Terms of Service",
	} {
		if !strings.Contains(textContent(root), marker) {
			t.Fatalf("footer missing text %q", marker)
		}
	}
	if got := len(findAll(root, byTag("address"))); got != 1 {
		t.Fatalf("address elements = %d, want 1", got)
	}
	social := findAll(root, byClass("footer-social-link"))
	if len(social) != 3 {
		t.Fatalf("footer social links = %d, want 3", len(social))
	}
	if label := attr(social[2], "aria-label"); label != "LinkedIn" {
		t.Fatalf("aria-label = %q, want %q", label, "LinkedIn")
	}
	if !strings.Contains(markup, `href="tel:+919876543210"`) || !strings.Contains(markup, `href="mailto:hello@studioname.com"`) {
		t.Fatalf("footer contact links missing: %q", markup)
	}
}

func TestLandingPageComposesSectionsInOrder(t *testing.T) {
	t.Parallel()

	markup := renderComponent(t, LandingPage(content.Default()))
	root := parseFragment(t, markup)

	if diff := cmp.Diff(SectionOrder(), sectionMarkers(root)); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}
	if got := len(findAll(root, byClass("post-cell"))); got != 9 {
		t.Fatalf("post cells = %d, want 9", got)
	}
	if got := len(findAll(root, byClass("expectation"))); got != 4 {
		t.Fatalf("expectation rows = %d, want 4", got)
	}
}

func TestLandingPageContactSectionLinks(t *testing.T) {
	t.Parallel()

	root := parseFragment(t, renderComponent(t, LandingPage(content.Default())))
	sections := findAll(root, func(n *html.Node) bool { return attr(n, "data-section") == SectionContact })
	if len(sections) != 1 {
		t.Fatalf("contact sections = %d, want 1", len(sections))
	}
	var mailto, tel int
	for _, a := range findAll(sections[0], byTag("a")) {
		switch attr(a, "href") {
		case "mailto:hello@studioname.com":
			mailto++
		case "tel:+919876543210":
			tel++
		}
	}
	if mailto != 1 || tel != 1 {
		t.Fatalf("contact links mailto=%d tel=%d, want 1 and 1", mailto, tel)
	}
}

func TestLandingPageDocumentShell(t *testing.T) {
	t.Parallel()

	markup := renderComponent(t, LandingPage(content.Default()))
	if !strings.HasPrefix(markup, "<!doctype html>") {
		t.Fatalf("expected doctype prefix: %q", markup[:32])
	}
	for _, marker := range []string{
		`<html lang="en-IN">`,
		"<title>[Studio Name] | Coming Soon</title>",
		`<meta name="description" content="Crafting spaces that inspire and endure">`,
		`<meta name="keywords" content="Architecture, Interior Design, Master Planning, Sustainable Design">`,
		`<meta property="og:title" content="[Studio Name] | Coming Soon">`,
		`<link rel="stylesheet" href="/static/studio.css">`,
	} {
		if !strings.Contains(markup, marker) {
			t.Fatalf("document missing marker %q", marker)
		}
	}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Atelier":               "Atelier | Coming Soon",
		"  Atelier  ":           "Atelier | Coming Soon",
		"":                      "Coming Soon",
		"Atelier | Coming Soon": "Atelier | Coming Soon",
	}
	for input, want := range tests {
		if got := ComposePageTitle(input); got != want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDocumentDefaultsLangAndStylesheet(t *testing.T) {
	t.Parallel()

	markup := renderComponent(t, Document(DocumentOptions{Title: "x", Keywords: []string{" ", ""}}))
	for _, marker := range []string{`<html lang="en">`, `href="/static/studio.css"`} {
		if !strings.Contains(markup, marker) {
			t.Fatalf("document missing marker %q: %q", marker, markup)
		}
	}
	if strings.Contains(markup, `name="keywords"`) {
		t.Fatalf("blank keywords should be omitted: %q", markup)
	}
}

func TestErrorPageKeepsFooter(t *testing.T) {
	t.Parallel()

	markup := renderComponent(t, ErrorPage(404, "Page not found.", content.Default()))
	root := parseFragment(t, markup)
	if diff := cmp.Diff([]string{"error", SectionFooter}, sectionMarkers(root)); diff != "" {
		t.Fatalf("error page sections mismatch (-want +got):\n%s", diff)
	}
	for _, marker := range []string{"<title>404 Not Found | [Studio Name]</title>", "Page not found.", `href="/"`} {
		if !strings.Contains(markup, marker) {
			t.Fatalf("error page missing marker %q", marker)
		}
	}
}

func TestIconFallsBackToLinkGlyph(t *testing.T) {
	t.Parallel()

	markup := renderComponent(t, Icon("unknown", "icon"))
	if !strings.Contains(markup, `data-icon="lucide-link"`) {
		t.Fatalf("expected link fallback: %q", markup)
	}
}
