// Package content holds the immutable content table behind the landing page.
//
// A Content value is built once at startup from a YAML Document, validated,
// and then only read. Accessors hand out copies or lazy sequences so callers
// can never change what later renders see.
package content

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Address is the studio postal address as three ordered display lines.
type Address struct {
	Line1 string `yaml:"line1"`
	Line2 string `yaml:"line2"`
	Line3 string `yaml:"line3"`
}

// Lines returns the address lines in display order.
func (a Address) Lines() []string {
	return []string{a.Line1, a.Line2, a.Line3}
}

// StudioInfo is the studio's identity and contact metadata.
type StudioInfo struct {
	Name         string            `yaml:"name"`
	Tagline      string            `yaml:"tagline"`
	Email        string            `yaml:"email"`
	Phone        string            `yaml:"phone"`
	Address      Address           `yaml:"address"`
	MapsURL      string            `yaml:"maps_url"`
	WorkingHours string            `yaml:"working_hours"`
	SocialMedia  map[string]string `yaml:"social_media"`
}

// PostPlaceholder stands in for a future social media post.
type PostPlaceholder struct {
	Type string `yaml:"type"`
	// Image is an identifier only; nothing is loaded from it yet.
	Image string `yaml:"image"`
}

// HeroCopy is the banner text.
type HeroCopy struct {
	Title         string `yaml:"title"`
	Highlight     string `yaml:"highlight"`
	Subtitle      string `yaml:"subtitle"`
	LaunchMessage string `yaml:"launch_message"`
}

// AboutCopy is the about blurb. Description is Markdown.
type AboutCopy struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// SocialCopy heads the social media section.
type SocialCopy struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// ExpectationsCopy heads the upcoming content list and carries its rows.
type ExpectationsCopy struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// ContactCopy introduces the direct contact links.
type ContactCopy struct {
	Prompt string `yaml:"prompt"`
}

// Link is a labeled anchor target.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// FooterCopy is the footer bottom bar text.
type FooterCopy struct {
	CopyrightYear int    `yaml:"copyright_year"`
	Signature     string `yaml:"signature"`
	Legal         []Link `yaml:"legal"`
}

// Content is the frozen, validated content table.
type Content struct {
	doc    Document
	locale language.Tag
}

// IsZero reports whether c was never built by New.
func (c Content) IsZero() bool {
	return c.doc.Studio.Name == ""
}

// Locale returns the page language.
func (c Content) Locale() language.Tag {
	return c.locale
}

// Studio returns a copy of the studio metadata.
func (c Content) Studio() StudioInfo {
	studio := c.doc.Studio
	studio.SocialMedia = maps.Clone(studio.SocialMedia)
	return studio
}

// Posts yields the placeholder posts in order. The sequence can be ranged
// over any number of times.
func (c Content) Posts() iter.Seq[PostPlaceholder] {
	return slices.Values(c.doc.Posts)
}

// PostCount reports how many placeholder posts exist.
func (c Content) PostCount() int {
	return len(c.doc.Posts)
}

// Expectations yields the upcoming content rows in order.
func (c Content) Expectations() iter.Seq[string] {
	return slices.Values(c.doc.Expectations.Items)
}

// ExpectationCount reports how many upcoming content rows exist.
func (c Content) ExpectationCount() int {
	return len(c.doc.Expectations.Items)
}

// Services returns a copy of the service names. No section renders them;
// they only feed document metadata.
func (c Content) Services() []string {
	return slices.Clone(c.doc.Services)
}

// Hero returns the banner copy.
func (c Content) Hero() HeroCopy {
	return c.doc.Hero
}

// About returns the about copy.
func (c Content) About() AboutCopy {
	return c.doc.About
}

// Social returns the social section copy.
func (c Content) Social() SocialCopy {
	return c.doc.Social
}

// ExpectationsTitle returns the heading of the upcoming content list.
func (c Content) ExpectationsTitle() string {
	return c.doc.Expectations.Title
}

// Contact returns the contact preview copy.
func (c Content) Contact() ContactCopy {
	return c.doc.Contact
}

// Footer returns a copy of the footer copy.
func (c Content) Footer() FooterCopy {
	footer := c.doc.Footer
	footer.Legal = slices.Clone(footer.Legal)
	return footer
}

// SocialLinks returns the studio's social platforms in display order.
func (c Content) SocialLinks() []SocialLink {
	return socialLinks(c.doc.Studio.SocialMedia)
}
