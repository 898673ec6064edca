package content

import (
	"errors"
	"fmt"
	"maps"
	"net/mail"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

const (
	defaultLocale  = "en"
	placeholderURL = "#"
)

// Document is the editable, YAML-facing form of the content table.
type Document struct {
	Locale       string            `yaml:"locale"`
	Studio       StudioInfo        `yaml:"studio"`
	Services     []string          `yaml:"services"`
	Posts        []PostPlaceholder `yaml:"posts"`
	Hero         HeroCopy          `yaml:"hero"`
	About        AboutCopy         `yaml:"about"`
	Social       SocialCopy        `yaml:"social"`
	Expectations ExpectationsCopy  `yaml:"expectations"`
	Contact      ContactCopy       `yaml:"contact"`
	Footer       FooterCopy        `yaml:"footer"`
}

// New validates doc and freezes a private copy of it.
func New(doc Document) (Content, error) {
	doc = doc.normalized()
	if err := doc.Validate(); err != nil {
		return Content{}, err
	}
	tag, err := language.Parse(doc.Locale)
	if err != nil {
		return Content{}, fmt.Errorf("locale: %w", err)
	}
	return Content{doc: doc, locale: tag}, nil
}

// Validate reports every missing or malformed field at once.
func (d Document) Validate() error {
	var errs []error
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}

	if _, err := language.Parse(strings.TrimSpace(d.Locale)); err != nil {
		errs = append(errs, fmt.Errorf("locale %q: %w", d.Locale, err))
	}

	required("studio.name", d.Studio.Name)
	required("studio.tagline", d.Studio.Tagline)
	required("studio.email", d.Studio.Email)
	if strings.TrimSpace(d.Studio.Email) != "" {
		if _, err := mail.ParseAddress(d.Studio.Email); err != nil {
			errs = append(errs, fmt.Errorf("studio.email %q: %w", d.Studio.Email, err))
		}
	}
	required("studio.phone", d.Studio.Phone)
	if strings.TrimSpace(d.Studio.Phone) != "" && !strings.ContainsFunc(d.Studio.Phone, isDigit) {
		errs = append(errs, fmt.Errorf("studio.phone %q: must contain digits", d.Studio.Phone))
	}
	required("studio.address.line1", d.Studio.Address.Line1)
	required("studio.address.line2", d.Studio.Address.Line2)
	required("studio.address.line3", d.Studio.Address.Line3)
	required("studio.working_hours", d.Studio.WorkingHours)
	if len(d.Studio.SocialMedia) == 0 {
		errs = append(errs, errors.New("studio.social_media requires at least one platform"))
	}
	for _, platform := range slices.Sorted(maps.Keys(d.Studio.SocialMedia)) {
		required("studio.social_media key", platform)
	}

	for i, service := range d.Services {
		required(fmt.Sprintf("services[%d]", i), service)
	}
	for i, post := range d.Posts {
		required(fmt.Sprintf("posts[%d].type", i), post.Type)
	}

	required("hero.title", d.Hero.Title)
	required("hero.highlight", d.Hero.Highlight)
	required("hero.subtitle", d.Hero.Subtitle)
	required("hero.launch_message", d.Hero.LaunchMessage)
	required("about.title", d.About.Title)
	required("about.description", d.About.Description)
	required("social.title", d.Social.Title)
	required("social.subtitle", d.Social.Subtitle)
	required("expectations.title", d.Expectations.Title)
	for i, item := range d.Expectations.Items {
		required(fmt.Sprintf("expectations.items[%d]", i), item)
	}
	required("contact.prompt", d.Contact.Prompt)
	if d.Footer.CopyrightYear <= 0 {
		errs = append(errs, fmt.Errorf("footer.copyright_year %d: must be positive", d.Footer.CopyrightYear))
	}
	required("footer.signature", d.Footer.Signature)
	for i, link := range d.Footer.Legal {
		required(fmt.Sprintf("footer.legal[%d].label", i), link.Label)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

// normalized returns a deep copy with whitespace trimmed and placeholder
// defaults applied, so the result shares no memory with d.
func (d Document) normalized() Document {
	out := d
	out.Locale = strings.TrimSpace(out.Locale)
	if out.Locale == "" {
		out.Locale = defaultLocale
	}

	out.Studio.Email = strings.TrimSpace(out.Studio.Email)
	out.Studio.Phone = strings.TrimSpace(out.Studio.Phone)
	out.Studio.MapsURL = strings.TrimSpace(out.Studio.MapsURL)
	if out.Studio.MapsURL == "" {
		out.Studio.MapsURL = placeholderURL
	}
	social := make(map[string]string, len(d.Studio.SocialMedia))
	for platform, target := range d.Studio.SocialMedia {
		target = strings.TrimSpace(target)
		if target == "" {
			target = placeholderURL
		}
		social[strings.ToLower(strings.TrimSpace(platform))] = target
	}
	out.Studio.SocialMedia = social

	out.Services = slices.Clone(d.Services)
	out.Posts = slices.Clone(d.Posts)
	out.Expectations.Items = slices.Clone(d.Expectations.Items)
	out.Footer.Legal = slices.Clone(d.Footer.Legal)
	for i := range out.Footer.Legal {
		if strings.TrimSpace(out.Footer.Legal[i].URL) == "" {
			out.Footer.Legal[i].URL = placeholderURL
		}
	}
	return out
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
