package content

import (
	"maps"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SocialLink is one social platform affordance.
type SocialLink struct {
	Platform string
	Label    string
	URL      string
}

// knownPlatforms lists the platforms with a fixed display position and label.
var knownPlatforms = []struct {
	key   string
	label string
}{
	{key: "instagram", label: "Instagram"},
	{key: "facebook", label: "Facebook"},
	{key: "linkedin", label: "LinkedIn"},
}

// socialLinks orders known platforms first, then any others alphabetically.
func socialLinks(targets map[string]string) []SocialLink {
	links := make([]SocialLink, 0, len(targets))
	// Casers are not safe for concurrent use.
	title := cases.Title(language.Und)
	seen := make(map[string]struct{}, len(knownPlatforms))
	for _, platform := range knownPlatforms {
		seen[platform.key] = struct{}{}
		url, ok := targets[platform.key]
		if !ok {
			continue
		}
		links = append(links, SocialLink{Platform: platform.key, Label: platform.label, URL: url})
	}
	for _, key := range slices.Sorted(maps.Keys(targets)) {
		if _, ok := seen[key]; ok {
			continue
		}
		links = append(links, SocialLink{Platform: key, Label: title.String(key), URL: targets[key]})
	}
	return links
}
