package icons

// ID identifies one icon in the catalog.
type ID string

const (
	IDMail       ID = "mail"
	IDPhone      ID = "phone"
	IDClock      ID = "clock"
	IDMapPin     ID = "map-pin"
	IDArrowRight ID = "arrow-right"
	IDInstagram  ID = "instagram"
	IDFacebook   ID = "facebook"
	IDLinkedIn   ID = "linkedin"
	IDLink       ID = "link"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: IDMail, Name: "Mail", Description: "Email contact links."},
	{ID: IDPhone, Name: "Phone", Description: "Telephone contact links."},
	{ID: IDClock, Name: "Clock", Description: "Studio working hours."},
	{ID: IDMapPin, Name: "Map Pin", Description: "Studio address."},
	{ID: IDArrowRight, Name: "Arrow Right", Description: "List bullets for upcoming content."},
	{ID: IDInstagram, Name: "Instagram", Description: "Instagram profile link."},
	{ID: IDFacebook, Name: "Facebook", Description: "Facebook page link."},
	{ID: IDLinkedIn, Name: "LinkedIn", Description: "LinkedIn page link."},
	{ID: IDLink, Name: "Link", Description: "Fallback for social platforms without a dedicated glyph."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the catalog definition for id.
func Lookup(id ID) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// ForPlatform maps a social platform key to its icon, falling back to the
// generic link icon.
func ForPlatform(platform string) ID {
	switch ID(platform) {
	case IDInstagram, IDFacebook, IDLinkedIn:
		return ID(platform)
	default:
		return IDLink
	}
}
