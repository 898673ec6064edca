package icons

const lucideSymbolPrefix = "lucide-"

// Glyph bodies are copied from the Lucide icon set (ISC license) and drawn
// on a 24x24 stroke canvas.
var lucideGlyphs = map[ID]string{
	IDMail:       `<rect width="20" height="16" x="2" y="4" rx="2"></rect><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"></path>`,
	IDPhone:      `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"></path>`,
	IDClock:      `<circle cx="12" cy="12" r="10"></circle><polyline points="12 6 12 12 16 14"></polyline>`,
	IDMapPin:     `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"></path><circle cx="12" cy="10" r="3"></circle>`,
	IDArrowRight: `<path d="M5 12h14"></path><path d="m12 5 7 7-7 7"></path>`,
	IDInstagram:  `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"></rect><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"></path><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"></line>`,
	IDFacebook:   `<path d="M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"></path>`,
	IDLinkedIn:   `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"></path><rect width="4" height="12" x="2" y="9"></rect><circle cx="4" cy="4" r="2"></circle>`,
	IDLink:       `<path d="M10 13a5 5 0 0 0 7.54.54l3-3a5 5 0 0 0-7.07-7.07l-1.72 1.71"></path><path d="M14 11a5 5 0 0 0-7.54-.54l-3 3a5 5 0 0 0 7.07 7.07l1.71-1.71"></path>`,
}

// LucideName returns the Lucide symbol id for an icon.
func LucideName(id ID) (string, bool) {
	if _, ok := lucideGlyphs[id]; !ok {
		return "", false
	}
	return lucideSymbolPrefix + string(id), true
}

// LucideGlyph returns the inner SVG markup for an icon. Unknown ids fall
// back to the link glyph so a renderer always has something to draw.
func LucideGlyph(id ID) string {
	if glyph, ok := lucideGlyphs[id]; ok {
		return glyph
	}
	return lucideGlyphs[IDLink]
}
