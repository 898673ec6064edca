// Package icons defines the icon identifiers used by the landing page.
//
// The catalog maps stable icon identifiers to human-readable labels and to
// the Lucide glyph that draws them. Renderers decide how to wrap the glyph
// markup (size, classes, accessibility attributes).
package icons
