// Package static embeds the landing page stylesheet.
package static

import "embed"

// StylesheetName is the file name of the landing page stylesheet.
const StylesheetName = "studio.css"

// FS exposes studio static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
