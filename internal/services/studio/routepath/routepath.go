// Package routepath defines the studio HTTP route constants.
package routepath

const (
	Root         = "/"
	Health       = "/healthz"
	StaticPrefix = "/static/"
)

// Static returns the public URL of a static asset.
func Static(name string) string {
	return StaticPrefix + name
}
