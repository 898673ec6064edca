// Package module defines the feature contract used by studio composition.
package module

import (
	"net/http"

	"github.com/louisbranch/comingsoon/internal/services/studio/content"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/pagerender"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/weberror"
)

// Dependencies carries the shared inputs every module may use.
type Dependencies struct {
	Content  content.Content
	Renderer pagerender.Renderer
	Errors   weberror.Writer
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by studio composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
