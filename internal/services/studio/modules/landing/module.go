// Package landing serves the coming soon page, the health probe and the
// not-found fallback.
package landing

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/comingsoon/internal/services/studio/module"
	"github.com/louisbranch/comingsoon/internal/services/studio/routepath"
)

// Module provides the root routes.
type Module struct{}

// New returns the landing module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "landing"
}

// Mount wires landing routes under the root prefix.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Content.IsZero() {
		return module.Mount{}, errors.New("landing content is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
