// Package assets serves the embedded stylesheet.
package assets

import (
	"io/fs"
	"net/http"
	"strings"

	module "github.com/louisbranch/comingsoon/internal/services/studio/module"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/httpx"
	"github.com/louisbranch/comingsoon/internal/services/studio/routepath"
	"github.com/louisbranch/comingsoon/internal/services/studio/static"
)

// CacheControl is sent with every static asset.
const CacheControl = "public, max-age=3600"

// Module serves files from an embedded file system.
type Module struct {
	files fs.FS
}

// New returns the assets module backed by the embedded static files.
func New() Module {
	return Module{files: static.FS}
}

// NewWithFS returns an assets module serving files.
func NewWithFS(files fs.FS) Module {
	return Module{files: files}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "assets"
}

// Mount wires the file server under the static prefix.
func (m Module) Mount(module.Dependencies) (module.Mount, error) {
	files := m.files
	if files == nil {
		files = static.FS
	}
	mux := http.NewServeMux()
	fileServer := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(files)))
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, httpx.Chain(hideDirectories(fileServer), httpx.CacheControl(CacheControl)))
	mux.HandleFunc(routepath.StaticPrefix, httpx.MethodNotAllowed(http.MethodGet))
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}

func hideDirectories(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
