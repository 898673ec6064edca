package landing

import (
	"errors"
	"log"
	"net/http"

	"github.com/louisbranch/comingsoon/internal/services/studio/content"
	module "github.com/louisbranch/comingsoon/internal/services/studio/module"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/httpx"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/pagerender"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/weberror"
	"github.com/louisbranch/comingsoon/internal/services/studio/routepath"
	"github.com/louisbranch/comingsoon/internal/services/studio/templates"
)

const healthBody = "ok"

type handlers struct {
	content  content.Content
	renderer pagerender.Renderer
	failures weberror.Writer
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{
		content:  deps.Content,
		renderer: deps.Renderer,
		failures: deps.Errors,
	}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	err := h.renderer.WritePage(w, r, pagerender.Page{
		Name:      "landing",
		Component: templates.LandingPage(h.content),
	})
	if err == nil {
		return
	}
	if errors.Is(err, pagerender.ErrRender) {
		h.failures.WriteError(w, r, err)
		return
	}
	log.Printf("write landing page: %v", err)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if err := httpx.WriteText(w, http.StatusOK, healthBody); err != nil {
		log.Printf("write health response: %v", err)
	}
}

// handleFallback answers everything the method-qualified routes did not
// match: wrong methods on known paths get 405, anything else 404.
func (h handlers) handleFallback(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case routepath.Root, routepath.Health:
		httpx.MethodNotAllowed(http.MethodGet)(w, r)
	default:
		h.failures.NotFound(w, r)
	}
}
