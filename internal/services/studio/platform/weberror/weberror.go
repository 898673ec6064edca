// Package weberror renders studio error responses.
package weberror

import (
	"log"
	"net/http"

	"github.com/louisbranch/comingsoon/internal/services/studio/content"
	apperrors "github.com/louisbranch/comingsoon/internal/services/studio/platform/errors"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/pagerender"
	"github.com/louisbranch/comingsoon/internal/services/studio/templates"
)

// ShouldRenderPage reports whether status should use the branded error page.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// Writer renders error responses with the studio footer.
type Writer struct {
	Content  content.Content
	Renderer pagerender.Renderer
}

// WriteError writes the response for err, rendering a full page when the
// mapped status calls for one and plain text otherwise.
func (e Writer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	message := apperrors.PublicMessage(err)
	if statusCode >= http.StatusInternalServerError && err != nil {
		log.Printf("request failed status=%d error=%v", statusCode, err)
	}
	if !ShouldRenderPage(statusCode) {
		http.Error(w, message, statusCode)
		return
	}
	page := pagerender.Page{
		Name:       "error",
		StatusCode: statusCode,
		Component:  templates.ErrorPage(statusCode, message, e.Content),
	}
	if renderErr := e.Renderer.WritePage(w, r, page); renderErr != nil {
		log.Printf("render error page status=%d error=%v", statusCode, renderErr)
		http.Error(w, message, statusCode)
	}
}

// NotFound writes the branded 404 page.
func (e Writer) NotFound(w http.ResponseWriter, r *http.Request) {
	e.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "The page you are looking for does not exist yet."))
}
