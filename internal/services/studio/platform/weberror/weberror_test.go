package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/comingsoon/internal/services/studio/content"
	apperrors "github.com/louisbranch/comingsoon/internal/services/studio/platform/errors"
	"github.com/louisbranch/comingsoon/internal/services/studio/platform/pagerender"
)

func newWriter() Writer {
	return Writer{Content: content.Default(), Renderer: pagerender.New(nil)}
}

func TestShouldRenderPage(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
		http.StatusMethodNotAllowed:    false,
		http.StatusBadRequest:          false,
	}
	for status, want := range tests {
		if got := ShouldRenderPage(status); got != want {
			t.Fatalf("ShouldRenderPage(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestNotFoundRendersBrandedPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newWriter().NotFound(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, marker := range []string{"404 Not Found", "does not exist yet", `data-section="footer"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q", marker)
		}
	}
}

func TestWriteErrorHidesInternalCause(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newWriter().WriteError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("template exploded at /srv/secret"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "/srv/secret") {
		t.Fatalf("internal cause leaked: %q", rr.Body.String())
	}
}

func TestWriteErrorUsesPlainTextForMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newWriter().WriteError(rr, httptest.NewRequest(http.MethodPost, "/", nil), apperrors.E(apperrors.KindMethodNotAllowed, "Method Not Allowed"))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("content-type = %q, want text/plain", got)
	}
}

func TestWriteErrorNilWriterSafety(t *testing.T) {
	t.Parallel()

	newWriter().WriteError(nil, nil, errors.New("ignored"))
}
