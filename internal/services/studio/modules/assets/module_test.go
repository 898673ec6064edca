package assets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	module "github.com/louisbranch/comingsoon/internal/services/studio/module"
	"github.com/louisbranch/comingsoon/internal/services/studio/routepath"
	"github.com/louisbranch/comingsoon/internal/services/studio/static"
)

func mountHandler(t *testing.T, m Module) http.Handler {
	t.Helper()
	mount, err := m.Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.StaticPrefix {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.StaticPrefix)
	}
	return mount.Handler
}

func TestModuleIDReturnsAssets(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "assets" {
		t.Fatalf("ID() = %q, want %q", got, "assets")
	}
}

func TestServesEmbeddedStylesheetWithCacheHeader(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t, New()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Static(static.StylesheetName), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Cache-Control"); got != CacheControl {
		t.Fatalf("Cache-Control = %q, want %q", got, CacheControl)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("content-type = %q, want text/css", got)
	}
	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), ".post-grid") {
		t.Fatalf("stylesheet missing grid rules")
	}
}

func TestHidesDirectoryListing(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t, New()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.StaticPrefix, nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMissingAssetReturns404(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{"site.css": {Data: []byte("body{}")}}
	rr := httptest.NewRecorder()
	mountHandler(t, NewWithFS(files)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRejectsWrites(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t, New()).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Static(static.StylesheetName), nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
