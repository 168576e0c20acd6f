package httpkit

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "spamjar/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

// newRouter returns a chi backed Router for tests
func newRouter() Router { return phttp.AdaptChi(chi.NewRouter()) }

// serve performs a request against r and returns status and body
func serve(t *testing.T, r Router, method, target, body string) (int, string) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, target, rd))
	return rec.Code, rec.Body.String()
}
