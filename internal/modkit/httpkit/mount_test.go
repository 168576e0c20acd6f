package httpkit

import (
	"net/http"
	"testing"
)

func TestMountAPIV1_PrefixesRoutes(t *testing.T) {
	r := newRouter()
	var used int
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			used++
			next.ServeHTTP(w, req)
		})
	}
	MountAPIV1(r, []func(http.Handler) http.Handler{mw}, func(api Router) {
		Get(api, "/health", func(*http.Request) (any, error) { return "ok", nil })
	})

	if code, _ := serve(t, r, http.MethodGet, "/v1/health", ""); code != http.StatusOK {
		t.Fatalf("/v1/health = %d", code)
	}
	if code, _ := serve(t, r, http.MethodGet, "/api/v1/health", ""); code != http.StatusNotFound {
		t.Fatalf("/api/v1/health should not exist, got %d", code)
	}
	if used != 1 {
		t.Fatalf("scoped middleware ran %d times", used)
	}
}

func TestMountAPI_TrimsSlashes(t *testing.T) {
	r := newRouter()
	MountAPI(r, "/v2/", nil, func(api Router) {
		Get(api, "/x", func(*http.Request) (any, error) { return 1, nil })
	})
	if code, _ := serve(t, r, http.MethodGet, "/v2/x", ""); code != http.StatusOK {
		t.Fatalf("/v2/x = %d", code)
	}
}

func TestMountUnder_AppliesMiddleware(t *testing.T) {
	r := newRouter()
	MountUnder(r, "/meta", []func(http.Handler) http.Handler{
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("X-Scoped", "1")
				next.ServeHTTP(w, req)
			})
		},
	}, func(sub Router) {
		Get(sub, "/version", func(*http.Request) (any, error) { return "0.1.0", nil })
	})

	if code, _ := serve(t, r, http.MethodGet, "/meta/version", ""); code != http.StatusOK {
		t.Fatalf("/meta/version = %d", code)
	}
}
