package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spamjar/internal/platform/config"
	phttp "spamjar/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestRouter_RouteGroupParamsAndSugar(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Root", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/v1", func(v1 phttp.Router) {
		v1.Group(func(g phttp.Router) {
			g.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					w.Header().Set("X-Group", "1")
					next.ServeHTTP(w, req)
				})
			})
			g.Get("/process_page/{video_id}", phttp.NoBodyHandler(func(req *http.Request) (any, error) {
				return map[string]string{"id": phttp.URLParam(req, "video_id")}, nil
			}))
		})
		phttp.PostJSON(v1, "/detect", func(_ *http.Request, in detectIn) (any, error) {
			return map[string]string{"content": in.Content}, nil
		})
		v1.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "raw")
		}))
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/process_page/abc_123", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"id":"abc_123"`) {
		t.Fatalf("param route: %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Root") != "1" || rec.Header().Get("X-Group") != "1" {
		t.Fatalf("middleware not applied: %v", rec.Header())
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/detect", strings.NewReader(`{"content":"x"}`)))
	if rec.Code != 200 || rec.Header().Get("X-Group") != "" {
		t.Fatalf("post route: %d group=%q", rec.Code, rec.Header().Get("X-Group"))
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/raw", nil))
	if rec.Body.String() != "raw" {
		t.Fatalf("handle route: %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/process_page/abc", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for wrong method, got %d", rec.Code)
	}
}

func TestNewServer_DefaultAddr(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("SRVTEST_"))
	if srv.Addr() != ":8000" {
		t.Fatalf("default addr = %q", srv.Addr())
	}
	t.Setenv("SRVTEST_PORT", "9100")
	if got := phttp.NewServer(config.New().Prefix("SRVTEST_")).Addr(); got != ":9100" {
		t.Fatalf("port addr = %q", got)
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	// grab a free port, then release it for the server
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	t.Setenv("SRVRUN_ADDR", addr)
	t.Setenv("SRVRUN_SHUTDOWN_TIMEOUT", "1s")

	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("SRVRUN_"), func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected option hook to run")
	}
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var body string
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get("http://" + addr + "/ping")
		if err == nil {
			b, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			body = string(b)
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if body != "pong" {
		t.Fatalf("server never answered, body=%q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestMountProfiler(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(r, "/debug", true)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /debug/pprof/cmdline, got %d", rec.Code)
	}

	off := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(off, "/debug", false)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rec.Code)
	}
}
