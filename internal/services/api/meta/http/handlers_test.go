package http

import (
	stdctx "context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spamjar/internal/core/classifier"
	"spamjar/internal/core/version"
	"spamjar/internal/modkit/httpkit"
	phttp "spamjar/internal/platform/net/http"
	"spamjar/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type pingFunc func(stdctx.Context) error

func (f pingFunc) Ping(ctx stdctx.Context) error { return f(ctx) }

type staticInfo classifier.Info

func (s staticInfo) Info() classifier.Info { return classifier.Info(s) }

func call(t *testing.T, h func(*http.Request) (any, error)) any {
	t.Helper()
	v, err := h(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return v
}

func TestHealthRoute(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	RegisterHealth(r)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	got := testkit.MustDecode[map[string]string](t, rec.Body)
	if got["version"] != version.Version || got["status"] != "ok" || len(got) != 2 {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestReady(t *testing.T) {
	ok := pingFunc(func(stdctx.Context) error { return nil })
	down := pingFunc(func(stdctx.Context) error { return errors.New("connection refused") })
	cls := staticInfo{Kind: classifier.KindConstant, Threshold: 0.5}

	cases := []struct {
		name   string
		deps   Deps
		status string
		checks int
	}{
		{"all ok", Deps{Classifier: cls, Checks: map[string]Pinger{"cache": ok}}, "ok", 2},
		{"no checks", Deps{Classifier: cls}, "ok", 1},
		{"skipped cache", Deps{Classifier: cls, Checks: map[string]Pinger{"cache": nil}}, "ok", 2},
		{"cache down", Deps{Classifier: cls, Checks: map[string]Pinger{"cache": down}}, "degraded", 2},
		{"no classifier", Deps{Checks: map[string]Pinger{"cache": ok}}, "fail", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHandlers(tc.deps)
			got := call(t, h.ready).(ReadyResponse)
			if got.Status != tc.status || len(got.Checks) != tc.checks {
				t.Fatalf("status=%q checks=%+v", got.Status, got.Checks)
			}
			if got.Checks[0].Name != "classifier" {
				t.Fatalf("classifier check should come first: %+v", got.Checks)
			}
		})
	}
}

func TestReady_HonorsTimeout(t *testing.T) {
	slow := pingFunc(func(ctx stdctx.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	h := newHandlers(Deps{
		Classifier:   staticInfo{},
		Checks:       map[string]Pinger{"cache": slow},
		ReadyTimeout: 20 * time.Millisecond,
	})
	got := call(t, h.ready).(ReadyResponse)
	if got.Status != "degraded" || got.Checks[1].Error == "" {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestServiceUptime(t *testing.T) {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	h := newHandlers(Deps{ServiceName: "spamjar-api", StartedAt: start})
	h.now = func() time.Time { return start.Add(90 * time.Second) }

	got := call(t, h.service).(ServiceResponse)
	if got.Name != "spamjar-api" || got.Uptime != 90 || got.Started != "2026-10-19T12:00:00Z" {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestClassifierInfo(t *testing.T) {
	h := newHandlers(Deps{Classifier: staticInfo{Kind: classifier.KindLength, Threshold: 0.7, Detail: "max_len=200"}})
	got := call(t, h.classifier).(ClassifierResponse)
	if got.Kind != "length" || got.Threshold != 0.7 || got.Detail != "max_len=200" {
		t.Fatalf("unexpected %+v", got)
	}
	if got.Build.Version != version.Version {
		t.Fatalf("build info missing: %+v", got.Build)
	}

	empty := call(t, newHandlers(Deps{}).classifier).(ClassifierResponse)
	if empty.Kind != "" {
		t.Fatalf("no classifier should report empty kind, got %q", empty.Kind)
	}
}

func TestRegister_Routes(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	httpkit.MountUnder(r, "/meta", nil, func(rr httpkit.Router) {
		Register(rr, Deps{Classifier: staticInfo{Kind: classifier.KindConstant}})
	})
	for _, path := range []string{"/meta/ready", "/meta/version", "/meta/service", "/meta/classifier"} {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
	}
}
