package modkit

import (
	"net/http"
	"testing"

	phttp "spamjar/internal/platform/net/http"
	"spamjar/internal/platform/testkit"
)

type stub struct {
	Base
	ports any
}

func (s *stub) MountRoutes(r phttp.Router) {
	s.Mount(r, func(rr phttp.Router) {
		rr.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})
}
func (s *stub) Ports() any { return s.ports }

var _ Module = (*stub)(nil)

func TestBuilder_ProducesModule(t *testing.T) {
	t.Parallel()

	var b Builder = func(_ Deps, opts ...Option) Module {
		return &stub{Base: NewBase("stub", "/stub", opts...), ports: "ok"}
	}

	m := b(Deps{}, WithName("renamed"))
	if m.Name() != "renamed" || m.Prefix() != "/stub" {
		t.Fatalf("identity %q %q", m.Name(), m.Prefix())
	}
	if p := m.Ports(); p != "ok" {
		t.Fatalf("Ports() = %v", p)
	}
}

func TestBase_IdentityGuards(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() { _ = NewBase("", "/x").Name() })
	testkit.MustPanic(t, func() { _ = NewBase("x", " / ").Prefix() })
	if got := NewBase("x", "meta/").Prefix(); got != "/meta" {
		t.Fatalf("Prefix() = %q", got)
	}
}
