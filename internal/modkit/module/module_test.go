package module

import (
	"testing"

	"spamjar/internal/modkit"
	phttp "spamjar/internal/platform/net/http"
)

type stubModule struct {
	modkit.Base
	ports any
}

func (s *stubModule) MountRoutes(phttp.Router) {}
func (s *stubModule) Ports() any               { return s.ports }

func TestModule_AliasAcceptsModkitModules(t *testing.T) {
	type detectPorts struct{ Policy string }

	var m Module = &stubModule{Base: modkit.NewBase("stub", "/stub"), ports: detectPorts{Policy: "nil"}}
	if m.Name() != "stub" || m.Prefix() != "/stub" {
		t.Fatalf("identity %q %q", m.Name(), m.Prefix())
	}
	got, ok := PortsOf[detectPorts](m)
	if !ok || got.Policy != "nil" {
		t.Fatalf("PortsOf direct bundle = %+v %v", got, ok)
	}
}
