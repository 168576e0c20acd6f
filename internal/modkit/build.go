package modkit

import (
	"net/http"

	"spamjar/internal/modkit/httpkit"
	str "spamjar/internal/platform/strings"
)

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies opts in order; hooks default to identity and no-op
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	b := Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Subrouter: c.subrouter,
		Register:  c.register,
	}
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}

// Base carries what every module shares. Embed it and implement Ports and MountRoutes
type Base struct {
	b Built
}

// NewBase builds a Base whose name and prefix default to name and prefix; opts override them
func NewBase(name, prefix string, opts ...Option) Base {
	return Base{b: Build(append([]Option{WithName(name), WithPrefix(prefix)}, opts...)...)}
}

// Name returns the module name; it panics when empty
func (m Base) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the normalized module prefix; it panics when empty
func (m Base) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Mount mounts own, then any WithRegister routes, under the module prefix with its middleware
func (m Base) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, m.Prefix(), m.b.Mw, func(rr httpkit.Router) {
		rr = m.b.Subrouter(rr)
		if own != nil {
			own(rr)
		}
		m.b.Register(rr)
	})
}
