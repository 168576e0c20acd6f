// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"spamjar/internal/core/version"
	modkit "spamjar/internal/modkit"
	"spamjar/internal/modkit/httpkit"

	metahttp "spamjar/internal/services/api/meta/http"
)

// Options are the probes the meta routes report on
type Options struct {
	Classifier metahttp.ClassifierInfo
	Checks     map[string]metahttp.Pinger
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base

	deps metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(_ modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	return &Module{
		Base: modkit.NewBase("meta", "/meta", opts...),
		deps: metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   time.Now(),
			Classifier:  o.Classifier,
			Checks:      o.Checks,
		},
	}
}

// MountRoutes implements the modkit.Module interface.
// /health lives at the api root, everything else under the prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	metahttp.RegisterHealth(r)
	m.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
