// Package module wires detect into the API using modkit
package module

import (
	modkit "spamjar/internal/modkit"
	"spamjar/internal/modkit/httpkit"
	detecthttp "spamjar/internal/services/api/detect/http"
	detectsvc "spamjar/internal/services/api/detect/service"
)

// Module implements the detect module
type Module struct {
	modkit.Base

	svc   *detectsvc.Svc
	ports Ports
}

// New constructs the detect module mounted at /detect
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	svc := detectsvc.New(o.Classifier, o.Policy)
	deps.Log.Info().Str("id_policy", string(svc.Policy())).Msg("detect module ready")

	return &Module{
		Base:  modkit.NewBase("detect", "/detect", opts...),
		svc:   svc,
		ports: Ports{Detector: adaptDetectPort{svc: svc}},
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { detecthttp.Register(rr, m.svc) })
}
