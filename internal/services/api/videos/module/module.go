// Package module wires videos into the API using modkit
package module

import (
	modkit "spamjar/internal/modkit"
	"spamjar/internal/modkit/httpkit"
	videoshttp "spamjar/internal/services/api/videos/http"
	videossvc "spamjar/internal/services/api/videos/service"
)

// Module implements the videos module
type Module struct {
	modkit.Base

	svc   *videossvc.Svc
	ports Ports
}

// New constructs the videos module mounted at /process_page
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	svc := videossvc.New(o.Source, o.Detector, o.Workers)
	deps.Log.Info().Int("workers", max(o.Workers, 1)).Msg("videos module ready")

	return &Module{
		Base:  modkit.NewBase("videos", "/process_page", opts...),
		svc:   svc,
		ports: Ports{Processor: svc},
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { videoshttp.Register(rr, m.svc) })
}
