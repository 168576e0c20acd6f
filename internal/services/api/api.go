// Package api provides the HTTP API for the application
package api

import (
	"spamjar/internal/platform/config"
	"spamjar/internal/platform/logger"
	phttp "spamjar/internal/platform/net/http"
	"spamjar/internal/platform/net/middleware"

	"spamjar/internal/modkit"
	"spamjar/internal/modkit/httpkit"
	"spamjar/internal/modkit/module"
	"spamjar/internal/modkit/swaggerkit"

	detectdomain "spamjar/internal/services/api/detect/domain"
	detectmod "spamjar/internal/services/api/detect/module"
	metahttp "spamjar/internal/services/api/meta/http"
	metamod "spamjar/internal/services/api/meta/module"
	videosdomain "spamjar/internal/services/api/videos/domain"
	videosmod "spamjar/internal/services/api/videos/module"
)

// Classifier is what the api needs from the loaded classifier
type Classifier interface {
	detectdomain.Classifier
	metahttp.ClassifierInfo
}

// Options are the API options
type Options struct {
	Config     config.Conf
	Logger     *logger.Logger
	Classifier Classifier
	Comments   videosdomain.CommentSource
	// Cache is reported by /meta/ready; leave nil when no cache is configured
	Cache metahttp.Pinger

	EnableSwagger  bool
	EnableProfiler bool
	Stack          httpkit.StackOptions
}

// Modules builds the api modules in dependency order: detect first, videos consumes its port
func Modules(opt Options) []module.Module {
	l := opt.Logger
	if l == nil {
		l = logger.Get()
	}
	deps := modkit.Deps{Cfg: opt.Config, Log: *l}

	detect := detectmod.New(deps, detectmod.FromConfig(deps.Cfg, opt.Classifier))
	det := module.MustPortsOf[detectmod.Ports](detect).Detector

	checks := map[string]metahttp.Pinger{"cache": opt.Cache}

	return []module.Module{
		metamod.New(deps, metamod.Options{Classifier: opt.Classifier, Checks: checks}),
		detect,
		videosmod.New(deps, videosmod.FromConfig(deps.Cfg, opt.Comments, det)),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// load balancer probe outside the versioned tree
	r.Use(middleware.Heartbeat("/ping"))

	mods := Modules(opt)

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
	logger.Named("api").Info().Strs("modules", module.Names()).Bool("swagger", opt.EnableSwagger).Msg("api mounted")
}
