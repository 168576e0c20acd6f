// Package modkit provides building blocks for the API modules
package modkit

import (
	phttp "spamjar/internal/platform/net/http"
)

// Module is the common surface for API modules that can mount routes and expose ports
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port bundle for cross wiring
	Ports() any

	// Name returns the module name, unique per process
	Name() string
	// Prefix returns the route prefix the module owns, e.g. /detect
	Prefix() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
