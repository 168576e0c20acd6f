package module

import "spamjar/internal/services/api/videos/domain"

// Ports exposes the batch processor, used by the CLI
type Ports struct {
	Processor domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
