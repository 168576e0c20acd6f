package module

import (
	"context"

	"spamjar/internal/services/api/detect/domain"
	detectsvc "spamjar/internal/services/api/detect/service"
)

// Ports is the detect port bundle other modules pull with module.MustPortsOf
type Ports struct {
	Detector domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptDetectPort struct{ svc *detectsvc.Svc }

// Detect classifies one comment
func (a adaptDetectPort) Detect(ctx context.Context, in domain.DetectionRequest) (domain.DetectionResult, error) {
	return a.svc.Detect(ctx, in)
}
