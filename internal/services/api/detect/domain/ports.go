package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Detect(ctx context.Context, in DetectionRequest) (DetectionResult, error)
}

// Classifier is the verdict source the service depends on
type Classifier interface {
	IsSpam(ctx context.Context, text string) (bool, error)
}
