package domain

import (
	"context"

	detectdomain "spamjar/internal/services/api/detect/domain"
)

// ServicePort is consumed by handlers and the CLI
type ServicePort interface {
	ProcessVideo(ctx context.Context, in ProcessPageInput) (VideoBatchResult, error)
}

// CommentSource returns up to maxResults comment texts of a video, in source order
type CommentSource interface {
	Comments(ctx context.Context, videoID string, maxResults int) ([]string, error)
}

// Detector is the detect port the batch runs every comment through
type Detector = detectdomain.ServicePort
