// Package domain holds the videos module types and ports
package domain

import detectdomain "spamjar/internal/services/api/detect/domain"

// Page size bounds for ProcessPageInput.MaxResults
const (
	DefaultMaxResults = 50
	MaxMaxResults     = 100
)

// ProcessPageInput is bound from the path and query of GET /process_page/{video_id}
type ProcessPageInput struct {
	VideoID    string `path:"video_id" validate:"video_id"`
	MaxResults int    `query:"max_results" default:"50" validate:"min=1,max=100"`
}

// VideoBatchResult aggregates the verdicts for a page of comments in source order
type VideoBatchResult struct {
	ID       string                         `json:"id"`
	NB       int                            `json:"nb"`
	Comments []detectdomain.DetectionResult `json:"comments"`
}
