// Package domain holds the detect module types and ports
package domain

import "github.com/google/uuid"

// MsgContentRequired is the validation message for blank content
const MsgContentRequired = "content is required and cannot be empty"

// DetectionRequest asks for a verdict on one comment.
// A nil UUID is filled by the configured IDPolicy
type DetectionRequest struct {
	UUID    *uuid.UUID `json:"uuid,omitempty"`
	Content string     `json:"content" validate:"notblank"`
}

// DetectionResult is the verdict for one comment
type DetectionResult struct {
	UUID   uuid.UUID `json:"uuid"`
	IsSpam bool      `json:"is_spam"`
}

// IDPolicy decides the identifier of requests that did not carry one
type IDPolicy string

// Supported policies
const (
	// IDPolicyRandom assigns a fresh v4 UUID
	IDPolicyRandom IDPolicy = "random"
	// IDPolicyNil assigns the all zero UUID
	IDPolicyNil IDPolicy = "nil"
)
