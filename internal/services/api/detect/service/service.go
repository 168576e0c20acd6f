// Package service validates detection requests, assigns identifiers and classifies
package service

import (
	"context"

	perr "spamjar/internal/platform/errors"
	"spamjar/internal/platform/logger"
	pstrings "spamjar/internal/platform/strings"
	"spamjar/internal/services/api/detect/domain"

	"github.com/google/uuid"
)

// Service defines the detect service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the detect service
type Svc struct {
	cls    domain.Classifier
	policy domain.IDPolicy
	newID  func() uuid.UUID
}

// New constructs a detect service; an empty policy means random
func New(cls domain.Classifier, policy domain.IDPolicy) *Svc {
	if cls == nil {
		panic("detect.Service requires a non nil Classifier")
	}
	if policy == "" {
		policy = domain.IDPolicyRandom
	}
	return &Svc{cls: cls, policy: policy, newID: uuid.New}
}

// Detect validates the request, assigns an id if needed and classifies the content
func (s *Svc) Detect(ctx context.Context, in domain.DetectionRequest) (domain.DetectionResult, error) {
	if pstrings.Blank(in.Content) {
		return domain.DetectionResult{}, perr.WithField(perr.Validationf(domain.MsgContentRequired), "content")
	}

	id := s.assign(in.UUID)

	spam, err := s.cls.IsSpam(ctx, in.Content)
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("uuid", id.String()).Msg("classifier failed")
		return domain.DetectionResult{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "internal server error")
	}
	return domain.DetectionResult{UUID: id, IsSpam: spam}, nil
}

// Policy returns the identifier policy in effect
func (s *Svc) Policy() domain.IDPolicy { return s.policy }

func (s *Svc) assign(in *uuid.UUID) uuid.UUID {
	if in != nil {
		return *in
	}
	if s.policy == domain.IDPolicyNil {
		return uuid.Nil
	}
	return s.newID()
}
