// Package service fetches a page of comments and classifies each of them
package service

import (
	"context"

	perr "spamjar/internal/platform/errors"
	"spamjar/internal/platform/logger"
	"spamjar/internal/platform/net/http/bind"
	detectdomain "spamjar/internal/services/api/detect/domain"
	"spamjar/internal/services/api/videos/domain"

	"golang.org/x/sync/errgroup"
)

// Service defines the videos service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the videos service
type Svc struct {
	src     domain.CommentSource
	det     domain.Detector
	workers int
}

// New constructs a videos service; workers < 1 means sequential
func New(src domain.CommentSource, det domain.Detector, workers int) *Svc {
	if src == nil {
		panic("videos.Service requires a non nil CommentSource")
	}
	if det == nil {
		panic("videos.Service requires a non nil Detector")
	}
	if workers < 1 {
		workers = 1
	}
	return &Svc{src: src, det: det, workers: workers}
}

// ProcessVideo fetches one page of comments and classifies each one, keeping source order.
// Upstream input errors pass through tagged with video_id; every other
// failure, including a single failed classification, becomes a generic internal error
func (s *Svc) ProcessVideo(ctx context.Context, in domain.ProcessPageInput) (domain.VideoBatchResult, error) {
	if err := bind.Validate(in); err != nil {
		return domain.VideoBatchResult{}, err
	}
	ctx = logger.WithField(ctx, "video_id", in.VideoID)
	log := logger.C(ctx)

	texts, err := s.src.Comments(ctx, in.VideoID, in.MaxResults)
	if err != nil {
		if perr.IsValidation(err) {
			return domain.VideoBatchResult{}, perr.WithField(err, "video_id")
		}
		log.Error().Err(err).Msg("comment source failed")
		return domain.VideoBatchResult{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "internal server error")
	}

	results, err := s.classify(ctx, texts)
	if err != nil {
		log.Error().Err(err).Msg("comment classification failed")
		return domain.VideoBatchResult{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "internal server error")
	}

	log.Info().Int("comments", len(results)).Msg("video page processed")
	return domain.VideoBatchResult{ID: in.VideoID, NB: len(results), Comments: results}, nil
}

// classify runs every text through the detector. Results are written by index so
// order survives parallel execution; the first error cancels the rest
func (s *Svc) classify(ctx context.Context, texts []string) ([]detectdomain.DetectionResult, error) {
	out := make([]detectdomain.DetectionResult, len(texts))
	if s.workers == 1 {
		for i, t := range texts {
			res, err := s.det.Detect(ctx, detectdomain.DetectionRequest{Content: t})
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, t := range texts {
		g.Go(func() error {
			res, err := s.det.Detect(gctx, detectdomain.DetectionRequest{Content: t})
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
