package module

import (
	"spamjar/internal/platform/config"
	"spamjar/internal/services/api/videos/domain"
)

// Options holds configuration settings for the videos module
type Options struct {
	Source   domain.CommentSource
	Detector domain.Detector
	Workers  int
}

// FromConfig reads CORE_VIDEOS_* settings; source and detector are injected by the caller
func FromConfig(cfg config.Conf, src domain.CommentSource, det domain.Detector) Options {
	vf := cfg.Prefix("CORE_VIDEOS_")
	return Options{
		Source:   src,
		Detector: det,
		Workers:  vf.MayInt("WORKERS", 1),
	}
}
