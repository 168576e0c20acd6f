package module

import (
	"spamjar/internal/platform/config"
	"spamjar/internal/services/api/detect/domain"
)

// Options holds configuration settings for the detect module
type Options struct {
	Classifier domain.Classifier
	Policy     domain.IDPolicy
}

// FromConfig reads CORE_DETECT_* settings; the classifier is injected by the caller.
// An unknown CORE_DETECT_ID_POLICY panics
func FromConfig(cfg config.Conf, cls domain.Classifier) Options {
	df := cfg.Prefix("CORE_DETECT_")
	return Options{
		Classifier: cls,
		Policy: domain.IDPolicy(df.MayEnum("ID_POLICY", string(domain.IDPolicyRandom),
			string(domain.IDPolicyRandom), string(domain.IDPolicyNil))),
	}
}
