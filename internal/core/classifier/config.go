package classifier

import (
	"fmt"
	"time"

	"spamjar/internal/platform/config"
)

// FromConfig builds the classifier selected by cfg, which is expected to be
// prefixed (CORE_CLASSIFIER_). Keys: KIND, THRESHOLD, CONSTANT, MAX_LEN,
// MODEL_PATH, REMOTE_URL, REMOTE_TIMEOUT. Invalid enum values panic
func FromConfig(cfg config.Conf) (*Classifier, error) {
	kind := Kind(cfg.MayEnum("KIND", string(KindConstant),
		string(KindConstant), string(KindLength), string(KindModel), string(KindRemote)))
	threshold := cfg.MayFloat64("THRESHOLD", DefaultThreshold)

	switch kind {
	case KindLength:
		maxLen := cfg.MayInt("MAX_LEN", 200)
		return New(kind, Length{MaxLen: maxLen}, threshold, fmt.Sprintf("max_len=%d", maxLen)), nil
	case KindModel:
		path := cfg.MustString("MODEL_PATH")
		lin, err := LoadLinear(path)
		if err != nil {
			return nil, err
		}
		return New(kind, lin, threshold, fmt.Sprintf("model=%s terms=%d", lin.model.Name, lin.Vocabulary())), nil
	case KindRemote:
		url := cfg.MayURL("REMOTE_URL", "")
		rem, err := NewRemote(RemoteOptions{URL: url, Timeout: cfg.MayDuration("REMOTE_TIMEOUT", 5*time.Second)})
		if err != nil {
			return nil, err
		}
		return New(kind, rem, threshold, "url="+url), nil
	default:
		verdict := cfg.MayBool("CONSTANT", false)
		return New(KindConstant, Constant(verdict), threshold, fmt.Sprintf("verdict=%t", verdict)), nil
	}
}
