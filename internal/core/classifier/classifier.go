// Package classifier turns comment text into a spam verdict.
// A Scorer produces a spam probability in [0,1]; the Classifier applies a threshold
package classifier

import (
	"context"
	"math"

	perr "spamjar/internal/platform/errors"
)

// DefaultThreshold is the decision boundary; a comment is spam when p > threshold
const DefaultThreshold = 0.5

// Kind names a scorer implementation
type Kind string

// Supported kinds
const (
	KindConstant Kind = "constant"
	KindLength   Kind = "length"
	KindModel    Kind = "model"
	KindRemote   Kind = "remote"
)

// Scorer returns the probability that text is spam
type Scorer interface {
	SpamProbability(ctx context.Context, text string) (float64, error)
}

// ScorerFunc adapts a function to Scorer
type ScorerFunc func(ctx context.Context, text string) (float64, error)

// SpamProbability calls f
func (f ScorerFunc) SpamProbability(ctx context.Context, text string) (float64, error) {
	return f(ctx, text)
}

// Info describes a loaded classifier for the meta endpoints
type Info struct {
	Kind      Kind    `json:"kind"`
	Threshold float64 `json:"threshold"`
	Detail    string  `json:"detail,omitempty"`
}

// Classifier wraps a Scorer with a threshold. It is read-only after construction
// and safe for concurrent use when the scorer is
type Classifier struct {
	scorer    Scorer
	threshold float64
	info      Info
}

// New builds a Classifier; thresholds outside [0,1] fall back to DefaultThreshold
func New(kind Kind, s Scorer, threshold float64, detail string) *Classifier {
	if threshold < 0 || threshold > 1 || math.IsNaN(threshold) {
		threshold = DefaultThreshold
	}
	return &Classifier{
		scorer:    s,
		threshold: threshold,
		info:      Info{Kind: kind, Threshold: threshold, Detail: detail},
	}
}

// Probability returns the raw score for text
func (c *Classifier) Probability(ctx context.Context, text string) (float64, error) {
	p, err := c.scorer.SpamProbability(ctx, text)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, perr.Newf(perr.ErrorCodeUnknown, "classifier returned out of range probability %v", p)
	}
	return p, nil
}

// IsSpam reports whether text scores strictly above the threshold
func (c *Classifier) IsSpam(ctx context.Context, text string) (bool, error) {
	p, err := c.Probability(ctx, text)
	if err != nil {
		return false, err
	}
	return p > c.threshold, nil
}

// Info returns what the classifier is running
func (c *Classifier) Info() Info { return c.info }
