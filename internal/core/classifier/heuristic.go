package classifier

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Constant always returns the same verdict
type Constant bool

// SpamProbability is 1 for a spam verdict and 0 otherwise
func (c Constant) SpamProbability(context.Context, string) (float64, error) {
	if c {
		return 1, nil
	}
	return 0, nil
}

// Length flags comments whose trimmed rune count exceeds MaxLen
type Length struct {
	MaxLen int
}

// SpamProbability is 1 when the comment is longer than MaxLen runes
func (l Length) SpamProbability(_ context.Context, text string) (float64, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) > l.MaxLen {
		return 1, nil
	}
	return 0, nil
}
