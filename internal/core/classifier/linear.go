package classifier

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"os"

	"spamjar/internal/core/normalize"
	perr "spamjar/internal/platform/errors"
)

// URLToken is the pseudo token added when the raw comment contains a link
const URLToken = "__url__"

// Term is one vocabulary entry of a trained model
type Term struct {
	IDF    float64 `json:"idf"`
	Weight float64 `json:"weight"`
}

// Model is a TF-IDF + logistic regression model exported from offline training
type Model struct {
	Name        string          `json:"name"`
	Bias        float64         `json:"bias"`
	SublinearTF bool            `json:"sublinear_tf"`
	Terms       map[string]Term `json:"terms"`
}

// Linear scores text with a Model over normalized tokens
type Linear struct {
	model Model
	norm  *normalize.Normalizer
}

// NewLinear validates m and returns a scorer
func NewLinear(m Model) (*Linear, error) {
	if len(m.Terms) == 0 {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "model %q has no terms", m.Name)
	}
	for t, v := range m.Terms {
		if math.IsNaN(v.IDF) || math.IsNaN(v.Weight) || math.IsInf(v.IDF, 0) || math.IsInf(v.Weight, 0) {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "model term %q is not finite", t)
		}
	}
	if math.IsNaN(m.Bias) || math.IsInf(m.Bias, 0) {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "model bias is not finite")
	}
	return &Linear{model: m, norm: normalize.New()}, nil
}

// ReadModel decodes a model document
func ReadModel(r io.Reader) (Model, error) {
	var m Model
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return Model{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "decode model")
	}
	return m, nil
}

// LoadLinear reads a model file and builds the scorer
func LoadLinear(path string) (*Linear, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open model %s", path)
	}
	defer func() { _ = f.Close() }()

	m, err := ReadModel(f)
	if err != nil {
		return nil, perr.WithOp(err, "classifier.LoadLinear")
	}
	return NewLinear(m)
}

// Vocabulary returns the number of terms in the model
func (l *Linear) Vocabulary() int { return len(l.model.Terms) }

// SpamProbability computes sigmoid(bias + w . tfidf) with an L2-normalized tfidf vector
func (l *Linear) SpamProbability(_ context.Context, text string) (float64, error) {
	counts := map[string]int{}
	for _, tok := range l.norm.Tokenize(text) {
		if _, ok := l.model.Terms[tok]; ok {
			counts[tok]++
		}
	}
	if normalize.HasURL(text) {
		if _, ok := l.model.Terms[URLToken]; ok {
			counts[URLToken]++
		}
	}

	var dot, sq float64
	for tok, n := range counts {
		term := l.model.Terms[tok]
		tf := float64(n)
		if l.model.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		v := tf * term.IDF
		dot += v * term.Weight
		sq += v * v
	}
	z := l.model.Bias
	if sq > 0 {
		z += dot / math.Sqrt(sq)
	}
	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
