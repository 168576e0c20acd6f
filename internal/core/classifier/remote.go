package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"time"

	perr "spamjar/internal/platform/errors"
	"spamjar/internal/platform/logger"
)

const defaultRemoteTimeout = 5 * time.Second

// RemoteOptions configures a Remote scorer
type RemoteOptions struct {
	URL     string
	Timeout time.Duration
}

// Remote asks an HTTP scoring service for probabilities.
// Request body {"texts":[...]}, response body {"probabilities":[...]}
type Remote struct {
	http *http.Client
	url  string
	log  logger.Logger
}

type remoteRequest struct {
	Texts []string `json:"texts"`
}

type remoteResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// NewRemote builds a Remote scorer
func NewRemote(o RemoteOptions) (*Remote, error) {
	if o.URL == "" {
		return nil, perr.InvalidArgf("remote classifier url is required")
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultRemoteTimeout
	}
	return &Remote{
		http: &http.Client{Timeout: o.Timeout},
		url:  o.URL,
		log:  *logger.Named("classifier.remote"),
	}, nil
}

// SpamProbability scores a single text
func (r *Remote) SpamProbability(ctx context.Context, text string) (float64, error) {
	ps, err := r.Score(ctx, []string{text})
	if err != nil {
		return 0, err
	}
	return ps[0], nil
}

// Score scores texts in one round trip; the result has one probability per text
func (r *Remote) Score(ctx context.Context, texts []string) ([]float64, error) {
	body, err := json.Marshal(remoteRequest{Texts: texts})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "encode scoring request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "build scoring request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "scoring service unreachable")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		_ = resp.Body.Close()
	}()
	r.log.Debug().Int("status", resp.StatusCode).Int("texts", len(texts)).Dur("latency", time.Since(start)).Msg("scoring response")

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		code := perr.ErrorCodeUnknown
		if resp.StatusCode >= http.StatusInternalServerError {
			code = perr.ErrorCodeUnavailable
		}
		return nil, perr.Newf(code, "scoring service status %d body %s", resp.StatusCode, string(tail))
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "decode scoring response")
	}
	if len(out.Probabilities) != len(texts) {
		return nil, perr.Newf(perr.ErrorCodeUnknown, "scoring service returned %d probabilities for %d texts", len(out.Probabilities), len(texts))
	}
	for _, p := range out.Probabilities {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, perr.Newf(perr.ErrorCodeUnknown, "scoring service returned probability %v", p)
		}
	}
	return out.Probabilities, nil
}
