// Package youtube is a small YouTube Data API v3 client for reading comment threads
package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	perr "spamjar/internal/platform/errors"
	"spamjar/internal/platform/logger"
)

const (
	baseURLDefault     = "https://www.googleapis.com"
	commentThreadsPath = "/youtube/v3/commentThreads"
	defaultTimeout     = 10 * time.Second
	defaultUA          = "spamjar-api"
	defaultRetryBase   = 500 * time.Millisecond

	// MaxPageSize is the largest maxResults the API accepts for commentThreads
	MaxPageSize = 100
)

// Options configures the Client
type Options struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration

	// Retries apply to transport errors, 429 and 5xx only; 0 disables them
	MaxRetries int
	RetryBase  time.Duration
}

// Client reads the first page of top level comments of a video
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("youtube"),
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Comments returns the display text of up to maxResults top level comments, in API order
func (c *Client) Comments(ctx context.Context, videoID string, maxResults int) ([]string, error) {
	if videoID == "" {
		return nil, perr.InvalidArgf("video id is required")
	}
	if maxResults < 1 || maxResults > MaxPageSize {
		return nil, perr.InvalidArgf("max results must be between 1 and %d", MaxPageSize)
	}

	q := url.Values{}
	q.Set("key", c.opts.APIKey)
	q.Set("textFormat", "plainText")
	q.Set("part", "snippet")
	q.Set("videoId", videoID)
	q.Set("maxResults", strconv.Itoa(maxResults))

	body, err := c.get(ctx, commentThreadsPath, q)
	if err != nil {
		return nil, err
	}

	var page commentThreadList
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "decode youtube comment threads")
	}
	out := make([]string, 0, len(page.Items))
	for _, it := range page.Items {
		out = append(out, it.Snippet.TopLevelComment.Snippet.TextDisplay)
	}
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	c.log.Debug().Str("video_id", videoID).Int("comments", len(out)).Msg("youtube comment threads fetched")
	return out, nil
}

// get issues a GET with retries on transient failures and returns the 200 body
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := c.opts.BaseURL + path + "?" + q.Encode()
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "youtube request cancelled")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "youtube new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "youtube request failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempts).Msg("youtube transport error retrying")
			if err := c.sleep(ctx, back); err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "youtube request cancelled")
			}
			attempts++
			continue
		}

		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("youtube http response")

		if resp.StatusCode == http.StatusOK {
			body, err := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read youtube response")
			}
			return body, nil
		}

		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		_ = drainAndClose(resp.Body)
		serr := statusError(resp.StatusCode, tail)
		if !perr.Retryable(serr) || !c.shouldRetry(attempts) {
			return nil, serr
		}
		wait := retryAfter(resp.Header)
		if wait <= 0 {
			wait = c.backoff(attempts)
		}
		c.log.Warn().Int("status", resp.StatusCode).Dur("retry_in", wait).Int("attempt", attempts).Msg("youtube transient error retrying")
		if err := c.sleep(ctx, wait); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "youtube request cancelled")
		}
		attempts++
	}
}

// sleepCtx waits d or until ctx is done, whichever comes first
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if max := 30 * time.Second; d > max || d <= 0 {
		return max
	}
	return d
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

// retryAfter reads a Retry-After header given in seconds
func retryAfter(h http.Header) time.Duration {
	s := h.Get("Retry-After")
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
