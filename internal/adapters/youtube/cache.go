package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	perr "spamjar/internal/platform/errors"
	"spamjar/internal/platform/logger"

	"github.com/valkey-io/valkey-go"
)

// Source yields the comments of a video
type Source interface {
	Comments(ctx context.Context, videoID string, maxResults int) ([]string, error)
}

// Store is the key value surface the comment cache needs
type Store interface {
	Get(ctx context.Context, key string) (val string, ok bool, err error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
	Ping(ctx context.Context) error
}

const defaultCacheTTL = 5 * time.Minute

// CacheOptions configures the Valkey connection
type CacheOptions struct {
	Addr     string
	Password string
	DB       int
}

// ValkeyStore implements Store on valkey-go
type ValkeyStore struct {
	c valkey.Client
}

// NewValkeyStore connects to Valkey and pings it once
func NewValkeyStore(ctx context.Context, o CacheOptions) (*ValkeyStore, error) {
	c, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:      []string{o.Addr},
		Password:         o.Password,
		SelectDB:         o.DB,
		ConnWriteTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "connect valkey %s", o.Addr)
	}
	s := &ValkeyStore{c: c}
	if err := s.Ping(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return s, nil
}

// Get returns the value for key; a missing key is ok=false with no error
func (s *ValkeyStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.c.Do(ctx, s.c.B().Get().Key(key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, perr.Wrapf(err, perr.ErrorCodeUnavailable, "valkey get")
	}
	return v, true, nil
}

// Set stores val under key for ttl (rounded down to seconds, at least one)
func (s *ValkeyStore) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	secs := int64(ttl / time.Second)
	if secs < 1 {
		secs = 1
	}
	if err := s.c.Do(ctx, s.c.B().Setex().Key(key).Seconds(secs).Value(val).Build()).Error(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "valkey setex")
	}
	return nil
}

// Ping checks the connection
func (s *ValkeyStore) Ping(ctx context.Context) error {
	if err := s.c.Do(ctx, s.c.B().Ping().Build()).Error(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "valkey ping")
	}
	return nil
}

// Close releases the connection pool
func (s *ValkeyStore) Close() { s.c.Close() }

// Cached decorates a Source with a read-through cache keyed by (video id, max results).
// Cache failures are logged and never surface to callers
type Cached struct {
	src   Source
	store Store
	ttl   time.Duration
	log   logger.Logger
}

// NewCached wraps src; ttl <= 0 defaults to five minutes
func NewCached(src Source, store Store, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cached{src: src, store: store, ttl: ttl, log: *logger.Named("youtube.cache")}
}

func cacheKey(videoID string, maxResults int) string {
	return fmt.Sprintf("youtube:comments:%s:%d", videoID, maxResults)
}

// Comments serves from the cache when possible, otherwise from the wrapped source
func (c *Cached) Comments(ctx context.Context, videoID string, maxResults int) ([]string, error) {
	key := cacheKey(videoID, maxResults)

	raw, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		c.log.Warn().Err(err).Str("key", key).Msg("comment cache read failed")
	case ok:
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			c.log.Debug().Str("key", key).Int("comments", len(out)).Msg("comment cache hit")
			return out, nil
		}
		c.log.Warn().Str("key", key).Msg("comment cache entry corrupt; refetching")
	}

	out, err := c.src.Comments(ctx, videoID, maxResults)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return out, nil
	}
	if err := c.store.Set(ctx, key, string(b), c.ttl); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("comment cache write failed")
	}
	return out, nil
}

// Ping reports the health of the cache store
func (c *Cached) Ping(ctx context.Context) error { return c.store.Ping(ctx) }
