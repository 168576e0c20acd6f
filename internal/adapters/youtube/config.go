package youtube

import (
	"time"

	"spamjar/internal/platform/config"
)

// Settings is everything main needs to build the comment source
type Settings struct {
	Client   Options
	Cache    CacheOptions
	CacheTTL time.Duration
}

// CacheEnabled reports whether a cache address was configured
func (s Settings) CacheEnabled() bool { return s.Cache.Addr != "" }

// FromConfig reads YOUTUBE_DATA_API_KEY and the CORE_YOUTUBE_* settings from root.
// An empty API key is allowed here; upstream rejects it per call
func FromConfig(root config.Conf) Settings {
	yc := root.Prefix("CORE_YOUTUBE_")
	return Settings{
		Client: Options{
			BaseURL:    yc.MayURL("BASE_URL", baseURLDefault),
			APIKey:     root.MayString("YOUTUBE_DATA_API_KEY", ""),
			Timeout:    yc.MayDuration("TIMEOUT", defaultTimeout),
			MaxRetries: yc.MayInt("MAX_RETRIES", 0),
			RetryBase:  yc.MayDuration("RETRY_BASE", defaultRetryBase),
		},
		Cache: CacheOptions{
			Addr:     yc.MayString("CACHE_ADDR", ""),
			Password: yc.MayString("CACHE_PASSWORD", ""),
			DB:       yc.MayInt("CACHE_DB", 0),
		},
		CacheTTL: yc.MayDuration("CACHE_TTL", defaultCacheTTL),
	}
}
