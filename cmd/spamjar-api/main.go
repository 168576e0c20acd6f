// @title         Spamjar API
// @version       0.1.0
// @description   Spam verdicts for YouTube comments

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"spamjar/internal/adapters/youtube"
	"spamjar/internal/core/classifier"
	"spamjar/internal/modkit/httpkit"
	"spamjar/internal/platform/config"
	"spamjar/internal/platform/logger"
	phttp "spamjar/internal/platform/net/http"
	metahttp "spamjar/internal/services/api/meta/http"
	videosdomain "spamjar/internal/services/api/videos/domain"

	"spamjar/internal/services/api"
)

func main() {
	// .env first so LOG_* and friends can come from it; the real environment wins
	loaded, dotenvErr := config.LoadDotenv(os.Getenv("CORE_ENV_FILE"), ".env")

	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = "spamjar-api"
	}
	logger.Init(opts)
	l := logger.Get()
	if dotenvErr != nil {
		l.Panic().Err(dotenvErr).Msg("dotenv load failed")
	}
	if len(loaded) > 0 {
		l.Info().Strs("files", loaded).Msg("dotenv loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	cls, err := classifier.FromConfig(root.Prefix("CORE_CLASSIFIER_"))
	if err != nil {
		l.Panic().Err(err).Msg("classifier load failed")
	}
	info := cls.Info()
	l.Info().Str("kind", string(info.Kind)).Float64("threshold", info.Threshold).Str("detail", info.Detail).Msg("classifier loaded")

	// comment source, optionally behind a valkey cache
	yt := youtube.FromConfig(root)
	if yt.Client.APIKey == "" {
		l.Warn().Msg("YOUTUBE_DATA_API_KEY is empty; process_page calls will fail upstream")
	}
	var (
		comments videosdomain.CommentSource = youtube.NewClient(yt.Client)
		cache    metahttp.Pinger
	)
	if yt.CacheEnabled() {
		store, err := youtube.NewValkeyStore(ctx, yt.Cache)
		if err != nil {
			// the cache only saves quota; run without it
			l.Warn().Err(err).Str("addr", yt.Cache.Addr).Msg("comment cache unavailable, continuing without it")
		} else {
			defer store.Close()
			cached := youtube.NewCached(comments, store, yt.CacheTTL)
			comments, cache = cached, cached
			l.Info().Str("addr", yt.Cache.Addr).Dur("ttl", yt.CacheTTL).Msg("comment cache enabled")
		}
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			Classifier:     cls,
			Comments:       comments,
			Cache:          cache,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
				Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 0),
				MaxInFlight: apiCfg.MayInt("MAX_INFLIGHT", 0),
			},
		},
	)

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
