package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"spamjar/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; the zero value is usable
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration // default 30s
	SlowLog     time.Duration // default 2s
	MaxInFlight int           // concurrent request cap, 0 is unlimited
}

// CommonStack returns the baseline middleware slice for the API root
func CommonStack(opts ...StackOptions) []func(http.Handler) http.Handler {
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.SlowLog <= 0 {
		o.SlowLog = 2 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext,

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowLog}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Throttle(o.MaxInFlight),
		middleware.Heartbeat("/ping"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
