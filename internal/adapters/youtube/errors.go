package youtube

import (
	"encoding/json"
	"net/http"
	"strings"

	perr "spamjar/internal/platform/errors"
)

// reasons that mean the caller asked for something that cannot be served
var invalidArgReasons = map[string]bool{
	"videoNotFound":     true,
	"invalidVideoId":    true,
	"invalidParameter":  true,
	"processingFailure": true,
	"commentsDisabled":  true,
	"channelNotFound":   true,
}

// reasons that mean the quota or rate budget is exhausted
var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
	"dailyLimitExceeded":    true,
}

// statusError maps a non-2xx response to a project error. Invalid argument
// errors carry the upstream message so callers can show it as-is
func statusError(status int, body []byte) error {
	var g googleError
	_ = json.Unmarshal(body, &g)
	reason := g.reason()
	msg := strings.TrimSpace(g.Error.Message)

	var err error
	switch {
	case invalidArgReasons[reason]:
		if msg == "" {
			msg = "youtube rejected the video id"
		}
		err = perr.InvalidArgf("%s", msg)
	case status == http.StatusNotFound:
		if msg == "" {
			msg = "video not found"
		}
		err = perr.InvalidArgf("%s", msg)
	case quotaReasons[reason], status == http.StatusTooManyRequests:
		err = perr.TooManyRequestsf("youtube quota exhausted (%s)", orStatus(reason, status))
	case status == http.StatusBadRequest, status == http.StatusUnauthorized, status == http.StatusForbidden:
		err = perr.Unauthorizedf("youtube rejected the request (%s)", orStatus(reason, status))
	case status >= http.StatusInternalServerError:
		err = perr.Unavailablef("youtube server error %d", status)
	default:
		err = perr.Newf(perr.ErrorCodeUnknown, "youtube unexpected status %d", status)
	}
	return perr.WithOp(err, "youtube.commentThreads")
}

func orStatus(reason string, status int) string {
	if reason != "" {
		return reason
	}
	return http.StatusText(status)
}
