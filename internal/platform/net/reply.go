package net

import (
	"net/http"

	perr "spamjar/internal/platform/errors"
)

// Wire is the error envelope written by transports
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// Error builds an error envelope; the message never includes wrapped causes
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		err = perr.Internalf("internal server error")
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	msg := w.Message
	if _, ours := perr.As(err); !ours {
		// foreign errors can carry anything; do not echo them
		msg = "internal server error"
	}
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      msg,
		RequestID:  reqID,
	}
}
