package http

import (
	"net/http"

	"spamjar/internal/platform/net/http/bind"
)

// JSONHandler adapts a pure JSON handler to a platform Handler
// the body is decoded and validated by bind.ParseJSON before fn runs
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// NoBodyHandler calls fn without parsing a request body and wraps the result
func NoBodyHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return result(fn(r))
	})
}

// result turns a handler's (value, error) pair into a Response; a returned Response passes through
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
