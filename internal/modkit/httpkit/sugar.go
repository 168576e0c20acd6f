package httpkit

import (
	"net/http"
)

// Get registers a no-body handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// PostJSON mounts a JSON body handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// GetRequest mounts a GET handler whose input is bound from path and query
func GetRequest[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, Call(func(req *http.Request) (any, error) {
		in, err := Request[T](req)
		if err != nil {
			return nil, err
		}
		return h(req, in)
	}))
}
