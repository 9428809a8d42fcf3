package resource

import (
	"fmt"
	"net/http"
)

// Method is the HTTP verb a Resource issues.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// Fetch-style request settings. Mode travels as Sec-Fetch-Mode, cache
// policies other than CacheDefault as Cache-Control.
const (
	ModeCORS       = "cors"
	ModeSameOrigin = "same-origin"
	ModeNoCORS     = "no-cors"

	CacheDefault = "default"
	CacheNoStore = "no-store"
	CacheNoCache = "no-cache"
	CacheReload  = "reload"
)

// Options describes a Resource. Path is required and bound at construction.
type Options struct {
	Path   string
	Method Method
	Mode   string
	Cache  string
	Header http.Header
}

// HTTPResponse is the envelope every call resolves to.
// ParseErr is set, and Data left zero, when the body was not valid JSON.
type HTTPResponse[T any] struct {
	Response *http.Response
	Data     T
	ParseErr error
}

// StatusError is returned together with the envelope for non-2xx responses.
type StatusError struct {
	Method     Method
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("resource %s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}
