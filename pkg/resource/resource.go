package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"storefront-admin/pkg/log"
)

var ErrPathRequired = errors.New("resource: path is required")

// Resource is a reusable HTTP call descriptor bound to a path and default options.
type Resource[Req any, Resp any] struct {
	opts    Options
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	l       log.Logger
}

type settings struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	l       log.Logger
}

// Option customizes how a Resource reaches the network.
type Option func(*settings)

// WithBaseURL prefixes every request path with baseURL.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) { s.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) { s.client = client }
}

// WithLimiter paces calls; Handler waits on the limiter using the caller's context.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(s *settings) { s.limiter = limiter }
}

// WithLogger sets the logger that receives body parse failures.
func WithLogger(l log.Logger) Option {
	return func(s *settings) { s.l = l }
}

// New creates a Resource. Method defaults to POST, mode to cors, cache to default.
func New[Req any, Resp any](opts Options, options ...Option) (*Resource[Req, Resp], error) {
	if opts.Path == "" {
		return nil, ErrPathRequired
	}

	s := settings{client: http.DefaultClient, l: log.NewNop()}
	for _, o := range options {
		o(&s)
	}

	if opts.Method == "" {
		opts.Method = MethodPost
	}
	if opts.Mode == "" {
		opts.Mode = ModeCORS
	}
	if opts.Cache == "" {
		opts.Cache = CacheDefault
	}
	opts.Header = opts.Header.Clone()

	return &Resource[Req, Resp]{
		opts:    opts,
		baseURL: s.baseURL,
		client:  s.client,
		limiter: s.limiter,
		l:       s.l,
	}, nil
}

// Options returns a copy of the options the Resource was built with.
func (r *Resource[Req, Resp]) Options() Options {
	opts := r.opts
	opts.Header = opts.Header.Clone()
	return opts
}

// Handler issues one request. A nil payload sends no body and no JSON content type.
// Non-2xx statuses return the populated envelope together with a *StatusError.
func (r *Resource[Req, Resp]) Handler(ctx context.Context, payload *Req, override *Options) (HTTPResponse[Resp], error) {
	opts := r.merge(override)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return HTTPResponse[Resp]{}, fmt.Errorf("resource %s: marshal payload: %w", opts.Path, err)
		}
		body = bytes.NewReader(raw)
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return HTTPResponse[Resp]{}, fmt.Errorf("resource %s: rate limiter: %w", opts.Path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, string(opts.Method), r.baseURL+opts.Path, body)
	if err != nil {
		return HTTPResponse[Resp]{}, fmt.Errorf("resource %s: build request: %w", opts.Path, err)
	}
	for key, values := range opts.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Sec-Fetch-Mode", opts.Mode)
	if cc := cacheControl(opts.Cache); cc != "" {
		req.Header.Set("Cache-Control", cc)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return HTTPResponse[Resp]{}, fmt.Errorf("resource %s %s: %w", opts.Method, opts.Path, err)
	}
	defer resp.Body.Close()

	out := HTTPResponse[Resp]{Response: resp}
	if err := json.NewDecoder(resp.Body).Decode(&out.Data); err != nil {
		r.l.Errorf(ctx, "pkg.resource.Handler: %s %s: parse body (status %d): %v", opts.Method, opts.Path, resp.StatusCode, err)
		var zero Resp
		out.Data = zero
		out.ParseErr = err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, &StatusError{Method: opts.Method, Path: opts.Path, StatusCode: resp.StatusCode}
	}
	return out, nil
}

// merge applies override on top of the construction options. Path is not overridable.
func (r *Resource[Req, Resp]) merge(override *Options) Options {
	opts := r.opts
	opts.Header = r.opts.Header.Clone()
	if opts.Header == nil {
		opts.Header = http.Header{}
	}
	if override == nil {
		return opts
	}

	if override.Method != "" {
		opts.Method = override.Method
	}
	if override.Mode != "" {
		opts.Mode = override.Mode
	}
	if override.Cache != "" {
		opts.Cache = override.Cache
	}
	for key, values := range override.Header {
		opts.Header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	return opts
}

func cacheControl(policy string) string {
	switch policy {
	case CacheNoStore:
		return "no-store"
	case CacheNoCache, CacheReload:
		return "no-cache"
	default:
		return ""
	}
}
