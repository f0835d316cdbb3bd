// Package model defines shared types for the relay.
package model

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// RelayRequest represents a validated client request to be fetched upstream.
type RelayRequest struct {
	Ctx    context.Context
	Target *url.URL
}

// UpstreamResponse represents the upstream response to be relayed back.
// Body is a stream of unknown length; the consumer owns closing it.
type UpstreamResponse struct {
	StatusCode int
	Status     string // full status line text, e.g. "404 Not Found"
	Header     http.Header
	Body       io.ReadCloser
}

// StatusText returns the reason phrase of the upstream status line,
// falling back to the standard text for the status code. Non-standard
// upstream phrases are preserved.
func (r *UpstreamResponse) StatusText() string {
	if _, text, ok := strings.Cut(r.Status, " "); ok && text != "" {
		return text
	}
	if text := http.StatusText(r.StatusCode); text != "" {
		return text
	}
	return r.Status
}
