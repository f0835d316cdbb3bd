// Package service implements the core relay fetch logic.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"media-relay-go/internal/client"
	"media-relay-go/internal/model"
)

// ErrInvalidTarget is returned when a target URL is not an absolute
// http/https URL with a host.
var ErrInvalidTarget = errors.New("target is not an absolute http(s) URL")

// browserUserAgent is sent on every upstream fetch. Many media servers
// reject requests that do not look like they come from a browser.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// RelayService fetches target URLs with a browser-like header set.
type RelayService struct {
	client *client.UpstreamClient
	logger *slog.Logger
}

// NewRelayService creates a RelayService.
func NewRelayService(c *client.UpstreamClient, logger *slog.Logger) *RelayService {
	return &RelayService{
		client: c,
		logger: logger.With("component", "relay_service"),
	}
}

// ParseTarget validates a raw target URL. It must parse as an absolute URL
// with a host, and the scheme is restricted to http/https: a relay that
// dereferences file: or gopher: URLs on behalf of callers is an SSRF vector.
func ParseTarget(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse target: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidTarget, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidTarget)
	}
	return u, nil
}

// Fetch issues a single GET to the validated target and returns the upstream
// response. The caller is responsible for closing the response body.
func (s *RelayService) Fetch(rr *model.RelayRequest) (*model.UpstreamResponse, error) {
	header := browserHeaders(rr.Target)

	s.logger.Debug("fetching target",
		"host", rr.Target.Host,
		"scheme", rr.Target.Scheme,
	)

	resp, err := s.client.Get(rr.Ctx, rr.Target.String(), header)
	if err != nil {
		return nil, fmt.Errorf("fetch target: %w", err)
	}
	return resp, nil
}

// browserHeaders builds the fixed outbound header set for one fetch.
// Origin and Referer are derived from the target's scheme and host only;
// upstream servers commonly check them for a same-origin-looking value.
func browserHeaders(u *url.URL) http.Header {
	origin := u.Scheme + "://" + u.Host

	h := make(http.Header)
	h.Set("User-Agent", browserUserAgent)
	h.Set("Referer", origin+"/")
	h.Set("Origin", origin)
	h.Set("Accept", "*/*")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Connection", "keep-alive")
	h.Set("Cache-Control", "no-cache")
	return h
}
