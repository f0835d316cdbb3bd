package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"

	"media-relay-go/internal/config"
	"media-relay-go/internal/metrics"
	"media-relay-go/internal/model"
	"media-relay-go/internal/service"
)

// RelayHandler serves /api/proxy: it gates the request, fetches the target
// URL upstream and streams the response back to the client.
type RelayHandler struct {
	service *service.RelayService
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewRelayHandler creates a RelayHandler.
// The metrics parameter is optional; pass nil to disable relay byte counting.
func NewRelayHandler(svc *service.RelayService, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *RelayHandler {
	return &RelayHandler{
		service: svc,
		cfg:     cfg,
		logger:  logger.With("component", "relay_handler"),
		metrics: m,
	}
}

// applyCORS sets the three cross-origin headers the relay promises on every
// response. Set (not Add) so relay values win over any upstream values
// already copied into the header map.
func applyCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "*")
}

// Preflight answers CORS preflight requests for the browser-facing endpoints.
func Preflight(c echo.Context) error {
	applyCORS(c.Response().Header())
	return c.NoContent(http.StatusNoContent)
}

// Handle runs one relay operation: gate, fetch, header copy, body stream.
func (h *RelayHandler) Handle(c echo.Context) error {
	target := c.QueryParam("url")
	if target == "" {
		return h.errorJSON(c, http.StatusBadRequest, "Missing 'url' parameter")
	}

	if key := h.cfg.Relay.AccessKey; key != "" && c.QueryParam("key") != key {
		return h.errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	u, err := service.ParseTarget(target)
	if err != nil {
		h.logger.Warn("rejected target URL", "err", err)
		return h.errorJSON(c, http.StatusBadRequest, "Invalid 'url' parameter")
	}

	ctx := c.Request().Context()
	resp, err := h.service.Fetch(&model.RelayRequest{Ctx: ctx, Target: u})
	if err != nil {
		return h.fetchError(c, u.Host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Upstream reported failure: discard its body and surface the same
	// status with a JSON error instead of relaying the payload.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		h.logger.Warn("upstream returned failure status",
			"status", resp.StatusCode,
			"target_host", u.Host,
		)
		return h.errorJSON(c, resp.StatusCode, "Upstream error: "+resp.StatusText())
	}

	res := c.Response()
	for key, vals := range resp.Header {
		for _, v := range vals {
			res.Header().Add(key, v)
		}
	}
	// Apply-after: the CORS triad must override any colliding upstream values.
	applyCORS(res.Header())

	res.WriteHeader(resp.StatusCode)

	// From here on the status line is committed. A failed copy leaves the
	// client with a truncated response; all we can do is log it.
	written, err := h.streamBody(ctx, res, resp.Body)
	if h.metrics != nil {
		h.metrics.RelayedBytes.Add(float64(written))
	}
	if err != nil {
		h.logger.Error("streaming upstream body",
			"err", err,
			"target_host", u.Host,
			"bytes_written", written,
		)
	}
	return nil
}

// streamBody copies the upstream body to the client in fixed-size chunks,
// flushing after each write so slow or unbounded streams reach the client
// progressively. The context is checked between chunks; a client disconnect
// stops the loop and, via the request context, the upstream read.
func (h *RelayHandler) streamBody(ctx context.Context, dst *echo.Response, src io.Reader) (int64, error) {
	size := h.cfg.Relay.ChunkBytes
	if size <= 0 {
		size = 32 * 1024
	}
	buf := make([]byte, size)
	var written int64

	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, rerr := src.Read(buf)
		if n > 0 {
			wn, werr := dst.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, werr
			}
			dst.Flush()
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return written, nil
			}
			return written, rerr
		}
	}
}

// fetchError maps a failed upstream fetch to the client-facing 500. The
// classification only feeds the log; the response body is fixed by contract.
func (h *RelayHandler) fetchError(c echo.Context, host string, err error) error {
	h.logger.Error("relay fetch failed",
		"err", err,
		"kind", classifyFetchError(err),
		"target_host", host,
	)
	return h.errorJSON(c, http.StatusInternalServerError, "Proxy request failed")
}

// errorJSON writes a JSON error body with the CORS triad applied. Every
// relay response carries the triad, error branches included.
func (h *RelayHandler) errorJSON(c echo.Context, status int, msg string) error {
	applyCORS(c.Response().Header())
	return c.JSON(status, map[string]string{"error": msg})
}

func classifyFetchError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "connect"
	}
	return "other"
}
