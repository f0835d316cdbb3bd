package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"media-relay-go/internal/client"
	"media-relay-go/internal/config"
	"media-relay-go/internal/service"
)

func TestRegisterRoutes_Wiring(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "video/mp2t")
		_, _ = w.Write([]byte("segment"))
	}))
	defer upstream.Close()

	cfg := &config.Config{
		Relay: config.RelayConfig{TimeoutSeconds: 10, ChunkBytes: 32 * 1024},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := client.NewUpstreamClient(cfg, logger, nil)
	svc := service.NewRelayService(uc, logger)

	relay := NewRelayHandler(svc, cfg, logger, nil)
	channels := NewChannelHandler(logger)
	health := NewHealthHandler(cfg, "test")

	e := echo.New()
	RegisterRoutes(e, relay, channels, health)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"GET /healthz", http.MethodGet, "/healthz", http.StatusOK},
		{"GET /relay/status", http.MethodGet, "/relay/status", http.StatusOK},
		{"GET /api/proxy relays", http.MethodGet, "/api/proxy?url=" + url.QueryEscape(upstream.URL), http.StatusOK},
		{"GET /api/proxy without url", http.MethodGet, "/api/proxy", http.StatusBadRequest},
		{"OPTIONS /api/proxy preflight", http.MethodOptions, "/api/proxy", http.StatusNoContent},
		{"GET /api/channels", http.MethodGet, "/api/channels", http.StatusOK},
		{"OPTIONS /api/channels preflight", http.MethodOptions, "/api/channels", http.StatusNoContent},
		{"POST /api/proxy not allowed", http.MethodPost, "/api/proxy", http.StatusMethodNotAllowed},
		{"GET /unknown returns 404", http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
