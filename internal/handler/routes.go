package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires all route handlers onto the Echo instance.
func RegisterRoutes(e *echo.Echo, relay *RelayHandler, channels *ChannelHandler, health *HealthHandler) {
	e.GET("/healthz", health.Healthz)
	e.GET("/relay/status", health.Status)

	e.GET("/api/proxy", relay.Handle)
	e.OPTIONS("/api/proxy", Preflight)

	e.GET("/api/channels", channels.List)
	e.OPTIONS("/api/channels", Preflight)
}
