package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"media-relay-go/internal/catalog"
)

// ChannelHandler serves the predefined channel catalog.
type ChannelHandler struct {
	logger *slog.Logger
}

// NewChannelHandler creates a ChannelHandler.
func NewChannelHandler(logger *slog.Logger) *ChannelHandler {
	return &ChannelHandler{logger: logger.With("component", "channel_handler")}
}

// channelEntry is a catalog channel plus the relay URL clients should
// actually play, so they never hit the upstream stream directly.
type channelEntry struct {
	catalog.Channel
	ProxyURL string `json:"proxy_url"`
}

// channelList is the response shape of GET /api/channels.
type channelList struct {
	Channels []channelEntry `json:"channels"`
	Total    int            `json:"total"`
}

// List returns the catalog, optionally filtered by the `search` query
// parameter (case-insensitive substring over name and group).
func (h *ChannelHandler) List(c echo.Context) error {
	query := c.QueryParam("search")
	matched := catalog.Filter(query)

	entries := make([]channelEntry, 0, len(matched))
	for _, ch := range matched {
		entries = append(entries, channelEntry{
			Channel:  ch,
			ProxyURL: "/api/proxy?url=" + url.QueryEscape(ch.StreamURL),
		})
	}

	h.logger.Debug("channel listing", "search", query, "matched", len(entries))

	applyCORS(c.Response().Header())
	return c.JSON(http.StatusOK, channelList{Channels: entries, Total: len(entries)})
}
