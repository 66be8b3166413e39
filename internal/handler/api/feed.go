package api

import (
	"io"
	"net/http"
	"time"

	"glisten-lounge/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// FeedSource hands out change-signal subscriptions for live streams.
type FeedSource interface {
	Subscribe() (<-chan struct{}, func(), error)
}

// FeedHandler streams booking-change events to the dashboard over SSE so the
// request list updates without polling.
type FeedHandler struct {
	feed              FeedSource
	heartbeatInterval time.Duration
}

func NewFeedHandler(feed FeedSource) *FeedHandler {
	return &FeedHandler{
		feed:              feed,
		heartbeatInterval: 25 * time.Second,
	}
}

// @Summary Booking change stream
// @Description Server-sent events stream; emits a bookings event whenever a booking is created or changes status
// @Tags feed
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /feed/bookings [get]
func (h *FeedHandler) Bookings(c *gin.Context) {
	ticks, cancel, err := h.feed.Subscribe()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(h.heartbeatInterval)
	defer heartbeat.Stop()

	c.SSEvent("connected", "ok")
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(_ io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case <-ticks:
			c.SSEvent("bookings", "changed")
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}
