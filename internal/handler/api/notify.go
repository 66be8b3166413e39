package api

import (
	"net/http"

	reqdto "glisten-lounge/internal/handler/dto/request"
	"glisten-lounge/internal/handler/httperr"
	"glisten-lounge/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NotifyHandler forwards pre-rendered alert messages to the business chat
// channel. The booking pipeline posts here so the chat credentials stay in
// one place.
type NotifyHandler struct {
	forwarder usecase.Notifier
}

func NewNotifyHandler(forwarder usecase.Notifier) *NotifyHandler {
	return &NotifyHandler{
		forwarder: forwarder,
	}
}

// @Summary Forward alert
// @Description Forward a Markdown alert message to the business chat
// @Tags notify
// @Accept json
// @Produce json
// @Param request body reqdto.NotifyRequest true "Alert message"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /notify [post]
func (h *NotifyHandler) Forward(c *gin.Context) {
	var req reqdto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.forwarder.Notify(c.Request.Context(), req.Message); err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to deliver notification", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
