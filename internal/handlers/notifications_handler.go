package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

// ======================================================
// HANDLER
// ======================================================

type NotificationsHandler struct {
	journal *notify.Journal
	hub     *notify.Hub
}

func NewNotificationsHandler(journal *notify.Journal, hub *notify.Hub) *NotificationsHandler {
	return &NotificationsHandler{journal: journal, hub: hub}
}

// List returns the most recent notifications, newest first.
func (h *NotificationsHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	httpresp.List(c, h.journal.Recent(c.Request.Context(), limit))
}

// Stream upgrades to a websocket that receives every new notification.
func (h *NotificationsHandler) Stream(c *gin.Context) {
	h.hub.ServeHTTP(c.Writer, c.Request)
}
