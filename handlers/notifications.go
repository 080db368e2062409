package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

type NotificationHandler struct {
	app *state.App
}

func NewNotificationHandler(app *state.App) *NotificationHandler {
	return &NotificationHandler{app: app}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    h.app.Notifications(),
	})
}

func (h *NotificationHandler) ReplaceNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := c.ShouldBindJSON(&notifications); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.app.SetNotifications(notifications)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    h.app.Notifications(),
	})
}

// MarkRead flips a notification's read flag. Unknown ids are a no-op and
// still return 200.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.app.MarkNotificationAsRead(c.Param("id"))
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    h.app.Notifications(),
	})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count := countUnread(h.app.Notifications())
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"unread": count},
	})
}
