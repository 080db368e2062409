package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

type AuditHandler struct {
	app *state.App
}

func NewAuditHandler(app *state.App) *AuditHandler {
	return &AuditHandler{app: app}
}

// GetAuditLogs returns the append-only log, newest first.
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	logs := h.app.AuditLogs()

	if module := c.Query("module"); module != "" {
		filtered := make([]models.AuditLog, 0, len(logs))
		for _, l := range logs {
			if l.Module == module {
				filtered = append(filtered, l)
			}
		}
		logs = filtered
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    logs,
	})
}
