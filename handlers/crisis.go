package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

type CrisisHandler struct {
	app *state.App
}

func NewCrisisHandler(app *state.App) *CrisisHandler {
	return &CrisisHandler{app: app}
}

func (h *CrisisHandler) GetCrisisMode(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"enabled": h.app.CrisisMode()},
	})
}

type setCrisisModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *CrisisHandler) SetCrisisMode(c *gin.Context) {
	var req setCrisisModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.app.SetCrisisMode(*req.Enabled)
	if *req.Enabled {
		h.app.AddAuditLog("Activated Crisis Mode", "Crisis Panel")
	} else {
		h.app.AddAuditLog("Deactivated Crisis Mode", "Crisis Panel")
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"enabled": h.app.CrisisMode()},
	})
}
