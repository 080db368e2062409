package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

// RequestHandler covers the inter-hospital service requests and the
// emergency case board, both in-memory collections.
type RequestHandler struct {
	app *state.App
}

func NewRequestHandler(app *state.App) *RequestHandler {
	return &RequestHandler{app: app}
}

func (h *RequestHandler) GetServiceRequests(c *gin.Context) {
	requests := h.app.ServiceRequests()

	if status := c.Query("status"); status != "" {
		filtered := make([]models.ServiceRequest, 0, len(requests))
		for _, r := range requests {
			if r.Status == status {
				filtered = append(filtered, r)
			}
		}
		requests = filtered
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    requests,
	})
}

func (h *RequestHandler) ReplaceServiceRequests(c *gin.Context) {
	var requests []models.ServiceRequest
	if err := c.ShouldBindJSON(&requests); err != nil {
		h.app.AddAuditEntry("Rejected Service Request Save", "Service Requests", models.AuditFailed, "Admin")
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.app.SetServiceRequests(requests)
	h.app.AddAuditLog("Service Request Updated", "Service Requests")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Service requests updated",
		Data:    h.app.ServiceRequests(),
	})
}

func (h *RequestHandler) GetEmergencyCases(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    h.app.EmergencyCases(),
	})
}

func (h *RequestHandler) ReplaceEmergencyCases(c *gin.Context) {
	var cases []models.EmergencyCase
	if err := c.ShouldBindJSON(&cases); err != nil {
		h.app.AddAuditEntry("Rejected Emergency Case Save", "Emergency", models.AuditFailed, "Admin")
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.app.SetEmergencyCases(cases)
	h.app.AddAuditLog("Updated Emergency Cases", "Emergency")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Emergency cases updated",
		Data:    h.app.EmergencyCases(),
	})
}
