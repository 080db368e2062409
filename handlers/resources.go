package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

type ResourceHandler struct {
	app *state.App
}

func NewResourceHandler(app *state.App) *ResourceHandler {
	return &ResourceHandler{app: app}
}

func (h *ResourceHandler) GetResources(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    h.app.Resources(),
	})
}

// ReplaceResources validates every row through the Resource factory, so
// available is always recomputed and occupied can never exceed total in the
// stored collection.
func (h *ResourceHandler) ReplaceResources(c *gin.Context) {
	var incoming []models.Resource
	if err := c.ShouldBindJSON(&incoming); err != nil {
		h.app.AddAuditEntry("Rejected Resource Save", "Resources", models.AuditFailed, "Admin")
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	validated := make([]models.Resource, 0, len(incoming))
	for _, r := range incoming {
		resource, err := models.NewResource(r.ID, r.Type, r.Name, r.Total, r.Occupied, r.Threshold, r.HospitalID)
		if err != nil {
			h.app.AddAuditEntry("Rejected Resource Save", "Resources", models.AuditFailed, "Admin")
			c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		validated = append(validated, resource)
	}

	h.app.SetResources(validated)
	h.app.AddAuditLog("Updated Bed Status", "Resources")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Resources updated",
		Data:    h.app.Resources(),
	})
}

// LoadMockResources seeds the store with fixture inventory: the single
// hospital set by default, or a randomized partner-network set.
func (h *ResourceHandler) LoadMockResources(c *gin.Context) {
	var resources []models.Resource
	if c.Query("network") == "true" {
		resources = state.MockNetworkResources()
	} else {
		resources = state.MockResources()
	}

	h.app.SetResources(resources)
	h.app.AddAuditLog("Loaded Mock Resources", "Resources")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Mock resources loaded",
		Data:    h.app.Resources(),
	})
}
