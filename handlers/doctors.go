package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

type DoctorHandler struct {
	app *state.App
}

func NewDoctorHandler(app *state.App) *DoctorHandler {
	return &DoctorHandler{app: app}
}

func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors := h.app.Doctors()

	if department := c.Query("department"); department != "" {
		filtered := make([]models.Doctor, 0, len(doctors))
		for _, d := range doctors {
			if d.Department == department {
				filtered = append(filtered, d)
			}
		}
		doctors = filtered
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    doctors,
	})
}

func (h *DoctorHandler) ReplaceDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := c.ShouldBindJSON(&doctors); err != nil {
		h.app.AddAuditEntry("Rejected Doctor Save", "Doctors", models.AuditFailed, "Admin")
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.app.SetDoctors(doctors)
	h.app.AddAuditLog("Updated Doctors", "Doctors")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Doctors updated",
		Data:    h.app.Doctors(),
	})
}
