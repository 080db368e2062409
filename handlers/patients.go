package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

type PatientHandler struct {
	app *state.App
}

func NewPatientHandler(app *state.App) *PatientHandler {
	return &PatientHandler{app: app}
}

func (h *PatientHandler) GetPatients(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    h.app.Patients(),
	})
}

// ReplacePatients swaps the whole collection; per-item edits are computed by
// the client and written back wholesale.
func (h *PatientHandler) ReplacePatients(c *gin.Context) {
	var patients []models.Patient
	if err := c.ShouldBindJSON(&patients); err != nil {
		h.app.AddAuditEntry("Rejected Patient Save", "Patients", models.AuditFailed, "Admin")
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.app.SetPatients(patients)
	h.app.AddAuditLog("Updated Patients", "Patients")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Patients updated",
		Data:    h.app.Patients(),
	})
}
