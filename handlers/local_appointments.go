package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

// LocalAppointmentHandler serves the in-memory roster, which is seeded empty
// and deliberately kept apart from the durable Supabase rows.
type LocalAppointmentHandler struct {
	app *state.App
}

func NewLocalAppointmentHandler(app *state.App) *LocalAppointmentHandler {
	return &LocalAppointmentHandler{app: app}
}

func (h *LocalAppointmentHandler) GetLocalAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    h.app.Appointments(),
	})
}

func (h *LocalAppointmentHandler) ReplaceLocalAppointments(c *gin.Context) {
	var appointments []models.LocalAppointment
	if err := c.ShouldBindJSON(&appointments); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	// Records created client-side may arrive without an id
	for i := range appointments {
		if appointments[i].ID == "" {
			appointments[i].ID = uuid.New().String()
		}
	}

	h.app.SetAppointments(appointments)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    h.app.Appointments(),
	})
}
