package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/services"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// AppointmentHandler manages the durably persisted appointment rows. These
// are a separate entity from the in-memory roster the dashboard seeds; the
// two are never reconciled.
type AppointmentHandler struct {
	supabase *supa.Client
	app      *state.App
	notifier services.Notifier
}

func NewAppointmentHandler(supabase *supa.Client, app *state.App, notifier services.Notifier) *AppointmentHandler {
	return &AppointmentHandler{
		supabase: supabase,
		app:      app,
		notifier: notifier,
	}
}

func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	query := h.supabase.From("appointments").
		Select("*", "", false).
		Order("appointment_date", &postgrest.OrderOpts{Ascending: false}).
		Order("appointment_time", &postgrest.OrderOpts{Ascending: false})

	if status := c.Query("status"); status != "" {
		query = query.Eq("status", status)
	}

	var appointments []models.Appointment
	data, _, err := query.Execute()
	if err == nil {
		err = json.Unmarshal(data, &appointments)
	}

	if err != nil {
		fmt.Printf("[GetAppointments] Query error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch appointments",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    appointments,
	})
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.app.AddAuditEntry("Rejected Appointment Save", "Appointments", models.AuditFailed, "Admin")
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Please fill all required fields",
		})
		return
	}

	if !validPhone(req.PhoneNumber) {
		h.app.AddAuditEntry("Rejected Appointment Save", "Appointments", models.AuditFailed, "Admin")
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Please enter a valid phone number",
		})
		return
	}

	status := req.Status
	if status == "" {
		status = models.AppointmentConfirmed
	}

	appointmentData := map[string]interface{}{
		"patient_name":     req.PatientName,
		"phone_number":     req.PhoneNumber,
		"appointment_date": req.AppointmentDate,
		"appointment_time": req.AppointmentTime,
		"status":           status,
	}

	var created []models.Appointment
	data, _, err := h.supabase.From("appointments").
		Insert(appointmentData, false, "", "", "").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &created)
	}

	if err != nil {
		fmt.Printf("[CreateAppointment] Insert error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save appointment",
		})
		return
	}

	h.app.AddAuditLog("Created Appointment", "Appointments")
	h.notify(req.PhoneNumber, req.PatientName, req.AppointmentDate, req.AppointmentTime, "created")

	var appointment interface{}
	if len(created) > 0 {
		appointment = created[0]
	}
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Appointment created",
		Data:    appointment,
	})
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	updateData := make(map[string]interface{})
	if req.PatientName != nil {
		updateData["patient_name"] = *req.PatientName
	}
	if req.PhoneNumber != nil {
		if !validPhone(*req.PhoneNumber) {
			h.app.AddAuditEntry("Rejected Appointment Save", "Appointments", models.AuditFailed, "Admin")
			c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   "Please enter a valid phone number",
			})
			return
		}
		updateData["phone_number"] = *req.PhoneNumber
	}
	if req.AppointmentDate != nil {
		updateData["appointment_date"] = *req.AppointmentDate
	}
	if req.AppointmentTime != nil {
		updateData["appointment_time"] = *req.AppointmentTime
	}
	if req.Status != nil {
		updateData["status"] = *req.Status
	}

	if len(updateData) == 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Nothing to update",
		})
		return
	}

	var updated []models.Appointment
	data, _, err := h.supabase.From("appointments").
		Update(updateData, "", "").
		Eq("id", appointmentID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &updated)
	}

	if err != nil || len(updated) == 0 {
		fmt.Printf("[UpdateAppointment] Update error for %s: %v\n", appointmentID, err)
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Appointment not found or update failed",
		})
		return
	}

	h.app.AddAuditLog("Updated Appointment", "Appointments")

	apt := updated[0]
	name := "Unknown"
	if apt.PatientName != nil {
		name = *apt.PatientName
	}
	h.notify(apt.PhoneNumber, name, apt.AppointmentDate, apt.AppointmentTime, "updated")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Appointment updated",
		Data:    apt,
	})
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	_, _, err := h.supabase.From("appointments").
		Delete("", "").
		Eq("id", appointmentID).
		Execute()
	if err != nil {
		fmt.Printf("[DeleteAppointment] Delete error for %s: %v\n", appointmentID, err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to delete appointment",
		})
		return
	}

	h.app.AddAuditLog("Deleted Appointment", "Appointments")
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Appointment deleted",
	})
}

// notify is best-effort; a gateway failure never blocks the save.
func (h *AppointmentHandler) notify(phone, patientName, date, timeSlot, action string) {
	if err := h.notifier.SendAppointmentNotice(phone, patientName, date, timeSlot, action); err != nil {
		fmt.Printf("[Appointments] WhatsApp notice failed for %s: %v\n", phone, err)
	}
}

func validPhone(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}
