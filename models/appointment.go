package models

import "time"

// Appointment statuses as stored in the appointments table.
const (
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no-show"
)

// Appointment is a durable row in the Supabase appointments table. WhatsApp
// bookings arrive with patient_name already set; manual entries without one
// show up as "Unknown" on the dashboard.
type Appointment struct {
	ID              int64     `json:"id" db:"id"`
	PhoneNumber     string    `json:"phone_number" db:"phone_number"`
	PatientName     *string   `json:"patient_name,omitempty" db:"patient_name"`
	AppointmentDate string    `json:"appointment_date" db:"appointment_date"`
	AppointmentTime string    `json:"appointment_time" db:"appointment_time"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Source reports where a booking came from, derived the same way the
// dashboard derives it: WhatsApp bookings carry a patient name on ingest.
func (a Appointment) Source() string {
	if a.PatientName != nil && *a.PatientName != "" {
		return "whatsapp"
	}
	return "manual"
}

type CreateAppointmentRequest struct {
	PatientName     string `json:"patient_name" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Status          string `json:"status,omitempty"`
}

type UpdateAppointmentRequest struct {
	PatientName     *string `json:"patient_name,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	AppointmentDate *string `json:"appointment_date,omitempty"`
	AppointmentTime *string `json:"appointment_time,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// LocalAppointment lives in the in-memory store only. It is a separate entity
// from the durable Supabase rows and the two are never reconciled.
type LocalAppointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Doctor      string `json:"doctor"`
	Department  string `json:"department"`
	Status      string `json:"status"`
}
