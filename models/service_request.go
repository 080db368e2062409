package models

type ServiceRequest struct {
	ID           string `json:"id"`
	HospitalName string `json:"hospitalName"`
	ResourceType string `json:"resourceType"`
	Quantity     int    `json:"quantity"`
	Urgency      string `json:"urgency"` // Low, Medium, High, Critical
	Message      string `json:"message"`
	Status       string `json:"status"` // Pending, Approved, Rejected, Completed
	Date         string `json:"date"`
}
