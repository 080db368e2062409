package models

type EmergencyCase struct {
	ID               string `json:"id"`
	PatientName      string `json:"patientName"`
	Severity         string `json:"severity"` // Low, Medium, High, Critical
	ArrivalTime      string `json:"arrivalTime"`
	AssignedResource string `json:"assignedResource"`
	Status           string `json:"status"` // Waiting, In Treatment, Resolved
}
