package state

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Amit162-cloud/healthcarewebapp/models"
)

func initialPatients() []models.Patient {
	return []models.Patient{
		{ID: "1", Name: "Rahul Sharma", Age: 45, Contact: "+91 98765 11111", LastVisit: "2026-02-18", Status: "Active", Gender: "Male", BloodGroup: "O+"},
		{ID: "2", Name: "Anita Desai", Age: 32, Contact: "+91 98765 22222", LastVisit: "2026-02-20", Status: "Active", Gender: "Female", BloodGroup: "A+"},
		{ID: "3", Name: "Vikram Joshi", Age: 58, Contact: "+91 98765 33333", LastVisit: "2026-02-15", Status: "Critical", Gender: "Male", BloodGroup: "B+"},
		{ID: "4", Name: "Sneha Reddy", Age: 27, Contact: "+91 98765 44444", LastVisit: "2026-02-10", Status: "Discharged", Gender: "Female", BloodGroup: "AB-"},
	}
}

func initialDoctors() []models.Doctor {
	return []models.Doctor{
		{ID: "1", Name: "Dr. Priya Patel", Department: "Cardiology", Availability: "Mon-Fri 9AM-5PM", Status: "Available", SlotDuration: 30},
		{ID: "2", Name: "Dr. Amit Singh", Department: "Neurology", Availability: "Mon-Sat 10AM-4PM", Status: "Available", SlotDuration: 45},
		{ID: "3", Name: "Dr. Neha Gupta", Department: "Orthopedics", Availability: "Tue-Sat 8AM-2PM", Status: "In Surgery", SlotDuration: 30},
		{ID: "4", Name: "Dr. Rajesh Kumar", Department: "Dermatology", Availability: "Mon-Fri 11AM-6PM", Status: "On Leave", SlotDuration: 20},
	}
}

func initialServiceRequests() []models.ServiceRequest {
	return []models.ServiceRequest{
		{ID: "SR001", HospitalName: "City General Hospital", ResourceType: "Oxygen Cylinders", Quantity: 10, Urgency: "High", Message: "ICU running low", Status: "Approved", Date: "2026-02-20"},
		{ID: "SR002", HospitalName: "Metro Care Hospital", ResourceType: "Blood Units (O+)", Quantity: 5, Urgency: "Critical", Message: "Emergency surgery scheduled", Status: "Pending", Date: "2026-02-20"},
		{ID: "SR003", HospitalName: "City General Hospital", ResourceType: "Ventilators", Quantity: 2, Urgency: "Medium", Message: "Preventive maintenance replacement", Status: "Completed", Date: "2026-02-19"},
	}
}

func initialEmergencyCases() []models.EmergencyCase {
	return []models.EmergencyCase{
		{ID: "1", PatientName: "Emergency Patient 1", Severity: "Critical", ArrivalTime: "08:15 AM", AssignedResource: "ICU Bed 3", Status: "In Treatment"},
		{ID: "2", PatientName: "Emergency Patient 2", Severity: "High", ArrivalTime: "09:30 AM", AssignedResource: "ER Bay 5", Status: "Waiting"},
		{ID: "3", PatientName: "Emergency Patient 3", Severity: "Medium", ArrivalTime: "10:00 AM", AssignedResource: "General Ward", Status: "In Treatment"},
	}
}

func initialNotifications() []models.Notification {
	now := time.Now()
	ts := func(minutesAgo int) string {
		return now.Add(-time.Duration(minutesAgo) * time.Minute).Format(time.RFC3339)
	}
	return []models.Notification{
		{ID: "1", Title: "ICU Near Capacity", Message: "ICU occupancy has reached 90%. Consider resource allocation.", Type: "resource", Timestamp: ts(5), Read: false},
		{ID: "2", Title: "New Appointment", Message: "Rahul Sharma has booked an appointment with Dr. Priya Patel.", Type: "appointment", Timestamp: ts(15), Read: false},
		{ID: "3", Title: "Blood Bank Alert", Message: "AB- blood units are critically low (2 units remaining).", Type: "crisis", Timestamp: ts(60), Read: true},
		{ID: "4", Title: "Service Request Approved", Message: "Request for 10 oxygen cylinders has been approved.", Type: "service", Timestamp: ts(120), Read: true},
	}
}

func initialAuditLogs() []models.AuditLog {
	return []models.AuditLog{
		{ID: "1", Action: "Created Appointment", Module: "Appointments", Timestamp: "2026-02-20 09:00:00", Status: "Success", User: "Admin"},
		{ID: "2", Action: "Updated Bed Status", Module: "Resources", Timestamp: "2026-02-20 08:45:00", Status: "Success", User: "Admin"},
		{ID: "3", Action: "Activated Crisis Mode", Module: "Crisis Panel", Timestamp: "2026-02-19 22:30:00", Status: "Success", User: "Admin"},
		{ID: "4", Action: "Service Request Created", Module: "Service Requests", Timestamp: "2026-02-19 20:15:00", Status: "Success", User: "Admin"},
	}
}

// MockResources is the single-hospital resource set the dashboard loads when
// no real inventory feed is wired up.
func MockResources() []models.Resource {
	return []models.Resource{
		{ID: "1", Name: "General Ward", Type: "bed", Total: 120, Occupied: 95, Available: 25, Threshold: 20, HospitalID: "mock-1"},
		{ID: "2", Name: "ICU", Type: "bed", Total: 30, Occupied: 27, Available: 3, Threshold: 5, HospitalID: "mock-1"},
		{ID: "3", Name: "Private Room", Type: "bed", Total: 40, Occupied: 32, Available: 8, Threshold: 8, HospitalID: "mock-1"},
		{ID: "4", Name: "Oxygen Cylinders", Type: "oxygen", Total: 200, Occupied: 145, Available: 55, Threshold: 30, HospitalID: "mock-1"},
		{ID: "5", Name: "Oxygen Concentrators", Type: "oxygen", Total: 50, Occupied: 38, Available: 12, Threshold: 10, HospitalID: "mock-1"},
		{ID: "6", Name: "A+ Blood", Type: "blood", Total: 50, Occupied: 35, Available: 15, Threshold: 10, HospitalID: "mock-1"},
		{ID: "7", Name: "B+ Blood", Type: "blood", Total: 40, Occupied: 28, Available: 12, Threshold: 8, HospitalID: "mock-1"},
		{ID: "8", Name: "O+ Blood", Type: "blood", Total: 60, Occupied: 48, Available: 12, Threshold: 15, HospitalID: "mock-1"},
		{ID: "9", Name: "AB- Blood", Type: "blood", Total: 20, Occupied: 18, Available: 2, Threshold: 5, HospitalID: "mock-1"},
		{ID: "10", Name: "Ventilators", Type: "ventilator", Total: 50, Occupied: 38, Available: 12, Threshold: 10, HospitalID: "mock-1"},
		{ID: "11", Name: "BiPAP Machines", Type: "ventilator", Total: 25, Occupied: 20, Available: 5, Threshold: 5, HospitalID: "mock-1"},
	}
}

type mockHospital struct {
	id   string
	name string
}

var mockNetworkHospitals = []mockHospital{
	{id: "net-1", name: "City General Hospital"},
	{id: "net-2", name: "Metro Care Hospital"},
	{id: "net-3", name: "Sunrise Medical Center"},
	{id: "net-4", name: "Lakeside Hospital"},
}

// MockNetworkResources generates a randomized inventory across the partner
// hospital network. Available is always derived from total and occupied via
// the Resource factory, never trusted from the generator.
func MockNetworkResources() []models.Resource {
	out := make([]models.Resource, 0, len(mockNetworkHospitals)*6)
	id := 1
	next := func(name, resourceType string, total, occupied, threshold int, hospitalID string) {
		r, err := models.NewResource(fmt.Sprintf("%d", id), resourceType, name, total, occupied, threshold, hospitalID)
		if err != nil {
			return
		}
		id++
		out = append(out, r)
	}
	for _, h := range mockNetworkHospitals {
		next("General Ward", "bed", 100+rand.Intn(100), 70+rand.Intn(30), 20, h.id)
		next("ICU", "bed", 20+rand.Intn(40), 15+rand.Intn(5), 5, h.id)
		next("Oxygen Cylinders", "oxygen", 150+rand.Intn(150), 100+rand.Intn(50), 30, h.id)
		next("O+ Blood", "blood", 40+rand.Intn(50), 25+rand.Intn(15), 10, h.id)
		next("A+ Blood", "blood", 30+rand.Intn(40), 20+rand.Intn(10), 8, h.id)
		next("Ventilators", "ventilator", 30+rand.Intn(40), 20+rand.Intn(10), 8, h.id)
	}
	return out
}
