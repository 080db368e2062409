package models

type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Contact    string `json:"contact"`
	LastVisit  string `json:"lastVisit"`
	Status     string `json:"status"` // Active, Discharged, Critical
	Gender     string `json:"gender"`
	BloodGroup string `json:"bloodGroup"`
}
