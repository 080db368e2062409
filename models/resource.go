package models

import "fmt"

// Resource tracks one pool of beds, oxygen, blood or ventilators. Available
// is always total minus occupied; use NewResource so a stored record can
// never drift from that.
type Resource struct {
	ID         string `json:"id"`
	Type       string `json:"type"` // bed, oxygen, blood, ventilator
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Occupied   int    `json:"occupied"`
	Available  int    `json:"available"`
	Threshold  int    `json:"threshold,omitempty"`
	HospitalID string `json:"hospital_id,omitempty"`
}

func NewResource(id, resourceType, name string, total, occupied, threshold int, hospitalID string) (Resource, error) {
	if total < 0 || occupied < 0 || threshold < 0 {
		return Resource{}, fmt.Errorf("values cannot be negative")
	}
	if occupied > total {
		return Resource{}, fmt.Errorf("occupied cannot exceed total")
	}
	return Resource{
		ID:         id,
		Type:       resourceType,
		Name:       name,
		Total:      total,
		Occupied:   occupied,
		Available:  total - occupied,
		Threshold:  threshold,
		HospitalID: hospitalID,
	}, nil
}

// BelowThreshold reports whether availability has dropped under the alert
// threshold (a zero threshold never alerts).
func (r Resource) BelowThreshold() bool {
	return r.Threshold > 0 && r.Available < r.Threshold
}
