package models

type Doctor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Availability string `json:"availability"`
	Status       string `json:"status"` // Available, On Leave, In Surgery
	SlotDuration int    `json:"slotDuration"`
}
