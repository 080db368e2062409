package models

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"` // appointment, resource, crisis, service
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}
