package models

const (
	AuditSuccess = "Success"
	AuditFailed  = "Failed"
)

type AuditLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Module    string `json:"module"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"` // Success, Failed
	User      string `json:"user"`
}
