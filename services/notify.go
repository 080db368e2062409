package services

// Notifier is an interface for patient-facing messaging providers.
type Notifier interface {
	SendAppointmentNotice(phone, patientName, date, timeSlot, action string) error
}

// NoopNotifier is used when no messaging provider is configured; sends are
// silently skipped.
type NoopNotifier struct{}

func (NoopNotifier) SendAppointmentNotice(phone, patientName, date, timeSlot, action string) error {
	return nil
}
