// Package state holds the dashboard's shared in-memory collections. There is
// exactly one App per process, built in main and handed to every handler, so
// tests can construct isolated instances. Nothing here is persisted; the
// durable appointments live in Supabase and are a separate entity.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/Amit162-cloud/healthcarewebapp/models"
)

// App is a flat bag of independently-addressable collections. Collections are
// replaced wholesale, never mutated in place; getters hand out copies so a
// caller can never alias the stored slice. Cross-collection consistency is
// the caller's problem, not the store's.
type App struct {
	mu sync.RWMutex

	appointments    []models.LocalAppointment
	patients        []models.Patient
	doctors         []models.Doctor
	resources       []models.Resource
	serviceRequests []models.ServiceRequest
	emergencyCases  []models.EmergencyCase
	notifications   []models.Notification
	auditLogs       []models.AuditLog
	crisisMode      bool

	now func() time.Time
}

// NewApp builds a store seeded with the standard fixtures. Appointments and
// resources start empty; resources are loaded on demand via the mock loaders.
func NewApp() *App {
	return &App{
		patients:        initialPatients(),
		doctors:         initialDoctors(),
		serviceRequests: initialServiceRequests(),
		emergencyCases:  initialEmergencyCases(),
		notifications:   initialNotifications(),
		auditLogs:       initialAuditLogs(),
		now:             time.Now,
	}
}

// NewEmptyApp builds a store with no seed data, for tests.
func NewEmptyApp() *App {
	return &App{now: time.Now}
}

func (a *App) Appointments() []models.LocalAppointment {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copySlice(a.appointments)
}

func (a *App) SetAppointments(appointments []models.LocalAppointment) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.appointments = copySlice(appointments)
}

func (a *App) Patients() []models.Patient {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copySlice(a.patients)
}

func (a *App) SetPatients(patients []models.Patient) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.patients = copySlice(patients)
}

func (a *App) Doctors() []models.Doctor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copySlice(a.doctors)
}

func (a *App) SetDoctors(doctors []models.Doctor) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.doctors = copySlice(doctors)
}

func (a *App) Resources() []models.Resource {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copySlice(a.resources)
}

func (a *App) SetResources(resources []models.Resource) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resources = copySlice(resources)
}

func (a *App) ServiceRequests() []models.ServiceRequest {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copySlice(a.serviceRequests)
}

func (a *App) SetServiceRequests(requests []models.ServiceRequest) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.serviceRequests = copySlice(requests)
}

func (a *App) EmergencyCases() []models.EmergencyCase {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copySlice(a.emergencyCases)
}

func (a *App) SetEmergencyCases(cases []models.EmergencyCase) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.emergencyCases = copySlice(cases)
}

func (a *App) Notifications() []models.Notification {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copySlice(a.notifications)
}

func (a *App) SetNotifications(notifications []models.Notification) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notifications = copySlice(notifications)
}

// MarkNotificationAsRead flips the matching entry's read flag. Unknown ids
// are a no-op; the flag never reverts and entries are never removed here.
func (a *App) MarkNotificationAsRead(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	next := copySlice(a.notifications)
	for i := range next {
		if next[i].ID == id {
			next[i].Read = true
		}
	}
	a.notifications = next
}

func (a *App) AuditLogs() []models.AuditLog {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copySlice(a.auditLogs)
}

// AddAuditLog prepends a Success entry for the Admin user, newest first.
func (a *App) AddAuditLog(action, module string) {
	a.AddAuditEntry(action, module, models.AuditSuccess, "Admin")
}

// AddAuditEntry is the explicit-status variant used by failure paths, so a
// rejected save leaves a Failed trace instead of nothing.
func (a *App) AddAuditEntry(action, module, status, user string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	now := a.now()
	entry := models.AuditLog{
		ID:        fmt.Sprintf("%d", now.UnixMilli()),
		Action:    action,
		Module:    module,
		Timestamp: now.Format("2006-01-02 15:04:05"),
		Status:    status,
		User:      user,
	}
	next := make([]models.AuditLog, 0, len(a.auditLogs)+1)
	next = append(next, entry)
	next = append(next, a.auditLogs...)
	a.auditLogs = next
}

func (a *App) CrisisMode() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.crisisMode
}

func (a *App) SetCrisisMode(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.crisisMode = enabled
}

func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}
