package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amit162-cloud/healthcarewebapp/models"
)

func TestMarkNotificationAsRead(t *testing.T) {
	app := NewEmptyApp()
	app.SetNotifications([]models.Notification{
		{ID: "1", Title: "ICU Near Capacity", Type: "resource", Read: false},
		{ID: "2", Title: "New Appointment", Type: "appointment", Read: false},
	})

	app.MarkNotificationAsRead("1")

	got := app.Notifications()
	require.Len(t, got, 2)
	assert.True(t, got[0].Read)
	assert.False(t, got[1].Read)
}

func TestMarkNotificationAsRead_Idempotent(t *testing.T) {
	app := NewEmptyApp()
	app.SetNotifications([]models.Notification{
		{ID: "1", Title: "Blood Bank Alert", Type: "crisis", Read: false},
	})

	app.MarkNotificationAsRead("1")
	once := app.Notifications()
	app.MarkNotificationAsRead("1")
	twice := app.Notifications()

	assert.Equal(t, once, twice)
}

func TestMarkNotificationAsRead_MissingIDOnEmptyStore(t *testing.T) {
	app := NewEmptyApp()

	app.MarkNotificationAsRead("missing-id")

	assert.Empty(t, app.Notifications())
}

func TestAddAuditLog_PrependsNewestFirst(t *testing.T) {
	app := NewEmptyApp()
	before := len(app.AuditLogs())

	app.AddAuditLog("Created Appointment", "Appointments")
	app.AddAuditLog("Updated Bed Status", "Resources")
	app.AddAuditLog("Activated Crisis Mode", "Crisis Panel")

	logs := app.AuditLogs()
	require.Len(t, logs, before+3)
	assert.Equal(t, "Activated Crisis Mode", logs[0].Action)
	assert.Equal(t, "Created Appointment", logs[2].Action)
	for _, l := range logs {
		assert.Equal(t, models.AuditSuccess, l.Status)
		assert.Equal(t, "Admin", l.User)
	}
}

func TestAddAuditEntry_FailedStatus(t *testing.T) {
	app := NewEmptyApp()

	app.AddAuditEntry("Rejected Resource Save", "Resources", models.AuditFailed, "Admin")

	logs := app.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditFailed, logs[0].Status)
}

func TestGettersReturnCopies(t *testing.T) {
	app := NewApp()

	patients := app.Patients()
	require.NotEmpty(t, patients)
	patients[0].Name = "Mutated"

	assert.NotEqual(t, "Mutated", app.Patients()[0].Name)
}

func TestSetResources_ReplacesWholesale(t *testing.T) {
	app := NewEmptyApp()
	app.SetResources(MockResources())
	require.Len(t, app.Resources(), 11)

	app.SetResources(nil)
	assert.Empty(t, app.Resources())
}

func TestNewApp_Seeds(t *testing.T) {
	app := NewApp()

	assert.Empty(t, app.Appointments())
	assert.Empty(t, app.Resources())
	assert.Len(t, app.Patients(), 4)
	assert.Len(t, app.Doctors(), 4)
	assert.Len(t, app.ServiceRequests(), 3)
	assert.Len(t, app.EmergencyCases(), 3)
	assert.Len(t, app.Notifications(), 4)
	assert.Len(t, app.AuditLogs(), 4)
	assert.False(t, app.CrisisMode())
}

func TestCrisisMode(t *testing.T) {
	app := NewEmptyApp()

	app.SetCrisisMode(true)
	assert.True(t, app.CrisisMode())
	app.SetCrisisMode(false)
	assert.False(t, app.CrisisMode())
}

func TestNewResource_DerivesAvailable(t *testing.T) {
	r, err := models.NewResource("1", "bed", "ICU", 30, 27, 5, "mock-1")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Available)
	assert.True(t, r.BelowThreshold())
}

func TestNewResource_RejectsInvalid(t *testing.T) {
	_, err := models.NewResource("1", "bed", "ICU", 10, 11, 0, "")
	assert.Error(t, err)

	_, err = models.NewResource("1", "bed", "ICU", -1, 0, 0, "")
	assert.Error(t, err)
}

func TestMockNetworkResources_AvailableConsistent(t *testing.T) {
	for _, r := range MockNetworkResources() {
		assert.Equal(t, r.Total-r.Occupied, r.Available, "resource %s/%s", r.HospitalID, r.Name)
		assert.GreaterOrEqual(t, r.Occupied, 0)
		assert.LessOrEqual(t, r.Occupied, r.Total)
	}
}
