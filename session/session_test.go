package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amit162-cloud/healthcarewebapp/models"
)

type fakeProvider struct {
	currentUser    *ProviderUser
	currentErr     error
	signInUser     *ProviderUser
	signInErr      error
	signUpOutcome  *SignupOutcome
	signUpErr      error
	signOutErr     error
	updateErr      error
	updatedMeta    map[string]interface{}
	subscriber     func(*ProviderUser)
	unsubscribed   bool
	subscribeCalls int
}

func (f *fakeProvider) CurrentUser() (*ProviderUser, error) { return f.currentUser, f.currentErr }

func (f *fakeProvider) SignIn(email, password string) (*ProviderUser, error) {
	return f.signInUser, f.signInErr
}

func (f *fakeProvider) SignUp(data SignupData) (*SignupOutcome, error) {
	return f.signUpOutcome, f.signUpErr
}

func (f *fakeProvider) SignOut() error { return f.signOutErr }

func (f *fakeProvider) UpdateUser(metadata map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedMeta = metadata
	return nil
}

func (f *fakeProvider) Subscribe(fn func(*ProviderUser)) func() {
	f.subscriber = fn
	f.subscribeCalls++
	return func() { f.unsubscribed = true }
}

func (f *fakeProvider) AccessToken() string { return "fake-token" }

func TestInit_NoPriorSession(t *testing.T) {
	p := &fakeProvider{}
	s := NewStore(p)
	assert.Equal(t, StateInitializing, s.State())

	s.Init()

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 1, p.subscribeCalls)
}

func TestInit_ExistingSession(t *testing.T) {
	p := &fakeProvider{currentUser: &ProviderUser{
		ID:       "u-1",
		Email:    "priya@citygeneral.org",
		Metadata: map[string]interface{}{"name": "Priya Patel", "role": "Admin", "hospital": "City General Hospital"},
	}}
	s := NewStore(p)
	s.Init()

	require.Equal(t, StateAuthenticated, s.State())
	identity, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, "Priya Patel", identity.Name)
	assert.Equal(t, "Admin", identity.Role)
	assert.Equal(t, "City General Hospital", identity.Hospital)
}

func TestInit_SessionCheckErrorIsUnauthenticated(t *testing.T) {
	p := &fakeProvider{currentErr: errors.New("network unreachable")}
	s := NewStore(p)
	s.Init()

	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestLogin_WrongPassword(t *testing.T) {
	p := &fakeProvider{signInErr: errors.New("invalid login credentials")}
	s := NewStore(p)
	s.Init()

	ok := s.Login("a@b.com", "wrongpass")

	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())
}

func TestLogin_Success(t *testing.T) {
	p := &fakeProvider{signInUser: &ProviderUser{ID: "u-2", Email: "a@b.com"}}
	s := NewStore(p)
	s.Init()

	require.True(t, s.Login("a@b.com", "pass"))
	identity, ok := s.Identity()
	require.True(t, ok)
	// Metadata defaults apply when the provider sends none.
	assert.Equal(t, "a", identity.Name)
	assert.Equal(t, "User", identity.Role)
	assert.Equal(t, "Not Assigned", identity.Hospital)
}

func TestSignup_NeedsEmailConfirmation(t *testing.T) {
	p := &fakeProvider{signUpOutcome: &SignupOutcome{
		User:              &ProviderUser{ID: "u-3", Email: "new@b.com"},
		NeedsConfirmation: true,
	}}
	s := NewStore(p)
	s.Init()

	result := s.Signup(SignupData{Email: "new@b.com", Password: "secret1", Name: "New User"})

	assert.True(t, result.Success)
	assert.True(t, result.NeedsEmailConfirmation)
	assert.False(t, s.IsAuthenticated())
}

func TestSignup_ImmediateSession(t *testing.T) {
	p := &fakeProvider{signUpOutcome: &SignupOutcome{
		User:          &ProviderUser{ID: "u-4", Email: "auto@b.com"},
		SessionIssued: true,
	}}
	s := NewStore(p)
	s.Init()

	result := s.Signup(SignupData{Email: "auto@b.com", Password: "secret1", Name: "Auto"})

	assert.True(t, result.Success)
	assert.False(t, result.NeedsEmailConfirmation)
	assert.True(t, s.IsAuthenticated())
}

func TestSignup_ProviderRejects(t *testing.T) {
	p := &fakeProvider{signUpErr: errors.New("email already registered")}
	s := NewStore(p)
	s.Init()

	result := s.Signup(SignupData{Email: "dup@b.com", Password: "secret1"})

	assert.False(t, result.Success)
	assert.Equal(t, "email already registered", result.Error)
	assert.False(t, s.IsAuthenticated())
}

func TestLogout_ClearsIdentityEvenOnProviderError(t *testing.T) {
	p := &fakeProvider{
		currentUser: &ProviderUser{ID: "u-5", Email: "x@b.com"},
		signOutErr:  errors.New("network unreachable"),
	}
	s := NewStore(p)
	s.Init()
	require.True(t, s.IsAuthenticated())

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestUpdateProfile_MergesOnSuccess(t *testing.T) {
	p := &fakeProvider{currentUser: &ProviderUser{
		ID:       "u-6",
		Email:    "x@b.com",
		Metadata: map[string]interface{}{"name": "Old Name", "hospital": "City General Hospital"},
	}}
	s := NewStore(p)
	s.Init()

	name := "New Name"
	phone := "+919876500000"
	s.UpdateProfile(models.UpdateProfileRequest{Name: &name, Phone: &phone})

	identity, _ := s.Identity()
	assert.Equal(t, "New Name", identity.Name)
	assert.Equal(t, "+919876500000", identity.Phone)
	assert.Equal(t, "City General Hospital", identity.Hospital)
	assert.Equal(t, map[string]interface{}{"name": "New Name", "phone": "+919876500000"}, p.updatedMeta)
}

func TestUpdateProfile_ProviderErrorIsNoOp(t *testing.T) {
	p := &fakeProvider{
		currentUser: &ProviderUser{ID: "u-7", Email: "x@b.com", Metadata: map[string]interface{}{"name": "Kept"}},
		updateErr:   errors.New("update failed"),
	}
	s := NewStore(p)
	s.Init()

	name := "Changed"
	s.UpdateProfile(models.UpdateProfileRequest{Name: &name})

	identity, _ := s.Identity()
	assert.Equal(t, "Kept", identity.Name)
}

func TestPushedTransitions(t *testing.T) {
	p := &fakeProvider{currentUser: &ProviderUser{ID: "u-8", Email: "x@b.com"}}
	s := NewStore(p)
	s.Init()
	require.True(t, s.IsAuthenticated())

	// Provider pushes an external sign-out (token expiry).
	p.subscriber(nil)
	assert.Equal(t, StateUnauthenticated, s.State())

	// And a later re-authentication.
	p.subscriber(&ProviderUser{ID: "u-8", Email: "x@b.com"})
	assert.Equal(t, StateAuthenticated, s.State())
}

func TestClose_ReleasesSubscription(t *testing.T) {
	p := &fakeProvider{}
	s := NewStore(p)
	s.Init()

	s.Close()
	assert.True(t, p.unsubscribed)
	s.Close() // second close is harmless
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	p := &fakeProvider{}
	s := NewStore(p)
	s.Init()

	m.Put("tok-1", s)
	got, ok := m.Get("tok-1")
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())

	m.Remove("tok-1")
	_, ok = m.Get("tok-1")
	assert.False(t, ok)
	assert.True(t, p.unsubscribed, "removing a session must close its store")
}

func TestManager_EvictsOnPushedSignOut(t *testing.T) {
	m := NewManager()
	p := &fakeProvider{currentUser: &ProviderUser{ID: "u-9", Email: "x@b.com"}}
	s := NewStore(p)
	s.Init()
	require.True(t, s.IsAuthenticated())
	m.Put("tok-2", s)
	require.Equal(t, 1, m.Len())

	// Provider pushes an expiry; the dead session must not linger.
	p.subscriber(nil)

	assert.Equal(t, 0, m.Len())
	assert.True(t, p.unsubscribed, "evicted session must release its subscription")
	assert.False(t, s.IsAuthenticated())
}

func TestManager_EvictsOnLogout(t *testing.T) {
	m := NewManager()
	p := &fakeProvider{currentUser: &ProviderUser{ID: "u-10", Email: "y@b.com"}}
	s := NewStore(p)
	s.Init()
	m.Put("tok-3", s)

	s.Logout()

	assert.Equal(t, 0, m.Len())
	assert.True(t, p.unsubscribed)
}
