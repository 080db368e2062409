// Package session bridges the Supabase auth lifecycle into a local identity
// value. One Store exists per signed-in client; the HTTP layer addresses
// stores through the Manager using the access token it handed out.
package session

import (
	"log"
	"strings"
	"sync"

	"github.com/Amit162-cloud/healthcarewebapp/models"
)

type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

// ProviderUser is the raw identity payload from the auth provider.
type ProviderUser struct {
	ID       string
	Email    string
	Metadata map[string]interface{}
}

type SignupData struct {
	Email    string
	Password string
	Name     string
	Role     string
	Hospital string
	Phone    string
}

type SignupResult struct {
	Success                bool
	NeedsEmailConfirmation bool
	Error                  string
}

// Provider is the slice of the identity provider the store depends on. The
// Supabase implementation lives in supabase.go; tests supply fakes.
type Provider interface {
	// CurrentUser resolves an existing session; a nil user means none.
	CurrentUser() (*ProviderUser, error)
	SignIn(email, password string) (*ProviderUser, error)
	SignUp(data SignupData) (*SignupOutcome, error)
	SignOut() error
	UpdateUser(metadata map[string]interface{}) error
	// Subscribe registers for pushed session changes (external expiry,
	// sign-out elsewhere). The returned func releases the subscription.
	Subscribe(fn func(*ProviderUser)) (unsubscribe func())
	// AccessToken returns the current session token, empty when signed out.
	AccessToken() string
}

type SignupOutcome struct {
	User *ProviderUser
	// NeedsConfirmation is reported by the provider as zero attached
	// identities: the account exists but is not activated yet.
	NeedsConfirmation bool
	// SessionIssued means the provider auto-confirmed and returned a session.
	SessionIssued bool
}

// Store owns the single current-identity value for one client session.
// Every provider failure is caught and logged here; callers only ever see
// booleans and structured results.
type Store struct {
	mu          sync.RWMutex
	provider    Provider
	state       State
	identity    *models.Identity
	unsubscribe func()
	onSignOut   func()
}

func NewStore(provider Provider) *Store {
	return &Store{provider: provider, state: StateInitializing}
}

// Init resolves any existing provider session and subscribes to pushed
// transitions. The subscription stays live until Close.
func (s *Store) Init() {
	user, err := s.provider.CurrentUser()
	if err != nil {
		log.Printf("[Session] Session check error: %v", err)
		user = nil
	}
	s.apply(user)

	s.mu.Lock()
	s.unsubscribe = s.provider.Subscribe(s.apply)
	s.mu.Unlock()
}

// Close releases the provider subscription. Safe to call more than once.
func (s *Store) Close() {
	s.mu.Lock()
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Identity()
	return ok
}

func (s *Store) AccessToken() string {
	return s.provider.AccessToken()
}

// Login delegates the credential check to the provider. A provider error is
// logged and reported as false; the state is left unchanged.
func (s *Store) Login(email, password string) bool {
	user, err := s.provider.SignIn(email, password)
	if err != nil {
		log.Printf("[Session] Login error: %v", err)
		return false
	}
	if user == nil {
		return false
	}
	s.apply(user)
	return true
}

// Signup forwards registration fields as provider-side metadata and
// distinguishes hard failure, confirmation-pending and immediate session.
func (s *Store) Signup(data SignupData) SignupResult {
	outcome, err := s.provider.SignUp(data)
	if err != nil {
		log.Printf("[Session] Signup error: %v", err)
		return SignupResult{Success: false, Error: err.Error()}
	}
	if outcome == nil || outcome.User == nil {
		return SignupResult{Success: false, Error: "Failed to create account"}
	}
	if !outcome.NeedsConfirmation && outcome.SessionIssued {
		s.apply(outcome.User)
	}
	return SignupResult{Success: true, NeedsEmailConfirmation: outcome.NeedsConfirmation}
}

// Logout is best-effort against the provider; the local identity is cleared
// even when the provider call fails.
func (s *Store) Logout() {
	if err := s.provider.SignOut(); err != nil {
		log.Printf("[Session] Logout error: %v", err)
	}
	s.apply(nil)
}

// UpdateProfile writes permitted fields to provider metadata and, on success,
// shallow-merges them into the local identity. Provider errors are logged
// and leave the identity untouched.
func (s *Store) UpdateProfile(req models.UpdateProfileRequest) {
	metadata := map[string]interface{}{}
	if req.Name != nil {
		metadata["name"] = *req.Name
	}
	if req.Role != nil {
		metadata["role"] = *req.Role
	}
	if req.Hospital != nil {
		metadata["hospital"] = *req.Hospital
	}
	if req.Avatar != nil {
		metadata["avatar"] = *req.Avatar
	}
	if req.Phone != nil {
		metadata["phone"] = *req.Phone
	}
	if len(metadata) == 0 {
		return
	}

	if err := s.provider.UpdateUser(metadata); err != nil {
		log.Printf("[Session] Update profile error: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return
	}
	merged := *s.identity
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Role != nil {
		merged.Role = *req.Role
	}
	if req.Hospital != nil {
		merged.Hospital = *req.Hospital
	}
	if req.Avatar != nil {
		merged.Avatar = *req.Avatar
	}
	if req.Phone != nil {
		merged.Phone = *req.Phone
	}
	s.identity = &merged
}

// setOnSignOut registers a hook fired whenever an authenticated store drops
// to Unauthenticated; the Manager uses it to evict finished sessions.
func (s *Store) setOnSignOut(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSignOut = fn
}

// apply handles both local and provider-pushed transitions.
func (s *Store) apply(user *ProviderUser) {
	s.mu.Lock()
	wasAuthenticated := s.identity != nil
	if user == nil {
		s.state = StateUnauthenticated
		s.identity = nil
	} else {
		identity := MapProviderUser(user)
		s.state = StateAuthenticated
		s.identity = &identity
	}
	hook := s.onSignOut
	s.mu.Unlock()

	if user == nil && wasAuthenticated && hook != nil {
		hook()
	}
}

// MapProviderUser derives the dashboard identity from the provider payload,
// defaulting name to the email local part, role to "User" and hospital to
// "Not Assigned".
func MapProviderUser(user *ProviderUser) models.Identity {
	identity := models.Identity{
		ID:       user.ID,
		Email:    user.Email,
		Name:     metaString(user.Metadata, "name"),
		Role:     metaString(user.Metadata, "role"),
		Hospital: metaString(user.Metadata, "hospital"),
		Avatar:   metaString(user.Metadata, "avatar"),
		Phone:    metaString(user.Metadata, "phone"),
	}
	if identity.Name == "" {
		if at := strings.Index(user.Email, "@"); at > 0 {
			identity.Name = user.Email[:at]
		} else {
			identity.Name = "User"
		}
	}
	if identity.Role == "" {
		identity.Role = "User"
	}
	if identity.Hospital == "" {
		identity.Hospital = "Not Assigned"
	}
	return identity
}

func metaString(metadata map[string]interface{}, key string) string {
	if metadata == nil {
		return ""
	}
	if value, ok := metadata[key].(string); ok {
		return value
	}
	return ""
}
