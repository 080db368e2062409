package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	supa "github.com/supabase-community/supabase-go"
)

// watchInterval is how often a subscribed provider re-checks its session for
// externally pushed changes (token revoked, signed out elsewhere).
const watchInterval = time.Minute

// SupabaseProvider implements Provider over the gotrue auth API. After a
// successful sign-in it keeps a token-bound client for the session-scoped
// calls (get/update user, sign-out).
type SupabaseProvider struct {
	mu          sync.Mutex
	anon        gotrue.Client
	authed      gotrue.Client
	accessToken string
	watchEvery  time.Duration
}

func NewSupabaseProvider(client *supa.Client) *SupabaseProvider {
	return &SupabaseProvider{anon: client.Auth, watchEvery: watchInterval}
}

// WithToken binds an existing access token, used when re-attaching to a
// session issued before a restart.
func (p *SupabaseProvider) WithToken(token string) *SupabaseProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.authed = p.anon.WithToken(token)
	p.accessToken = token
	return p
}

func (p *SupabaseProvider) AccessToken() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.accessToken
}

func (p *SupabaseProvider) CurrentUser() (*ProviderUser, error) {
	p.mu.Lock()
	client := p.authed
	p.mu.Unlock()
	if client == nil {
		return nil, nil
	}
	resp, err := client.GetUser()
	if err != nil {
		return nil, err
	}
	return mapUser(resp.User), nil
}

func (p *SupabaseProvider) SignIn(email, password string) (*ProviderUser, error) {
	resp, err := p.anon.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.authed = p.anon.WithToken(resp.AccessToken)
	p.accessToken = resp.AccessToken
	p.mu.Unlock()
	return mapUser(resp.User), nil
}

func (p *SupabaseProvider) SignUp(data SignupData) (*SignupOutcome, error) {
	role := data.Role
	if role == "" {
		role = "User"
	}
	resp, err := p.anon.Signup(types.SignupRequest{
		Email:    data.Email,
		Password: data.Password,
		Data: map[string]interface{}{
			"name":     data.Name,
			"role":     role,
			"hospital": data.Hospital,
			"phone":    data.Phone,
		},
	})
	if err != nil {
		return nil, err
	}

	outcome := &SignupOutcome{
		User:              mapUser(resp.User),
		NeedsConfirmation: len(resp.Identities) == 0,
		SessionIssued:     resp.AccessToken != "",
	}
	if outcome.SessionIssued {
		p.mu.Lock()
		p.authed = p.anon.WithToken(resp.AccessToken)
		p.accessToken = resp.AccessToken
		p.mu.Unlock()
	}
	return outcome, nil
}

func (p *SupabaseProvider) SignOut() error {
	p.mu.Lock()
	client := p.authed
	p.authed = nil
	p.accessToken = ""
	p.mu.Unlock()
	if client == nil {
		return nil
	}
	return client.Logout()
}

func (p *SupabaseProvider) UpdateUser(metadata map[string]interface{}) error {
	p.mu.Lock()
	client := p.authed
	p.mu.Unlock()
	if client == nil {
		return fmt.Errorf("no active session")
	}
	_, err := client.UpdateUser(types.UpdateUserRequest{Data: metadata})
	return err
}

// Subscribe polls the session and notifies on transitions. gotrue has no
// server-side push channel, so expiry shows up as a failing GetUser. Session
// presence is re-read every tick: a sign-in after Subscribe (the normal login
// flow, which subscribes during Init) is picked up on the next tick.
func (p *SupabaseProvider) Subscribe(fn func(*ProviderUser)) func() {
	stop := make(chan struct{})
	var once sync.Once
	go func() {
		every := p.watchEvery
		if every <= 0 {
			every = watchInterval
		}
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if p.AccessToken() == "" {
					continue
				}
				user, err := p.CurrentUser()
				if err != nil || user == nil {
					p.mu.Lock()
					p.authed = nil
					p.accessToken = ""
					p.mu.Unlock()
					fn(nil)
					continue
				}
				fn(user)
			}
		}
	}()
	return func() { once.Do(func() { close(stop) }) }
}

func mapUser(u types.User) *ProviderUser {
	return &ProviderUser{
		ID:       u.ID.String(),
		Email:    u.Email,
		Metadata: u.UserMetadata,
	}
}
