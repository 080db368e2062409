package session

import "sync"

// Manager tracks live session stores keyed by access token so stateless HTTP
// handlers can reach the store belonging to a bearer token. Removing a
// session closes its store, which releases the provider subscription.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Store
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Store)}
}

func (m *Manager) Put(token string, store *Store) {
	if token == "" {
		return
	}
	// Any sign-out (logout, pushed expiry, revocation) evicts the entry, so
	// finished sessions never accumulate with their watchers still running.
	store.setOnSignOut(func() { m.Remove(token) })
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = store
}

func (m *Manager) Get(token string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	store, ok := m.sessions[token]
	return store, ok
}

func (m *Manager) Remove(token string) {
	m.mu.Lock()
	store := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()
	if store != nil {
		store.Close()
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
