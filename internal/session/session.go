package session

import (
	"sync"
	"time"

	"ci-request-api/internal/auth"
)

// Session holds the current credentials for one client process. An
// expired token is never handed out; it is cleared on first access as
// if it had never existed.
type Session struct {
	mu    sync.Mutex
	store Store

	token     string
	user      auth.UserInfo
	expiresAt time.Time

	onUnauthorized func()
	// fired guards the unauthorized signal: at most one per credential
	// set, however many requests fail concurrently.
	fired bool

	now func() time.Time
}

func New(store Store) *Session {
	return &Session{store: store, now: time.Now}
}

// Init hydrates from the store. A persisted-but-expired session is
// discarded here rather than surfacing later.
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.store.Load()
	if err != nil {
		return err
	}
	if saved == nil {
		return nil
	}
	if !s.now().Before(saved.ExpiresAt) {
		return s.store.Clear()
	}

	s.token = saved.Token
	s.user = saved.User
	s.expiresAt = saved.ExpiresAt
	s.fired = false
	return nil
}

// Set installs fresh credentials. expiresIn is in seconds, counted
// from now. A new credential set re-arms the unauthorized signal.
func (s *Session) Set(token string, user auth.UserInfo, expiresIn int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user
	s.expiresAt = s.now().Add(time.Duration(expiresIn) * time.Second)
	s.fired = false

	return s.store.Save(&StoredSession{
		Token:     token,
		User:      user,
		ExpiresAt: s.expiresAt,
	})
}

// Token returns the current bearer token, or "" when there is none or
// it has expired. Expiry clears the stored session as a side effect.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return ""
	}
	if !s.now().Before(s.expiresAt) {
		s.clearLocked()
		return ""
	}
	return s.token
}

// User returns the signed-in user, if any.
func (s *Session) User() (auth.UserInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" || !s.now().Before(s.expiresAt) {
		return auth.UserInfo{}, false
	}
	return s.user, true
}

// Teardown drops the credentials from memory and from the store.
func (s *Session) Teardown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	return s.store.Clear()
}

// OnUnauthorized registers the callback fired when the server rejects
// the session's credentials.
func (s *Session) OnUnauthorized(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUnauthorized = fn
}

// HandleUnauthorized clears the credentials and fires the registered
// callback. Concurrent rejections of the same credential set fire the
// callback exactly once.
func (s *Session) HandleUnauthorized() {
	s.mu.Lock()
	alreadyFired := s.fired
	s.fired = true
	s.clearLocked()
	_ = s.store.Clear()
	fn := s.onUnauthorized
	s.mu.Unlock()

	if !alreadyFired && fn != nil {
		fn()
	}
}

func (s *Session) clearLocked() {
	s.token = ""
	s.user = auth.UserInfo{}
	s.expiresAt = time.Time{}
}
