// Package session binds the process to the currently authenticated user and
// scopes every task operation to that user.
package session

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/tasktracker/internal/credential"
	"github.com/idilsaglam/tasktracker/internal/model"
	"github.com/idilsaglam/tasktracker/internal/store"
)

// Entry is a task paired with its 1-based display position.
type Entry struct {
	Position int
	Task     model.Task
}

// Session is the application context. It is created empty, becomes active
// after a successful Register or Login and stays active until the process
// exits. All methods serialize on a single mutex.
type Session struct {
	mu     sync.Mutex
	users  *store.UserStore
	log    zerolog.Logger
	signer *signer

	active bool
	slot   int
	token  string
}

func New(users *store.UserStore, log zerolog.Logger) (*Session, error) {
	sg, err := newSigner()
	if err != nil {
		return nil, err
	}
	return &Session{users: users, log: log, signer: sg, slot: -1}, nil
}

// Active reports whether a user is bound to the session.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// CurrentUser returns the bound user and its store index.
func (s *Session) CurrentUser() (model.User, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return model.User{}, -1, model.ErrNotAuthenticated
	}
	u, err := s.users.User(s.slot)
	return u, s.slot, err
}

// CheckUsername tells whether name could be registered right now.
func (s *Session) CheckUsername(name string) error {
	if err := credential.ValidateUsername(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.users.IsUsernameTaken(name) {
		return model.Errorf(model.ErrDuplicate, "username %q", name)
	}
	return nil
}

// Register creates an account and binds the session to it.
func (s *Session) Register(username, password string) error {
	if err := credential.ValidateUsername(username); err != nil {
		return err
	}
	if err := credential.ValidatePassword(password); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	slot, err := s.users.Register(username, password)
	if err != nil {
		if errors.Is(err, model.ErrCapacityExceeded) {
			s.log.Warn().Err(err).Int("capacity", s.users.Cap()).Msg("user store full")
		}
		return err
	}
	if err := s.bind(slot); err != nil {
		return err
	}
	s.log.Info().Str("user", username).Int("slot", slot).Msg("user registered")
	return nil
}

// Login binds the session to the account matching the credentials. Both
// formats are checked before the store is searched.
func (s *Session) Login(username, password string) error {
	if err := credential.ValidateUsername(username); err != nil {
		return err
	}
	if err := credential.ValidatePassword(password); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	slot, err := s.users.FindByCredentials(username, password)
	if err != nil {
		s.log.Debug().Str("user", username).Msg("login rejected")
		return err
	}
	if err := s.bind(slot); err != nil {
		return err
	}
	s.log.Info().Str("user", username).Int("slot", slot).Msg("user logged in")
	return nil
}

func (s *Session) bind(slot int) error {
	u, err := s.users.User(slot)
	if err != nil {
		return err
	}
	tok, err := s.signer.issue(u, slot)
	if err != nil {
		return err
	}
	s.active, s.slot, s.token = true, slot, tok
	return nil
}

// Token returns the signed token issued when the session was bound.
func (s *Session) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return "", model.ErrNotAuthenticated
	}
	return s.token, nil
}

// WhoAmI verifies the session token and returns its claims.
func (s *Session) WhoAmI() (*Claims, error) {
	tok, err := s.Token()
	if err != nil {
		return nil, err
	}
	return s.signer.verify(tok)
}
