package store

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/idilsaglam/tasktracker/internal/model"
)

// DefaultUserCapacity is the number of accounts a UserStore can hold.
const DefaultUserCapacity = 100

type account struct {
	user  model.User
	tasks *TaskStore
}

// UserStore is the fixed-capacity collection of accounts. It owns every
// user record and, through them, every task.
type UserStore struct {
	slots        slots[account]
	taskCapacity int
	hashCost     int
}

// Option tunes a UserStore.
type Option func(*UserStore)

// WithTaskCapacity sets the number of task slots given to each new user.
func WithTaskCapacity(n int) Option {
	return func(s *UserStore) { s.taskCapacity = n }
}

// WithHashCost sets the bcrypt cost used for stored passwords.
func WithHashCost(cost int) Option {
	return func(s *UserStore) { s.hashCost = cost }
}

func NewUserStore(capacity int, opts ...Option) *UserStore {
	if capacity <= 0 {
		capacity = DefaultUserCapacity
	}
	s := &UserStore{
		slots:        make(slots[account], capacity),
		taskCapacity: DefaultTaskCapacity,
		hashCost:     bcrypt.DefaultCost,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *UserStore) Cap() int { return len(s.slots) }
func (s *UserStore) Len() int { return s.slots.count() }

// FindByCredentials returns the first slot whose username matches exactly
// and whose stored password matches password.
func (s *UserStore) FindByCredentials(username, password string) (int, error) {
	for i := range s.slots {
		a := &s.slots[i]
		if !a.used || a.rec.user.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.rec.user.PasswordHash, prehash(password)) == nil {
			return i, nil
		}
	}
	return -1, model.Errorf(model.ErrNotFound, "no account matches these credentials")
}

func (s *UserStore) IsUsernameTaken(username string) bool {
	for i := range s.slots {
		if s.slots[i].used && s.slots[i].rec.user.Username == username {
			return true
		}
	}
	return false
}

// FirstFreeSlot returns the lowest free slot index.
func (s *UserStore) FirstFreeSlot() (int, error) {
	i := s.slots.firstFree()
	if i < 0 {
		return -1, model.Errorf(model.ErrCapacityExceeded, "user store is full (%d users)", len(s.slots))
	}
	return i, nil
}

// Register stores a new account in the first free slot with an empty task
// list. Format rules are the caller's job; Register only guards the store's
// own invariants.
func (s *UserStore) Register(username, password string) (int, error) {
	if username == "" {
		return -1, model.Errorf(model.ErrValidation, "username must not be empty")
	}
	if s.IsUsernameTaken(username) {
		return -1, model.Errorf(model.ErrDuplicate, "username %q", username)
	}
	i, err := s.FirstFreeSlot()
	if err != nil {
		return -1, err
	}
	hash, err := bcrypt.GenerateFromPassword(prehash(password), s.hashCost)
	if err != nil {
		return -1, fmt.Errorf("hash password: %w", err)
	}
	s.slots[i] = slot[account]{used: true, rec: account{
		user:  model.NewUser(username, hash),
		tasks: NewTaskStore(s.taskCapacity),
	}}
	return i, nil
}

// User returns the account record in slot i.
func (s *UserStore) User(i int) (model.User, error) {
	a, err := s.account(i)
	if err != nil {
		return model.User{}, err
	}
	return a.user, nil
}

// Tasks returns the task list owned by the account in slot i.
func (s *UserStore) Tasks(i int) (*TaskStore, error) {
	a, err := s.account(i)
	if err != nil {
		return nil, err
	}
	return a.tasks, nil
}

func (s *UserStore) account(i int) (*account, error) {
	if i < 0 || i >= len(s.slots) {
		return nil, model.Errorf(model.ErrOutOfRange, "user slot %d not in [0, %d)", i, len(s.slots))
	}
	if !s.slots[i].used {
		return nil, model.Errorf(model.ErrNotFound, "user slot %d is empty", i)
	}
	return &s.slots[i].rec, nil
}

// prehash condenses a password of any length to 44 bytes so bcrypt, which
// refuses input over 72 bytes, sees every byte of it.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
