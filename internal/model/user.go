package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Tasks are owned by the store slot holding
// the user, not by this record.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser builds a user record with a fresh id.
func NewUser(username string, passwordHash []byte) User {
	return User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}
